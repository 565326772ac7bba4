// Command checkdataset validates a generated dataset directory against its
// manifest: file inventory, schema, row counts, and value ranges.
//
// Usage:
//
//	checkdataset -dir testdata
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/weather-bench/internal/verify"
)

func main() {
	dir := flag.String("dir", "", "dataset directory containing manifest.json and chunk files")
	flag.Parse()

	if *dir == "" {
		flag.Usage()
		os.Exit(2)
	}

	if code := run(*dir); code != 0 {
		os.Exit(code)
	}
}

func run(dir string) int {
	fmt.Println("=== Weather Dataset Validation ===")
	fmt.Println()

	report, err := verify.CheckDataset(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	fmt.Printf("Run %s: %d chunks of %d rows (seed %d)\n",
		report.Manifest.RunID, report.Manifest.NumChunks, report.Manifest.ChunkSize, report.Manifest.Seed)
	fmt.Println()

	for _, p := range report.Phases {
		status := "\033[32mPASS\033[0m"
		if !p.Passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.Errors))
		}
		fmt.Printf("  %-28s %s\n", p.Name, status)
	}

	fmt.Println()
	fmt.Printf("Rows checked: %d\n", report.RowsChecked)

	for _, p := range report.Phases {
		if p.Passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.Name)
		for i, e := range p.Errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if report.Passed() {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}
