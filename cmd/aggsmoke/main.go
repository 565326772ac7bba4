// Command aggsmoke exercises the aggregation paths of the gota dataframe
// library against a fixed sample frame and reports pass/fail per call. A
// failing call never aborts the run; the exit status is 1 if any trial
// failed.
//
// Usage:
//
//	aggsmoke
package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/weather-bench/internal/probe"
)

func main() {
	os.Exit(run())
}

func run() int {
	df := probe.SampleFrame()

	fmt.Println("Sample frame:")
	fmt.Println(df)
	fmt.Println()

	results := probe.RunTrials(df)

	failed := 0
	for _, res := range results {
		if res.OK() {
			fmt.Printf("\033[32mPASS\033[0m %s\n", res.Name)
			fmt.Println(res.Output)
		} else {
			fmt.Printf("\033[31mFAIL\033[0m %s: %v\n", res.Name, res.Err)
			failed++
		}
		fmt.Println()
	}

	fmt.Printf("%d/%d trials passed\n", len(results)-failed, len(results))
	if failed > 0 {
		return 1
	}
	return 0
}
