// Command inspectgroups reports the group-by API surface of the gota
// dataframe library: the concrete grouped-table type, its exported methods
// and signatures, whether the pandas-style aggregation shortcuts exist, and
// the aggregation operators available. Run it before writing benchmark
// queries against a new library version.
//
// Usage:
//
//	inspectgroups
package main

import (
	"fmt"
	"log"

	"github.com/couchcryptid/weather-bench/internal/probe"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	insp, err := probe.InspectGroups()
	if err != nil {
		return err
	}

	fmt.Println("=== Grouped-Table Type ===")
	fmt.Printf("Type:    %s\n", insp.TypeName)
	fmt.Printf("Package: %s\n", insp.PkgPath)
	fmt.Println()

	fmt.Println("=== Exported Methods ===")
	for _, m := range insp.Methods {
		fmt.Printf("- %s %s\n", m.Name, m.Signature)
	}
	fmt.Println()

	fmt.Println("=== Aggregation Shortcuts ===")
	for _, name := range probe.ShortcutNames {
		status := "absent"
		if insp.Shortcuts[name] {
			status = "present"
		}
		fmt.Printf("- %-6s %s\n", name, status)
	}
	fmt.Println()

	fmt.Println("=== Aggregation Operators ===")
	for _, op := range insp.Aggregations {
		fmt.Printf("- %-7s (%d)\n", op.Name, op.Value)
	}

	return nil
}
