// chartdeck is a CLI tool for managing a collection of chart definitions
// stored in a single JSON document and for executing each chart's query
// read-only against a PostgreSQL database.
//
// See README.md for usage documentation.
package main

import (
	"fmt"
	"os"

	"github.com/chartdeck/chartdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
