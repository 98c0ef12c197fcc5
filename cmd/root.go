// Package cmd implements the command-line interface for chartdeck using
// Cobra. It defines the root command and all subcommands (init, list, get,
// add, update, remove, import, export, data, version).
package cmd

import (
	"fmt"
	"os"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/spf13/cobra"
)

// Version is the current version of chartdeck, set at build time via ldflags.
var Version = "0.1.0"

// defaultStorePath is used when neither --store nor CHARTDECK_STORE is set.
const defaultStorePath = "charts.json"

var storePath string

var rootCmd = &cobra.Command{
	Use:   "chartdeck",
	Short: "Manage chart definitions and run their queries",
	Long: `chartdeck keeps a collection of chart definitions in a single JSON document
and executes each chart's query read-only against a PostgreSQL database.`,
}

// Execute runs the root command and returns any error encountered.
// This is called from main.go.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Chart store file (default: CHARTDECK_STORE env var or charts.json)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chartdeck v%s\n", Version)
	},
}

// openStore resolves the backing document with priority:
// --store flag > CHARTDECK_STORE env > charts.json.
func openStore() *store.Store {
	path := storePath
	if path == "" {
		path = os.Getenv("CHARTDECK_STORE")
	}
	if path == "" {
		path = defaultStorePath
	}
	return store.New(path)
}
