package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chart collection as JSON",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	s := openStore()

	charts, err := s.Select(nil)
	if err != nil {
		return fmt.Errorf("failed to export charts: %w", err)
	}

	var writer *os.File
	if exportOut != "" {
		writer, err = os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer writer.Close()
	} else {
		writer = os.Stdout
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(charts); err != nil {
		return fmt.Errorf("failed to encode charts: %w", err)
	}

	return nil
}
