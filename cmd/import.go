package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import chart definitions from a JSON file",
	Long: `Import reads a JSON array of chart definitions and appends them to the
store in a single write. Records without an id get a generated one.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	var charts []store.Chart
	if err := json.Unmarshal(data, &charts); err != nil {
		return fmt.Errorf("failed to parse import file: %w", err)
	}
	if len(charts) == 0 {
		return fmt.Errorf("import file contains no charts")
	}

	bar := progressbar.NewOptions(len(charts),
		progressbar.OptionSetDescription("Importing charts"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
	)

	for i := range charts {
		if charts[i].ID == "" {
			charts[i].ID = uuid.NewString()
		}
		bar.Add(1)
	}
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	s := openStore()
	if err := s.BulkCreate(charts); err != nil {
		return fmt.Errorf("failed to import charts: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ Imported %d charts into %s\n", len(charts), s.Path())
	return nil
}
