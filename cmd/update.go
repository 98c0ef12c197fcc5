package cmd

import (
	"fmt"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateName       string
	updateQuery      string
	updateClearQuery bool
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a chart definition",
	Long: `Update shallow-merges the given fields into the chart with the given id.
Fields not mentioned are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New display name")
	updateCmd.Flags().StringVar(&updateQuery, "query", "", "New SQL query")
	updateCmd.Flags().BoolVar(&updateClearQuery, "clear-query", false, "Remove the chart's query")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	var patch store.Patch
	if cmd.Flags().Changed("name") {
		patch.Name = &updateName
	}
	switch {
	case updateClearQuery:
		empty := ""
		patch.Query = &empty
	case cmd.Flags().Changed("query"):
		patch.Query = &updateQuery
	}

	if patch.Name == nil && patch.Query == nil {
		return fmt.Errorf("nothing to update. Use --name, --query or --clear-query")
	}

	s := openStore()
	id := args[0]

	if err := s.Update(func(c store.Chart) bool { return c.ID == id }, patch); err != nil {
		return fmt.Errorf("failed to update chart %s: %w", id, err)
	}

	color.New(color.FgGreen).Printf("✓ Updated chart %s\n", id)
	return nil
}
