package cmd

import (
	"fmt"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var removeByName bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove chart definitions",
	Long: `Remove deletes the chart with the given id. With --by-name the argument is
treated as a display name instead and every chart with that name is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().BoolVar(&removeByName, "by-name", false, "Match by display name instead of id")
}

func runRemove(cmd *cobra.Command, args []string) error {
	s := openStore()
	arg := args[0]

	match := func(c store.Chart) bool { return c.ID == arg }
	if removeByName {
		match = func(c store.Chart) bool { return c.Name == arg }
	}

	if err := s.Remove(match); err != nil {
		return fmt.Errorf("failed to remove chart %s: %w", arg, err)
	}

	color.New(color.FgGreen).Printf("✓ Removed %s\n", arg)
	return nil
}
