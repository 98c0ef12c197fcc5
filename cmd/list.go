package cmd

import (
	"fmt"
	"strings"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listNameFilter string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List chart definitions",
	Long:  `List shows every chart in the store, optionally filtered by a name substring.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listNameFilter, "name", "", "Only show charts whose name contains this substring")
}

func runList(cmd *cobra.Command, args []string) error {
	s := openStore()

	var match store.Predicate
	if listNameFilter != "" {
		filter := strings.ToLower(listNameFilter)
		match = func(c store.Chart) bool {
			return strings.Contains(strings.ToLower(c.Name), filter)
		}
	}

	charts, err := s.Select(match)
	if err != nil {
		return fmt.Errorf("failed to list charts: %w", err)
	}

	if len(charts) == 0 {
		fmt.Println("No charts found.")
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Printf("Charts (%d):\n", len(charts))
	fmt.Println()

	for _, c := range charts {
		fmt.Printf("%s\n", c.ID)
		fmt.Printf("  name:  %s\n", c.Name)
		if c.Query != "" {
			fmt.Printf("  query: %s\n", truncate(c.Query, 60))
		}
		if len(c.Vars) > 0 {
			keys := make([]string, 0, len(c.Vars))
			for _, v := range c.Vars {
				keys = append(keys, v.Key)
			}
			fmt.Printf("  vars:  %s\n", strings.Join(keys, ", "))
		}
		fmt.Println()
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
