package cmd

import (
	"fmt"
	"strings"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	addName  string
	addQuery string
	addXAxis []string
	addYAxis []string
	addVars  []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a chart definition",
	Long: `Add creates a new chart with a generated id. Axis descriptors are given
as key[:label[:color]] and variables as key=default.`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Chart display name (required)")
	addCmd.Flags().StringVar(&addQuery, "query", "", "SQL query the chart runs")
	addCmd.Flags().StringSliceVar(&addXAxis, "xaxis", nil, "X axis descriptor key[:label[:color]] (repeatable)")
	addCmd.Flags().StringSliceVar(&addYAxis, "yaxis", nil, "Y axis descriptor key[:label[:color]] (repeatable)")
	addCmd.Flags().StringSliceVar(&addVars, "var", nil, "Query variable key=default (repeatable)")

	addCmd.MarkFlagRequired("name")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := openStore()

	chart := store.Chart{
		ID:    uuid.NewString(),
		Name:  addName,
		Query: addQuery,
		XAxis: parseAxes(addXAxis),
		YAxis: parseAxes(addYAxis),
		Vars:  parseVars(addVars),
	}

	if err := s.Create(chart); err != nil {
		return fmt.Errorf("failed to add chart: %w", err)
	}

	color.New(color.FgGreen).Printf("✓ Added chart %s\n", chart.Name)
	fmt.Println(chart.ID)
	return nil
}

func parseAxes(specs []string) []store.Axis {
	if len(specs) == 0 {
		return nil
	}
	axes := make([]store.Axis, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		axis := store.Axis{Key: parts[0]}
		if len(parts) > 1 {
			axis.Label = parts[1]
		}
		if len(parts) > 2 {
			axis.Color = parts[2]
		}
		axes = append(axes, axis)
	}
	return axes
}

func parseVars(specs []string) []store.Variable {
	if len(specs) == 0 {
		return nil
	}
	vars := make([]store.Variable, 0, len(specs))
	for _, spec := range specs {
		key, def, _ := strings.Cut(spec, "=")
		vars = append(vars, store.Variable{Key: key, Default: def})
	}
	return vars
}
