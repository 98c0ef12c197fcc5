package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chartdeck/chartdeck/internal/charts"
	"github.com/chartdeck/chartdeck/internal/db"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	dataSourceDSN string
	dataParams    []string
	dataVerbose   bool
)

var dataCmd = &cobra.Command{
	Use:   "data <id-or-name>",
	Short: "Run a chart's query and print its data",
	Long: `Data resolves a chart by id (falling back to name), merges its declared
variable defaults with --param overrides, sanitizes the query down to a
read-only statement and executes it against PostgreSQL.`,
	Args: cobra.ExactArgs(1),
	RunE: runData,
}

func init() {
	dataCmd.Flags().StringVar(&dataSourceDSN, "source", "", "Database DSN (default: CHARTDECK_SOURCE env var)")
	dataCmd.Flags().StringSliceVar(&dataParams, "param", nil, "Parameter override key=value (repeatable)")
	dataCmd.Flags().BoolVar(&dataVerbose, "verbose", false, "Print connection details")
}

func runData(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Set source DSN with priority: --source flag > CHARTDECK_SOURCE env
	if dataSourceDSN == "" {
		dataSourceDSN = os.Getenv("CHARTDECK_SOURCE")
	}

	overrides := make(map[string]any, len(dataParams))
	for _, p := range dataParams {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("invalid --param %q, expected key=value", p)
		}
		overrides[key] = value
	}

	conn, err := db.NewConnection(ctx, dataSourceDSN)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	if dataVerbose {
		color.New(color.FgCyan).Printf("Source: %s\n", db.MaskDSN(dataSourceDSN))
	}

	engine := charts.NewEngine(openStore(), conn)

	result, err := engine.GetData(ctx, args[0], overrides)
	if err != nil {
		return fmt.Errorf("failed to get chart data: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
