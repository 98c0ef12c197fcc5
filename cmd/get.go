package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one chart definition as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	s := openStore()
	id := args[0]

	chart, err := s.FindOne(func(c store.Chart) bool { return c.ID == id })
	if err != nil {
		return fmt.Errorf("failed to get chart %s: %w", id, err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(chart)
}
