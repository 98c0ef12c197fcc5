package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty chart store",
	Long: `Init creates the backing document with an empty chart collection. It
refuses to overwrite an existing store.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	s := openStore()
	if err := s.Init(); err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("✓ Created empty chart store at %s\n", s.Path())
	return nil
}
