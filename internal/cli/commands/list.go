package commands

import (
	"github.com/spf13/cobra"

	"cosx/internal/config"
	"cosx/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	plan, err := newExtractor(lc.config).Plan()
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(lc.config, cmd.OutOrStdout())
	format := lc.config.Flags.Format
	if format == "" || format == "text" {
		formatter.PrintBlockList(plan)
		return nil
	}
	return formatter.WriteBlocks(plan, format, lc.config.Flags.All)
}
