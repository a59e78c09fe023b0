package commands

import (
	"github.com/spf13/cobra"

	"cosx/internal/config"
	"cosx/internal/ui"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config) *BrowseCommand {
	return &BrowseCommand{
		config: cfg,
		viewer: ui.NewBlockViewer(cfg),
	}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	plan, err := newExtractor(bc.config).Plan()
	if err != nil {
		return err
	}

	return bc.viewer.View(plan)
}
