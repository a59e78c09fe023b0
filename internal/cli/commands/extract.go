package commands

import (
	"fmt"

	"cosx/internal/config"
	"cosx/internal/storage"
	"cosx/internal/ui"

	"github.com/spf13/cobra"
)

// ExtractCommand handles the extract command
type ExtractCommand struct {
	config *config.Config
}

// NewExtractCommand creates a new ExtractCommand
func NewExtractCommand(cfg *config.Config) *ExtractCommand {
	return &ExtractCommand{config: cfg}
}

// Execute runs the command. It prints nothing unless --summary or --progress is set.
func (ec *ExtractCommand) Execute(cmd *cobra.Command, args []string) error {
	extractor := newExtractor(ec.config)

	plan, err := extractor.Plan()
	if err != nil {
		return err
	}

	if ec.config.Flags.Progress && len(plan.Files) > 0 {
		extractor.SetProgress(ui.NewProgressBar(len(plan.Files)))
	}

	result, err := extractor.Apply(plan)
	if err != nil {
		return err
	}

	if ec.config.Flags.Report != "" {
		if err := storage.NewJSONStorage(ec.config.Flags.Report).Save(result); err != nil {
			return fmt.Errorf("failed to save extraction report: %w", err)
		}
	}

	if ec.config.Flags.Summary {
		ui.NewFormatter(ec.config, cmd.OutOrStdout()).PrintSummary(result)
	}
	return nil
}
