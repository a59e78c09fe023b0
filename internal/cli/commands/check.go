package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cosx/internal/config"
	"cosx/internal/domain"
	"cosx/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config *config.Config
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config) *CheckCommand {
	return &CheckCommand{config: cfg}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	_, result, err := newExtractor(cc.config).Check()
	if err != nil {
		return err
	}

	ui.NewFormatter(cc.config, cmd.OutOrStdout()).PrintCheck(result)

	if !result.Clean() {
		return &domain.OpError{
			Op:   "check",
			Kind: domain.KindStale,
			Path: cc.config.OutputDir,
			Err:  fmt.Errorf("%d script(s) out of date", len(result.Missing)+len(result.Stale)),
		}
	}
	return nil
}
