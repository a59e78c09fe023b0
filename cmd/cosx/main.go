package main

import (
	"fmt"
	"os"

	"cosx/internal/cli"
	"cosx/internal/cli/commands"
	"cosx/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "cosx",
		Short: "Extract CAOS scripts embedded in C++ tests",
		Long: `cosx scans a C++ test source for TEST(caos, name) blocks that embed CAOS
scripts as raw string literals and writes each script to dict/<name>.cos.

Running cosx without a subcommand performs the extraction with the defaults.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Config is loaded in the root's PersistentPreRunE once flags are parsed
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create and register all commands
	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
