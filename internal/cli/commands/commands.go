package commands

import (
	"cosx/internal/cli"
	"cosx/internal/config"
	"cosx/internal/discovery"
	"cosx/internal/extract"
	"cosx/internal/logger"
	"cosx/internal/storage"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Extract *ExtractCommand
	List    *ListCommand
	Check   *CheckCommand
	Browse  *BrowseCommand
}

// NewCommands creates all commands sharing one config
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Extract: NewExtractCommand(cfg),
		List:    NewListCommand(cfg),
		Check:   NewCheckCommand(cfg),
		Browse:  NewBrowseCommand(cfg),
	}
}

// newExtractor wires an Extractor from the loaded config.
// The parser patterns depend on config values, so this runs after flags are parsed.
func newExtractor(cfg *config.Config) *extract.Extractor {
	scanner := discovery.NewScanner(cfg.SourceSuffix, cfg.PathsToIgnore)
	parser := discovery.NewParser(discovery.ParserOptions{
		Suite:          cfg.Suite,
		Closing:        cfg.Closing,
		IndirectTests:  cfg.IndirectTests,
		IndirectSuffix: cfg.IndirectSuffix,
	})
	filter := discovery.NewFilter()
	sink := storage.NewFileSink(cfg)
	return extract.NewExtractor(cfg, scanner, parser, filter, sink)
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Load config once flags are parsed, for the root and every subcommand
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger.Setup(logger.Config{Debug: flags.Verbose, Writer: cmd.ErrOrStderr()})

		loaded, err := config.Load(config.DefaultLoadOptions(flags.ConfigFile))
		if err != nil {
			return err
		}
		if loaded.ConfigFile != "" {
			logger.L().Debug("config.loaded", "path", loaded.ConfigFile)
		}

		*cfg = *loaded
		cfg.ApplyFlags(flags.ToConfigFlags())
		return cfg.Validate()
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "Config file (default: ./cosx.yaml or ~/.config/cosx/cosx.yaml)")
	pf.StringVarP(&flags.Input, "input", "i", "", "C++ test source, or a directory to scan for *Test.cpp files (default "+config.DefaultInputPath+")")
	pf.StringVarP(&flags.Output, "output", "o", "", "Directory extracted scripts are written to (default "+config.DefaultOutputDir+")")
	pf.StringVar(&flags.Extension, "ext", "", "Extension of extracted scripts (default "+config.DefaultExtension+")")
	pf.StringVar(&flags.Suite, "suite", "", "Test suite name to match in TEST(suite, name) (default "+config.DefaultSuite+")")
	pf.StringVar(&flags.Closing, "closing", "", "Literal closing style: bare for )\" or paren for )\") (default "+string(config.DefaultClosing)+")")
	pf.StringArrayVar(&flags.Indirect, "indirect", nil, "Test whose script is assigned to <name>_script (repeatable, replaces the defaults)")
	pf.BoolVar(&flags.NoIndirect, "no-indirect", false, "Disable the script variable lookup for all tests")
	pf.StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'agent_*' or '*lexing*')")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Log each block and write to stderr")

	// Running the bare binary extracts with the defaults
	rootCmd.RunE = c.Extract.Execute
	addExtractFlags(rootCmd, flags)

	// Extract command
	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract CAOS scripts into standalone files",
		Long:  "Scan the C++ test source for TEST blocks with raw string scripts and write each script to <output>/<test>.<ext>, overwriting existing files",
		Args:  cobra.NoArgs,
		RunE:  c.Extract.Execute,
	}
	addExtractFlags(extractCmd, flags)
	rootCmd.AddCommand(extractCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test blocks",
		Long:  "Scan and list all test blocks with scripts without writing anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVar(&flags.Format, "format", "text", "Output format: text, json or yaml")
	listCmd.Flags().BoolVarP(&flags.All, "all", "a", false, "Include blocks with empty literals in json and yaml output")
	rootCmd.AddCommand(listCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify extracted scripts are up to date",
		Long:  "Compare the scripts an extraction would write with the files in the output directory and fail if any are missing or different",
		Args:  cobra.NoArgs,
		RunE:  c.Check.Execute,
	}
	rootCmd.AddCommand(checkCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse test blocks interactively",
		Long:  "Display every test block and the script that would be written for it in an interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  c.Browse.Execute,
	}
	rootCmd.AddCommand(browseCmd)
}

func addExtractFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVar(&flags.Report, "report", "", "Write a JSON report of the run to this file")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while writing")
	cmd.Flags().BoolVar(&flags.Summary, "summary", false, "Print a summary table when done")
}
