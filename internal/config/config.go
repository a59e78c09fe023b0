package config

import (
	"fmt"
	"path/filepath"

	"cosx/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	// Input settings
	InputPath    string
	SourceSuffix string

	// Matching settings
	Suite          string
	Closing        domain.ClosingStyle
	IndirectTests  []string
	IndirectSuffix string

	// Output settings
	OutputDir string
	Extension string

	// Paths to ignore when scanning a directory
	PathsToIgnore []string

	// ConfigFile is the config file that was read, if any
	ConfigFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Input      string
	Output     string
	Extension  string
	Suite      string
	Closing    string
	Indirect   []string
	NoIndirect bool
	NameFilter string
	Report     string
	Progress   bool
	Summary    bool
	Verbose    bool
	Format     string
	All        bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		InputPath:      DefaultInputPath,
		SourceSuffix:   DefaultSourceSuffix,
		Suite:          DefaultSuite,
		Closing:        DefaultClosing,
		IndirectSuffix: DefaultIndirectSuffix,
		OutputDir:      DefaultOutputDir,
		Extension:      DefaultExtension,
	}
	cfg.IndirectTests = append([]string(nil), DefaultIndirectTests...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// ApplyFlags stores flags on the config and lets non-empty flags override loaded values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.Input != "" {
		c.InputPath = flags.Input
	}
	if flags.Output != "" {
		c.OutputDir = flags.Output
	}
	if flags.Extension != "" {
		c.Extension = flags.Extension
	}
	if flags.Suite != "" {
		c.Suite = flags.Suite
	}
	if flags.Closing != "" {
		c.Closing = domain.ClosingStyle(flags.Closing)
	}
	if len(flags.Indirect) > 0 {
		c.IndirectTests = append([]string(nil), flags.Indirect...)
	}
	if flags.NoIndirect {
		c.IndirectTests = nil
	}
}

// Validate checks that the matching and output settings are usable
func (c *Config) Validate() error {
	var problem string
	switch {
	case !c.Closing.Valid():
		problem = fmt.Sprintf("unknown closing style %q (want %q or %q)", c.Closing, domain.ClosingBare, domain.ClosingParen)
	case c.Suite == "":
		problem = "suite must not be empty"
	case c.Extension == "":
		problem = "extension must not be empty"
	case c.OutputDir == "":
		problem = "output directory must not be empty"
	case c.InputPath == "":
		problem = "input path must not be empty"
	default:
		return nil
	}

	return &domain.OpError{
		Op:   "config.validate",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s", problem),
	}
}

// GetOutputPath returns the file an extracted script for testName is written to
func (c *Config) GetOutputPath(testName string) string {
	return filepath.Join(c.OutputDir, testName+"."+c.Extension)
}
