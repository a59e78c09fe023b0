package config

import "cosx/internal/domain"

const (
	// DefaultInputPath is the C++ test source scanned for scripts
	DefaultInputPath = "src/openc2e/tests/CaosTest.cpp"
	// DefaultOutputDir is the directory extracted scripts are written to
	DefaultOutputDir = "dict"
	// DefaultExtension is the extension given to extracted scripts
	DefaultExtension = "cos"
	// DefaultSuite is the first argument of the TEST(...) declarations to match
	DefaultSuite = "caos"
	// DefaultClosing is the raw string closing style
	DefaultClosing = domain.ClosingBare
	// DefaultIndirectSuffix is appended to a test name to find its script variable
	DefaultIndirectSuffix = "_script"
	// DefaultSourceSuffix selects files when the input is a directory
	DefaultSourceSuffix = "Test.cpp"
	// DefaultConfigName is the config file base name looked up by viper
	DefaultConfigName = "cosx"
	// EnvPrefix prefixes environment overrides, e.g. COSX_OUTPUT_DIR
	EnvPrefix = "COSX"
)

// DefaultIndirectTests are tests whose script is assigned to a variable first
var DefaultIndirectTests = []string{
	"special_lexing",
}

// DefaultPathsToIgnore are the directories skipped when the input is a directory
var DefaultPathsToIgnore = []string{
	"build",
	"vendor",
	"node_modules",
	"dict",
}
