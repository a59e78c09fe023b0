package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cosx/internal/domain"
)

// LoadOptions controls where Load looks for configuration
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string
	// SearchPaths are searched for cosx.yaml when ConfigFile is empty
	SearchPaths []string
	// EnvFile is loaded into the process environment if it exists
	EnvFile string
}

// DefaultLoadOptions looks in the working directory and ~/.config/cosx
func DefaultLoadOptions(configFile string) LoadOptions {
	opts := LoadOptions{
		ConfigFile:  configFile,
		SearchPaths: []string{"."},
		EnvFile:     ".env",
	}
	if home, err := os.UserHomeDir(); err == nil {
		opts.SearchPaths = append(opts.SearchPaths, filepath.Join(home, ".config", "cosx"))
	}
	return opts
}

// Load builds a Config from defaults, an optional config file, .env and COSX_* variables
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		// .env is optional; variables already set in the environment win
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: opts.EnvFile,
				Err:  err,
			}
		}
	}

	v := viper.New()
	defaults := New()
	v.SetDefault("input_path", defaults.InputPath)
	v.SetDefault("source_suffix", defaults.SourceSuffix)
	v.SetDefault("suite", defaults.Suite)
	v.SetDefault("closing", string(defaults.Closing))
	v.SetDefault("indirect_tests", defaults.IndirectTests)
	v.SetDefault("indirect_suffix", defaults.IndirectSuffix)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("paths_to_ignore", defaults.PathsToIgnore)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		for _, p := range opts.SearchPaths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: opts.ConfigFile,
				Err:  err,
			}
		}
	}

	cfg := &Config{
		InputPath:      v.GetString("input_path"),
		SourceSuffix:   v.GetString("source_suffix"),
		Suite:          v.GetString("suite"),
		Closing:        domain.ClosingStyle(v.GetString("closing")),
		IndirectTests:  v.GetStringSlice("indirect_tests"),
		IndirectSuffix: v.GetString("indirect_suffix"),
		OutputDir:      v.GetString("output_dir"),
		Extension:      v.GetString("extension"),
		PathsToIgnore:  v.GetStringSlice("paths_to_ignore"),
		ConfigFile:     v.ConfigFileUsed(),
	}

	return cfg, nil
}
