package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosx/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	assert.Equal(t, DefaultInputPath, cfg.InputPath)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultExtension, cfg.Extension)
	assert.Equal(t, DefaultSuite, cfg.Suite)
	assert.Equal(t, domain.ClosingBare, cfg.Closing)
	assert.Equal(t, DefaultIndirectTests, cfg.IndirectTests)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoad_ConfigFileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cosx.yaml"), `
input_path: tests/LegacyCaosTest.cpp
closing: paren
output_dir: scripts
indirect_tests:
  - special_lexing
  - agent_scripts
`)

	cfg, err := Load(LoadOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, "tests/LegacyCaosTest.cpp", cfg.InputPath)
	assert.Equal(t, domain.ClosingParen, cfg.Closing)
	assert.Equal(t, "scripts", cfg.OutputDir)
	assert.Equal(t, []string{"special_lexing", "agent_scripts"}, cfg.IndirectTests)
	assert.Equal(t, DefaultExtension, cfg.Extension, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(dir, "cosx.yaml"), cfg.ConfigFile)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoad_MalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cosx.yaml")
	writeFile(t, path, "suite: [unterminated\n")

	_, err := Load(LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cosx.yaml"), "output_dir: from-file\n")
	t.Setenv("COSX_OUTPUT_DIR", "from-env")

	cfg, err := Load(LoadOptions{SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OutputDir)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "COSX_EXTENSION=caos\n")

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv("COSX_EXTENSION", "")
	require.NoError(t, os.Unsetenv("COSX_EXTENSION"))

	cfg, err := Load(LoadOptions{SearchPaths: []string{dir}, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "caos", cfg.Extension)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(LoadOptions{SearchPaths: []string{dir}, EnvFile: filepath.Join(dir, ".env")})
	assert.NoError(t, err)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "COSX_CLOSING=paren\nCOSX_EXTENSION caos\n")

	// Register cleanup in case godotenv sets anything before failing.
	t.Setenv("COSX_CLOSING", "")
	require.NoError(t, os.Unsetenv("COSX_CLOSING"))

	_, err := Load(LoadOptions{SearchPaths: []string{dir}, EnvFile: envFile})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))

	var opErr *domain.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, envFile, opErr.Path)
}
