package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 5, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 5, cfg.Logging.MaxBackups)
	assert.Equal(t, 100, cfg.History.MaxEntries)
	assert.Equal(t, "history.csv", cfg.History.OutputFile)
	assert.NotEmpty(t, cfg.Logging.File)
	assert.NotEmpty(t, cfg.History.Dir)
}

func TestConfig_LoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Logging.Level, cfg.Logging.Level)
}

func TestConfig_LoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "debug"
max_size_mb = 10

[history]
max_entries = 25
output_file = "calcs.csv"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.Logging.MaxSizeMB)
	assert.Equal(t, 25, cfg.History.MaxEntries)
	assert.Equal(t, "calcs.csv", cfg.History.OutputFile)
	// Unset fields keep their defaults
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestConfig_LoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging\nlevel="), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[logging]\nlevel = \"debug\"\n"), 0644))

	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMaxHistory, "7")
	t.Setenv(EnvHistoryDir, "/tmp/abacus-test-history")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 7, cfg.History.MaxEntries)
	assert.Equal(t, "/tmp/abacus-test-history", cfg.History.Dir)
}

func TestConfig_EnvInvalidNumber(t *testing.T) {
	t.Setenv(EnvMaxHistory, "lots")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestConfig_ResolveHistoryPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Dir = "/data/history"

	assert.Equal(t, "/data/history/out.csv", cfg.ResolveHistoryPath("out.csv"))
	assert.Equal(t, "/elsewhere/out.csv", cfg.ResolveHistoryPath("/elsewhere/out.csv"))
}

func TestConfig_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.History.Dir = filepath.Join(dir, "history")
	cfg.Logging.File = filepath.Join(dir, "logs", "abacus.log")

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.History.Dir)
	assert.DirExists(t, filepath.Join(dir, "logs"))
}
