// Package config provides configuration management for abacus.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration. It is read once at
// startup and passed into the core unchanged.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	History HistoryConfig `toml:"history"`
}

// LoggingConfig contains log output settings.
type LoggingConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	Format     string `toml:"format"` // "text" or "json"
	TimeFormat string `toml:"time_format"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// HistoryConfig contains calculation history settings.
type HistoryConfig struct {
	Dir        string `toml:"dir"`
	MaxEntries int    `toml:"max_entries"`
	OutputFile string `toml:"output_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	dataDir := DefaultDataDir()
	return &Config{
		Logging: LoggingConfig{
			File:       filepath.Join(dataDir, "logs", "abacus.log"),
			Level:      "info",
			Format:     "text",
			TimeFormat: "15:04:05.000",
			MaxSizeMB:  5,
			MaxBackups: 5,
		},
		History: HistoryConfig{
			Dir:        filepath.Join(dataDir, "history"),
			MaxEntries: 100,
			OutputFile: "history.csv",
		},
	}
}

// DefaultDataDir returns the default data directory based on OS.
func DefaultDataDir() string {
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "abacus")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", "abacus")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "abacus")
	default: // linux and others
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			return filepath.Join(xdgData, "abacus")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".abacus")
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), "config.toml")
}

// Load loads configuration from a TOML file, then applies environment
// variable overrides. A missing config file is not an error; defaults
// apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	} else {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	// Expand tilde in directory paths
	cfg.History.Dir = expandHome(cfg.History.Dir)
	cfg.Logging.File = expandHome(cfg.Logging.File)

	return cfg, nil
}

// Environment variables recognized by applyEnv.
const (
	EnvLogFile      = "ABACUS_LOG_FILE"
	EnvLogLevel     = "ABACUS_LOG_LEVEL"
	EnvLogFormat    = "ABACUS_LOG_FORMAT"
	EnvLogMaxSizeMB = "ABACUS_LOG_MAX_SIZE_MB"
	EnvLogBackups   = "ABACUS_LOG_MAX_BACKUPS"
	EnvHistoryDir   = "ABACUS_HISTORY_DIR"
	EnvMaxHistory   = "ABACUS_MAX_HISTORY"
	EnvOutputFile   = "ABACUS_OUTPUT_FILE"
)

// applyEnv overrides config values from the environment. Unparseable
// numeric values are a startup failure, not a silent fallback.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvHistoryDir); v != "" {
		cfg.History.Dir = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		cfg.History.OutputFile = v
	}

	for _, e := range []struct {
		name string
		dst  *int
	}{
		{EnvLogMaxSizeMB, &cfg.Logging.MaxSizeMB},
		{EnvLogBackups, &cfg.Logging.MaxBackups},
		{EnvMaxHistory, &cfg.History.MaxEntries},
	} {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", e.name, v, err)
		}
		*e.dst = n
	}

	return nil
}

// EnsureDirectories creates all necessary directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.History.Dir,
		filepath.Dir(c.Logging.File),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ResolveHistoryPath resolves name against the history storage
// directory. Absolute paths pass through unchanged.
func (c *Config) ResolveHistoryPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.History.Dir, name)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
