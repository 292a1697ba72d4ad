// Package config loads and saves the studentdb configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Database    Database    `yaml:"database"`
	Latency     Latency     `yaml:"latency"`
	Log         Log         `yaml:"log"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Database configures the SQLite store.
type Database struct {
	// Path to the database file; ":memory:" keeps everything in memory.
	Path         string        `yaml:"path" env:"STUDENTDB_DB_PATH"`
	BusyTimeout  time.Duration `yaml:"busy_timeout" env:"STUDENTDB_BUSY_TIMEOUT"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"STUDENTDB_QUERY_TIMEOUT"`
}

// Latency holds the simulated delay applied before each background store call.
// Zero disables the delay.
type Latency struct {
	Add    time.Duration `yaml:"add" env:"STUDENTDB_ADD_LATENCY"`
	View   time.Duration `yaml:"view" env:"STUDENTDB_VIEW_LATENCY"`
	Search time.Duration `yaml:"search" env:"STUDENTDB_SEARCH_LATENCY"`
}

// Log configures the file logger.
type Log struct {
	Level string `yaml:"level" env:"STUDENTDB_LOG_LEVEL"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Database: Database{
			Path:         filepath.Join("~", ".studentdb", "students.db"),
			BusyTimeout:  5 * time.Second,
			QueryTimeout: 5 * time.Second,
		},
		Latency: Latency{
			Add:  1000 * time.Millisecond,
			View: 800 * time.Millisecond,
		},
		Log: Log{
			Level: "info",
		},
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
}

// loadThemeFile loads and merges theme from STUDENTDB_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("STUDENTDB_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns default config (plus environment overrides) if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFrom("")
}

// ResolvePath returns the config file that LoadFrom(path) reads:
// path itself, then STUDENTDB_CONFIG, then the default location.
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv("STUDENTDB_CONFIG"); env != "" {
		return env, nil
	}
	return GetConfigPath()
}

// LoadFrom loads config from path, or from STUDENTDB_CONFIG / the default location when path is empty.
func LoadFrom(path string) (*Config, error) {
	config := Default()

	// without a resolvable location only the environment applies
	path, _ = ResolvePath(path)

	if _, err := os.Stat(path); path == "" || os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	loadThemeFile(config)

	// Fill in any values the file blanked out
	config.applyDefaults()

	return config, nil
}

// SaveTo writes the config as YAML to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "studentdb", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "studentdb", "config.yaml"), nil
}

// DatabasePath returns the database path with a leading ~ expanded.
func (d Database) DatabasePath() (string, error) {
	if d.Path != "~" && !strings.HasPrefix(d.Path, "~/") {
		return d.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(d.Path, "~")), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Database.Path == "" {
		c.Database.Path = defaults.Database.Path
	}
	if c.Database.BusyTimeout <= 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Database.QueryTimeout <= 0 {
		c.Database.QueryTimeout = defaults.Database.QueryTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
