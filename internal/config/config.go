// Package config loads billform settings from YAML, .env and the environment
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory, the data directory and the log file
const AppName = "billform"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Export      ExportConfig   `yaml:"export"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// ExportConfig controls where exported files are written
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory, then applies a .env
// file from the working directory and BILLFORM_* environment overrides.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	// .env is optional; a missing file is the normal case
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case os.IsNotExist(readErr):
			// Fall through to defaults
		default:
			return nil, readErr
		}
	}

	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// DataDir returns ~/.billform, where the SQLite file and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+AppName), nil
}

// Path returns the config file location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName, "config.yaml"), nil
}

// applyEnv overrides file values with BILLFORM_* environment variables
func (c *Config) applyEnv() {
	c.Database.applyEnv()
	if v := os.Getenv("BILLFORM_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Database.applyDefaults()
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
