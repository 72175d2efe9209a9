package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvDriver      = "ASTROLAB_DRIVER"
	EnvDSN         = "ASTROLAB_DSN"
	EnvLogLevel    = "ASTROLAB_LOG_LEVEL"
	EnvMetricsAddr = "ASTROLAB_METRICS_ADDR"
	EnvThemeFile   = "ASTROLAB_THEME_FILE"
)

// DefaultPostgresDSN is used when the postgres driver is selected without a DSN
const DefaultPostgresDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"

// DatabaseConfig selects the storage engine
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres"
	Driver string `yaml:"driver"`
	// DSN is a file path for sqlite (empty means ~/.astrolab/astrolab.db)
	// or a connection URL for postgres
	DSN string `yaml:"dsn"`
}

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	LogLevel    string         `yaml:"log_level"`
	MetricsAddr string         `yaml:"metrics_addr"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from ASTROLAB_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
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

// loadDotEnv loads a .env file from the working directory if present.
// Variables already set in the environment win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// applyEnv overrides file values with ASTROLAB_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDriver); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv(EnvDSN); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		c.MetricsAddr = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	loadThemeFile(&config)
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid database driver %q (must be: sqlite, postgres)", c.Database.Driver)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the location Load reads from and Save writes to
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "astrolab", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "astrolab", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	switch c.Database.Driver {
	case "":
		c.Database.Driver = "sqlite"
	case "postgresql", "pgx":
		c.Database.Driver = "postgres"
	case "sqlite3":
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		c.Database.DSN = DefaultPostgresDSN
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// OverrideDatabase applies command line values on top of the loaded config.
// Empty values leave the current setting alone.
func (c *Config) OverrideDatabase(driver, dsn string) error {
	if driver != "" {
		c.Database.Driver = driver
		if dsn == "" {
			c.Database.DSN = ""
		}
	}
	if dsn != "" {
		c.Database.DSN = dsn
	}
	c.applyDefaults()
	return c.Validate()
}
