// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment overrides, e.g. OUTREACH_PORT.
const envPrefix = "outreach"

// Config represents the application configuration. Values can come from a
// JSON file, environment variables (OUTREACH_ prefix), or CLI flags; flags
// win over environment, environment wins over file.
type Config struct {
	// Server
	Port int `json:"port,omitempty" envconfig:"PORT" default:"8080"`

	// SeedFile is an optional JSON seed file loaded into the store at
	// startup.
	SeedFile string `json:"seed_file,omitempty" envconfig:"SEED_FILE"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" envconfig:"LOG_LEVEL" default:"info"`

	// Verbose enables boxed terminal summaries in CLI commands.
	Verbose bool `json:"verbose,omitempty" envconfig:"VERBOSE"`
}

// LoadFile loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from OUTREACH_-prefixed environment
// variables with defaults applied.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Port != 0 {
		c.Port = other.Port
	}
	if other.SeedFile != "" {
		c.SeedFile = other.SeedFile
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Verbose {
		c.Verbose = true
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: seed file not found: %s", c.SeedFile)
		}
	}

	return nil
}
