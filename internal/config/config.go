// Package config holds sparsecalc configuration: where results go, whether
// to dump the dense grid, parse strictness and logging. Values come from a
// YAML file, then environment overrides, then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvOutput   = "SPARSECALC_OUTPUT"
	EnvLogLevel = "SPARSECALC_LOG_LEVEL"
)

// Config holds all sparsecalc configuration.
type Config struct {
	// Output is the path the serialized result is written to.
	// Empty or "-" means stdout.
	Output string `yaml:"output"`

	// PrintGrid dumps the result as a dense grid after saving it.
	PrintGrid bool `yaml:"print_grid"`

	// StrictBounds rejects data lines outside the declared shape.
	StrictBounds bool `yaml:"strict_bounds"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:       "result.txt",
		PrintGrid:    false,
		StrictBounds: false,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects unknown logging levels and formats.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}

	return nil
}

// WritesToStdout reports whether results go to standard output.
func (c *Config) WritesToStdout() bool {
	return c.Output == "" || c.Output == "-"
}

func (c *Config) applyEnvOverrides() {
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
}
