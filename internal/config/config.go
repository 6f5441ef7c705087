// Package config loads the lifebits configuration from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LIFEBITS_"

// Config holds all lifebits configuration.
type Config struct {
	Espresso EspressoConfig `yaml:"espresso" envPrefix:"ESPRESSO_"`
	Output   OutputConfig   `yaml:"output" envPrefix:"OUTPUT_"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOG_"`
}

// EspressoConfig configures the external minimizer.
type EspressoConfig struct {
	Path    string   `yaml:"path" env:"PATH" validate:"required"`
	Args    []string `yaml:"args" env:"ARGS" envSeparator:" "`
	Timeout string   `yaml:"timeout" env:"TIMEOUT" validate:"required"`
}

// OutputConfig configures where generated files go. An empty Dir writes
// to stdout.
type OutputConfig struct {
	Dir string `yaml:"dir" env:"DIR"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=json console"`
}

var validate = validator.New()

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Espresso: EspressoConfig{
			Path:    "espresso",
			Args:    []string{"-Dopoall", "-S1"},
			Timeout: "10m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides overwrites fields whose LIFEBITS_* variable is set.
func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(c.Espresso.Timeout); err != nil {
		return fmt.Errorf("invalid config: espresso timeout %q: %w", c.Espresso.Timeout, err)
	}
	return nil
}

// GetEspressoTimeout returns the minimizer timeout as a duration.
func (c *Config) GetEspressoTimeout() time.Duration {
	d, err := time.ParseDuration(c.Espresso.Timeout)
	if err != nil {
		return 10 * time.Minute
	}
	return d
}

// OutputPath returns the file for a generated artifact, or "" for stdout.
func (c *Config) OutputPath(name, ext string) string {
	if c.Output.Dir == "" {
		return ""
	}
	return filepath.Join(c.Output.Dir, name+ext)
}
