// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Remote RemoteConfig `yaml:"remote"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// RemoteConfig holds backend connection settings.
type RemoteConfig struct {
	BaseURL string `envconfig:"LOKAL_BASE_URL" yaml:"base_url"`
	APIKey  string `envconfig:"LOKAL_API_KEY" yaml:"api_key"`
}

// SearchConfig holds resolution pipeline settings.
type SearchConfig struct {
	DebounceMS     int    `envconfig:"LOKAL_DEBOUNCE_MS" yaml:"debounce_ms"`
	GenericDelayMS int    `envconfig:"LOKAL_GENERIC_DELAY_MS" yaml:"generic_delay_ms"`
	DefaultUnit    string `envconfig:"LOKAL_DEFAULT_UNIT" yaml:"default_unit"`
	DefaultLimit   int    `envconfig:"LOKAL_DEFAULT_LIMIT" yaml:"default_limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"LOKAL_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"LOKAL_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variables, in increasing priority.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv loads configuration without a config file.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Search = SearchConfig{
		DebounceMS:     500,
		GenericDelayMS: 300,
		DefaultUnit:    "mi",
		DefaultLimit:   6,
	}
	cfg.Log = LogConfig{
		Level:  "warn",
		Format: "text",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Search.DefaultUnit) {
	case "km", "mi":
	default:
		return fmt.Errorf("default_unit must be km or mi, got %q", c.Search.DefaultUnit)
	}
	if c.Search.DebounceMS < 0 {
		return fmt.Errorf("debounce_ms must be >= 0, got %d", c.Search.DebounceMS)
	}
	if c.Search.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0, got %d", c.Search.DefaultLimit)
	}
	return nil
}
