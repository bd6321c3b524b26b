// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags and environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Model
	APIKey      string  `json:"api_key,omitempty"`     // Gemini API key (env GEMINI_API_KEY preferred)
	Model       string  `json:"model,omitempty"`       // Model name, e.g. gemini-2.5-flash
	Temperature float64 `json:"temperature,omitempty"` // Generation temperature (0.0-1.0)

	// Quota bookkeeping
	SweepIntervalSeconds int `json:"sweep_interval_seconds,omitempty"` // Stale quota entry sweep cadence
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                 8080,
		Model:                "gemini-2.5-flash",
		Temperature:          0.2,
		SweepIntervalSeconds: 300,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("config error: 'temperature' must be between 0.0 and 1.0")
	}
	if c.SweepIntervalSeconds < 0 {
		return fmt.Errorf("config error: 'sweep_interval_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Explicit values always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.SweepIntervalSeconds == 0 {
		result.SweepIntervalSeconds = defaults.SweepIntervalSeconds
	}

	return result
}

// SweepInterval returns the sweep cadence as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}
