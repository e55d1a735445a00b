// Package config defines the configuration for the gocss CLI. The
// types are pure data structures; file discovery lives in the CLI.
package config

import (
	"fmt"
	"os"
)

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for gocss.
type Config struct {
	// Color controls colored output: "auto", "always", or "never".
	Color ColorMode `yaml:"color"`

	// SourceName is the synthetic source recorded in emitted source
	// maps when the input has no usable path (stdin).
	SourceName string `yaml:"source_name"`

	// LogLevel is the default log level ("debug", "info", "warn",
	// "error").
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:      ColorAuto,
		SourceName: "input.css",
		LogLevel:   "info",
	}
}

// Load reads a configuration file and overlays it on the defaults.
// A missing path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	loaded, err := FromYAML(data)
	if err != nil {
		return nil, err
	}
	cfg.merge(loaded)

	if !cfg.Color.IsValid() {
		return nil, fmt.Errorf("invalid color mode %q", cfg.Color)
	}
	return cfg, nil
}

// merge overlays the non-zero fields of other onto c.
func (c *Config) merge(other *Config) {
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.SourceName != "" {
		c.SourceName = other.SourceName
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
