// Package config loads CLI settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds CLI settings.
type Config struct {
	Extract ExtractConfig `toml:"extract"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

// ExtractConfig controls which sheets are read and batch concurrency.
type ExtractConfig struct {
	AllSheets     bool `toml:"all_sheets"`
	RawCellValues bool `toml:"raw_cell_values"`
	Workers       int  `toml:"workers"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Format string `toml:"format"` // json, xlsx, sqlite
	Path   string `toml:"path"`
	Pretty bool   `toml:"pretty"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{Workers: 4},
		Output:  OutputConfig{Format: "json"},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// The result is not validated; callers apply overrides first and then
// call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "xlsx", "sqlite":
	default:
		return fmt.Errorf("invalid output format: %s (must be json, xlsx, or sqlite)", c.Output.Format)
	}
	if c.Output.Format != "json" && c.Output.Path == "" {
		return fmt.Errorf("output format %s requires an output path", c.Output.Format)
	}
	return nil
}
