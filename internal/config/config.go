// Package config loads the softwrap YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration file.
type Config struct {
	Editor Editor `yaml:"editor"`
	Log    Log    `yaml:"log"`
}

// Editor configures the editor component.
type Editor struct {
	LineNumbers bool `yaml:"line_numbers"`
	Border      bool `yaml:"border"`
	TabWidth    int  `yaml:"tab_width"`
	// Width fixes the wrap width. Zero follows the terminal.
	Width int `yaml:"width"`
}

// Log configures the debug log. An empty Path disables logging.
type Log struct {
	Path   string `yaml:"path"`
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: Editor{
			LineNumbers: true,
			Border:      true,
			TabWidth:    4,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		return fmt.Errorf("invalid tab_width: %d (must be 1..16)", c.Editor.TabWidth)
	}
	if c.Editor.Width < 0 {
		return fmt.Errorf("invalid width: %d (must be >= 0)", c.Editor.Width)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.Log.Level)
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", c.Log.Format)
	}
	return nil
}
