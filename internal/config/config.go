// Package config loads compiler-driver settings from a TOML file, the same
// format and library the teacher's world-data loader (internal/tqw) uses for
// its own resource files.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that shape a compile run but are not part of
// the language itself: diagnostic presentation, lexer limits, and the
// strict/lenient default for type comparisons.
type Config struct {
	// Color enables ANSI-colored diagnostic output on the CLI.
	Color bool `toml:"color"`

	// TabWidth is loaded and validated; caret rendering in package diag
	// does not consult it.
	TabWidth int `toml:"tab_width"`

	// StrictByDefault selects strict type equality (no Double/Float
	// interchange, no Custom wildcard, no Null leniency) as the default
	// comparison mode.
	StrictByDefault bool `toml:"strict_by_default"`

	// MaxTokenLength bounds how far the lexer scans a quoted literal or a
	// block comment before reporting it as unterminated, a fatal error.
	// Values below lexer.DefaultMaxTokenLength are raised to it.
	MaxTokenLength int `toml:"max_token_length"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Color:           true,
		TabWidth:        4,
		StrictByDefault: false,
		MaxTokenLength:  4096,
	}
}

// Load reads and decodes a TOML config file at path, starting from Default
// so that a file which sets only some keys leaves the rest unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate returns an error if cfg has settings that cannot be acted on.
func (cfg Config) Validate() error {
	if cfg.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", cfg.TabWidth)
	}
	if cfg.MaxTokenLength < 1 {
		return fmt.Errorf("max_token_length must be at least 1, got %d", cfg.MaxTokenLength)
	}
	return nil
}
