// Package config provides configuration file handling for arraypath.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/thirteen37/arraypath/internal/path"
)

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = ".arraypath.toml"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds tool defaults. Command-line flags override every field.
type Config struct {
	// Separator splits path strings into keys.
	Separator string `toml:"separator"`

	// Format is a format name or "auto" to detect from the file extension.
	Format string `toml:"format"`

	// Indent is used when writing documents.
	Indent string `toml:"indent"`

	// StripComments strips // comments from JSON input.
	StripComments bool `toml:"strip-comments"`

	// Color is one of auto, always, never.
	Color string `toml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Separator: path.DefaultSeparator,
		Format:    "auto",
		Indent:    "  ",
		Color:     ColorAuto,
	}
}

// Load reads a Config from a TOML file. Fields missing from the file keep
// their default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config file: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filename, err)
	}

	return cfg, nil
}

// LoadOrDefault loads filename, returning defaults when it does not exist.
// Other read or parse errors are returned.
func LoadOrDefault(filename string) (*Config, error) {
	cfg, err := Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the Config to a file.
func (c *Config) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	return nil
}
