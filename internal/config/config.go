package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	DefaultVersion = 1
	DefaultPath    = ".strcalc.json"

	FormatText = "text"
	FormatJSON = "json"

	// Default values for watch configuration.
	DefaultWatchDebounce = 100 * time.Millisecond
	minWatchDebounce     = 10 * time.Millisecond
	maxWatchDebounce     = 10 * time.Second
)

// Config defines settings stored in .strcalc.json.
type Config struct {
	Version int           `json:"version"`
	Input   *InputConfig  `json:"input,omitempty"`
	Output  *OutputConfig `json:"output,omitempty"`
	Watch   *WatchConfig  `json:"watch,omitempty"`
}

// InputConfig controls how command-line input is read.
type InputConfig struct {
	// Escapes enables \n, \t and \\ sequences in arguments (default true).
	Escapes *bool `json:"escapes,omitempty"`
}

// EscapesEnabled returns whether escape sequences are interpreted (default true).
func (c *InputConfig) EscapesEnabled() bool {
	if c == nil || c.Escapes == nil {
		return true
	}
	return *c.Escapes
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	// Format is "text" or "json" (default "text").
	Format *string `json:"format,omitempty"`

	// Color enables styled output (default true).
	Color *bool `json:"color,omitempty"`
}

// GetFormat returns the output format (default "text").
func (c *OutputConfig) GetFormat() string {
	if c == nil || c.Format == nil {
		return FormatText
	}
	return *c.Format
}

// ColorEnabled returns whether styled output is enabled (default true).
func (c *OutputConfig) ColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// Validate checks the output format.
func (c *OutputConfig) Validate() error {
	if c == nil || c.Format == nil {
		return nil
	}
	switch *c.Format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatText, FormatJSON, *c.Format)
	}
}

// WatchConfig holds file watch settings.
type WatchConfig struct {
	// Debounce is how long to wait after the last change before re-evaluating (default "100ms").
	Debounce *string `json:"debounce,omitempty"`
}

// GetDebounce returns the debounce delay (default 100ms).
func (c *WatchConfig) GetDebounce() time.Duration {
	if c == nil || c.Debounce == nil {
		return DefaultWatchDebounce
	}
	d, err := time.ParseDuration(*c.Debounce)
	if err != nil {
		return DefaultWatchDebounce
	}
	return d
}

// Validate checks that the debounce delay is within sensible bounds.
func (c *WatchConfig) Validate() error {
	if c == nil || c.Debounce == nil {
		return nil
	}
	d, err := time.ParseDuration(*c.Debounce)
	if err != nil {
		return fmt.Errorf("invalid debounce: %w", err)
	}
	if d < minWatchDebounce {
		return fmt.Errorf("debounce must be at least %v, got %v", minWatchDebounce, d)
	}
	if d > maxWatchDebounce {
		return fmt.Errorf("debounce must be at most %v, got %v", maxWatchDebounce, d)
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{Version: DefaultVersion}
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a config to disk.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("invalid output config: %w", err)
	}
	if err := c.Watch.Validate(); err != nil {
		return fmt.Errorf("invalid watch config: %w", err)
	}
	return nil
}

func decode(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
