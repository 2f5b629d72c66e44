// Package config loads demo host settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/wrapped"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// FileName is the config file looked up in the user config directory.
const FileName = "wrapped.toml"

// Config holds the knobs shared by the GLFW and terminal demos.
type Config struct {
	Items      int     `toml:"items"`       // Number of generated items
	Columns    int     `toml:"columns"`     // Items per row
	ItemHeight float32 `toml:"item_height"` // Row height in host units (pixels or terminal lines)
	Buffer     float32 `toml:"buffer"`      // Prefetch beyond the built-in slack
	Convention string  `toml:"convention"`  // "top-left" or "bottom-left"
	RowLines   int     `toml:"row_lines"`   // Terminal lines per row in the terminal demo
	Verbose    bool    `toml:"verbose"`
	LogFile    string  `toml:"log_file"` // Where the terminal demo writes logs
}

// Default returns a Config with the demo defaults.
func Default() Config {
	return Config{
		Items:      50_000,
		Columns:    8,
		ItemHeight: 24,
		Buffer:     0,
		Convention: "top-left",
		RowLines:   1,
	}
}

// ApplyDefaults fills zero-valued fields from Default.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.Columns == 0 {
		c.Columns = d.Columns
	}
	if c.ItemHeight == 0 {
		c.ItemHeight = d.ItemHeight
	}
	if c.Convention == "" {
		c.Convention = d.Convention
	}
	if c.RowLines == 0 {
		c.RowLines = d.RowLines
	}
}

// Validate rejects settings the layout and window would refuse.
func (c Config) Validate() error {
	switch {
	case c.Items < 0:
		return fmt.Errorf("%w: items must not be negative, got %d", ErrInvalidConfig, c.Items)
	case c.Columns < 1:
		return fmt.Errorf("%w: columns must be at least 1, got %d", ErrInvalidConfig, c.Columns)
	case c.ItemHeight < 0:
		return fmt.Errorf("%w: item_height must not be negative, got %v", ErrInvalidConfig, c.ItemHeight)
	case c.Buffer < 0:
		return fmt.Errorf("%w: buffer must not be negative, got %v", ErrInvalidConfig, c.Buffer)
	case c.RowLines < 1:
		return fmt.Errorf("%w: row_lines must be at least 1, got %d", ErrInvalidConfig, c.RowLines)
	}
	if _, err := c.WindowConvention(); err != nil {
		return err
	}
	return nil
}

// WindowConvention maps the convention name to a wrapped.Convention.
func (c Config) WindowConvention() (wrapped.Convention, error) {
	switch strings.ToLower(strings.TrimSpace(c.Convention)) {
	case "", "top-left", "topleft":
		return wrapped.TopLeft, nil
	case "bottom-left", "bottomleft":
		return wrapped.BottomLeft, nil
	default:
		return nil, fmt.Errorf("%w: unknown convention %q", ErrInvalidConfig, c.Convention)
	}
}

// BottomLeft reports whether hosts should report geometry with a
// bottom-left origin.
func (c Config) BottomLeft() bool {
	switch strings.ToLower(strings.TrimSpace(c.Convention)) {
	case "bottom-left", "bottomleft":
		return true
	}
	return false
}

// WindowOptions returns the wrapped options for this config.
func (c Config) WindowOptions() ([]wrapped.Option, error) {
	conv, err := c.WindowConvention()
	if err != nil {
		return nil, err
	}
	return []wrapped.Option{
		wrapped.WithBuffer(c.Buffer),
		wrapped.WithConvention(conv),
	}, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns <user config dir>/wrapped/wrapped.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "wrapped", FileName)
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
