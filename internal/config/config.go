// Package config loads the inventory layout and UI options from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"grid-inventory/assets"
	"grid-inventory/internal/grid"
	"grid-inventory/internal/inventory"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything a session needs to start.
type Config struct {
	Grid  GridConfig   `yaml:"grid"`
	Items []ItemConfig `yaml:"items"`
	UI    UIConfig     `yaml:"ui"`
	Audio AudioConfig  `yaml:"audio"`
}

// GridConfig holds the grid dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ItemConfig is one item to place at startup.
type ItemConfig struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"` // defaults to the catalog glyph for Name
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// UIConfig holds rendering options.
type UIConfig struct {
	Debug    bool `yaml:"debug"`     // start with the occupancy overlay on
	ShowHelp bool `yaml:"show_help"` // key hints under the grid
}

// AudioConfig holds sound cue options.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// Default returns the built-in configuration: the default grid and the
// asset catalog, with help and audio on.
func Default() *Config {
	cfg := &Config{
		Grid:  GridConfig{Width: assets.DefaultGridWidth, Height: assets.DefaultGridHeight},
		UI:    UIConfig{ShowHelp: true},
		Audio: AudioConfig{Enabled: true, Volume: 0.6},
	}
	for _, d := range assets.Catalog() {
		cfg.Items = append(cfg.Items, ItemConfig{Name: d.Name, Glyph: d.Glyph, Width: d.W, Height: d.H})
	}
	return cfg
}

// Load reads configuration from a YAML file. Sections left out of the file
// keep the values from Default; an items list in the file replaces the
// catalog entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Items = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Items == nil {
		cfg.Items = Default().Items
	}
	for i := range cfg.Items {
		if cfg.Items[i].Glyph == "" {
			cfg.Items[i].Glyph = assets.GlyphFor(cfg.Items[i].Name)
		}
	}
}

// Validate checks dimensions and option ranges.
func (c *Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	}
	for i, it := range c.Items {
		if it.Name == "" {
			return fmt.Errorf("%w: item %d: name is required", ErrInvalid, i)
		}
		if it.Width <= 0 || it.Height <= 0 {
			return fmt.Errorf("%w: item %d (%s): size must be at least 1x1, got %dx%d", ErrInvalid, i, it.Name, it.Width, it.Height)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume must be between 0 and 1, got %g", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// Inventory converts c into the input of inventory.New.
func (c *Config) Inventory() inventory.Config {
	out := inventory.Config{Width: c.Grid.Width, Height: c.Grid.Height}
	for _, it := range c.Items {
		out.Items = append(out.Items, inventory.ItemSpec{
			Name:  it.Name,
			Glyph: it.Glyph,
			Size:  grid.Footprint{W: it.Width, H: it.Height},
		})
	}
	return out
}
