// Package config loads scene descriptions: window settings, the drawing style
// and the entities to place. Files are YAML and overlay DefaultConfig.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entity kinds understood by the scene builder.
const (
	KindBox   = "box"
	KindCard  = "card"
	KindToken = "token"
)

// Config holds one scene.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Style    StyleConfig    `yaml:"style"`
	Entities []EntityConfig `yaml:"entities"`
}

// WindowConfig controls the host window
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	Background string `yaml:"background"`
}

// StyleConfig is the visual style applied to every entity. Colours are
// names from x/image/colornames or #rrggbb / #rrggbbaa.
type StyleConfig struct {
	Outline     string  `yaml:"outline"`
	Fill        string  `yaml:"fill"`
	Text        string  `yaml:"text"`
	StrokeWidth float32 `yaml:"stroke_width"`
}

// EntityConfig places one draggable. Width and height are not validated.
type EntityConfig struct {
	Kind         string  `yaml:"kind"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Label        string  `yaml:"label,omitempty"`
	Fixed        bool    `yaml:"fixed,omitempty"`
	HandleHeight float64 `yaml:"handle_height,omitempty"` // cards only
}

// DefaultConfig returns a small demo scene.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     800,
			Title:      "dragbox",
			Resizable:  true,
			Background: "black",
		},
		Style: StyleConfig{
			Outline:     "red",
			Fill:        "darkslategray",
			Text:        "white",
			StrokeWidth: 1,
		},
		Entities: []EntityConfig{
			{Kind: KindBox, X: 10, Y: 10, Width: 20, Height: 20},
			{Kind: KindBox, X: 80, Y: 40, Width: 120, Height: 80},
			{Kind: KindCard, X: 260, Y: 60, Width: 160, Height: 100, Label: "drag me by the top"},
			{Kind: KindToken, X: 480, Y: 80, Width: 48, Height: 48},
			{Kind: KindBox, X: 560, Y: 200, Width: 64, Height: 64, Fixed: true},
		},
	}
}

// LoadConfig loads a scene from a YAML file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig overlays YAML data on DefaultConfig. An entities list in the
// data replaces the default one entirely.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks entity kinds and style colours.
func (c *Config) Validate() error {
	for i, e := range c.Entities {
		switch e.Kind {
		case KindBox, KindCard, KindToken:
		case "":
			return fmt.Errorf("entity %d: missing kind", i)
		default:
			return fmt.Errorf("entity %d: unknown kind %q", i, e.Kind)
		}
	}
	for name, v := range map[string]string{
		"outline":    c.Style.Outline,
		"fill":       c.Style.Fill,
		"text":       c.Style.Text,
		"background": c.Window.Background,
	} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
