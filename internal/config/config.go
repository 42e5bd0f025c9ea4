// Package config loads the YAML run configuration of the treegen command.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/treegen/growth"
	"github.com/gogpu/treegen/render"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Rendering modes.
const (
	ModePolygon  = "polygon"
	ModeCoverage = "coverage"
)

type Config struct {
	Seed    uint64              `yaml:"seed"`
	Workers int                 `yaml:"workers"`
	Canvas  CanvasConfig        `yaml:"canvas"`
	Trunk   growth.TrunkParams  `yaml:"trunk"`
	Branch  growth.BranchParams `yaml:"branch"`
	Output  string              `yaml:"output"`
}

type CanvasConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"`
	Background  string `yaml:"background"`
	Mode        string `yaml:"mode"`
	Caption     bool   `yaml:"caption"`
}

// Default returns a configuration that grows and renders a tree without
// any file.
func Default() Config {
	return Config{
		Seed: 1,
		Canvas: CanvasConfig{
			Width:       1024,
			Height:      1024,
			Supersample: 2,
			Background:  "#ffffff",
			Mode:        ModePolygon,
			Caption:     true,
		},
		Trunk:  growth.DefaultTrunkParams(1, 1, 1, 0.5),
		Branch: growth.DefaultBranchParams(1, 1, 0.5),
		Output: "tree.png",
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default, so absent keys keep their defaults, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas dimensions must be positive", ErrInvalid)
	}
	if c.Canvas.Supersample < 1 {
		return fmt.Errorf("%w: canvas.supersample must be at least 1", ErrInvalid)
	}
	if _, err := ParseHexColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("%w: canvas.background: %w", ErrInvalid, err)
	}
	switch c.Canvas.Mode {
	case ModePolygon, ModeCoverage:
	default:
		return fmt.Errorf("%w: canvas.mode must be either %q or %q", ErrInvalid, ModePolygon, ModeCoverage)
	}
	if c.Trunk.MaxChildren < 0 {
		return fmt.Errorf("%w: trunk.max_children cannot be negative", ErrInvalid)
	}
	if c.Trunk.Variability < 0 || c.Trunk.VariabilityModifier < 0 {
		return fmt.Errorf("%w: trunk variability cannot be negative", ErrInvalid)
	}
	if c.Trunk.BranchSizeFalloff <= 0 {
		return fmt.Errorf("%w: trunk.branch_size_falloff must be positive", ErrInvalid)
	}
	if c.Branch.Spread < 0 || c.Branch.Variability < 0 {
		return fmt.Errorf("%w: branch spread and variability cannot be negative", ErrInvalid)
	}
	if c.Branch.BaseSizeReduction <= 0 {
		return fmt.Errorf("%w: branch.base_size_reduction must be positive", ErrInvalid)
	}
	if c.Branch.BaseAngleStdDevDeg < 0 {
		return fmt.Errorf("%w: branch.base_angle_std_dev_deg cannot be negative", ErrInvalid)
	}
	if _, err := render.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalid, err)
	}
	return nil
}

// BackgroundColor returns the parsed canvas background. Validate has
// already rejected malformed values.
func (c *Config) BackgroundColor() color.RGBA {
	col, _ := ParseHexColor(c.Canvas.Background)
	return col
}

// ParseHexColor parses an opaque "#rrggbb" color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not a #rrggbb color", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
