package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	clr "github.com/lucasb-eyer/go-colorful"

	"sketchmatch/internal/canvas"
	"sketchmatch/internal/pencil"
	"sketchmatch/internal/raster"
)

// Config holds the surface geometry, colours and game settings.
type Config struct {
	// Surface
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
	Scale    int `json:"scale"` // display pixels per canvas pixel

	// Colours, as #rrggbb
	Ink     string `json:"ink"`
	Paper   string `json:"paper"`
	Preview string `json:"preview"`

	// Pencil
	MinRadius  int     `json:"min_radius"`
	MaxRadius  int     `json:"max_radius"`
	WheelScale float64 `json:"wheel_scale"` // host wheel units to browser delta

	// Game
	Target       string `json:"target"` // embedded target name or image path
	Binarize     *bool  `json:"binarize"`
	RoundSeconds int    `json:"round_seconds"`
	ScoreEvery   int    `json:"score_every"` // ticks between live score polls

	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Target   string
	Scale    int
	LogLevel string
}

// Resolve applies CLI overrides and fills in defaults for every field that
// is still empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Target != "" {
		c.Target = flags.Target
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.Width <= 0 {
		c.Width = 128
	}
	if c.Height <= 0 {
		c.Height = 128
	}
	if c.Channels == 0 {
		c.Channels = 4
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
	if c.Ink == "" {
		c.Ink = "#000000"
	}
	if c.Paper == "" {
		c.Paper = "#ffffff"
	}
	if c.Preview == "" {
		c.Preview = "#888888"
	}
	if c.MinRadius == 0 && c.MaxRadius == 0 {
		c.MinRadius = pencil.MinRadius
		c.MaxRadius = pencil.MaxRadius
	}
	if c.WheelScale == 0 {
		c.WheelScale = 4
	}
	if c.Binarize == nil {
		on := true
		c.Binarize = &on
	}
	if c.RoundSeconds <= 0 {
		c.RoundSeconds = 60
	}
	if c.ScoreEvery <= 0 {
		c.ScoreEvery = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate reports every invalid setting of a resolved config.
func (c *Config) Validate() error {
	var errs []error
	if c.Channels != 3 && c.Channels != 4 {
		errs = append(errs, fmt.Errorf("config: channels must be 3 or 4, got %d", c.Channels))
	}
	if c.MinRadius < 0 || c.MaxRadius < c.MinRadius {
		errs = append(errs, fmt.Errorf("config: bad radius range [%d, %d]", c.MinRadius, c.MaxRadius))
	}
	colors := []struct {
		name string
		hex  string
	}{
		{"ink", c.Ink},
		{"paper", c.Paper},
		{"preview", c.Preview},
	}
	parsed := make(map[string]raster.RGB, len(colors))
	for _, col := range colors {
		rgb, err := ParseColor(col.hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("config: %s: %w", col.name, err))
			continue
		}
		parsed[col.name] = rgb
	}
	ink, inkOK := parsed["ink"]
	paper, paperOK := parsed["paper"]
	if inkOK && paperOK && ink == paper {
		errs = append(errs, errors.New("config: ink and paper must differ"))
	}
	return errors.Join(errs...)
}

// BinarizeTargets reports whether target images are snapped to ink/paper.
func (c *Config) BinarizeTargets() bool {
	return c.Binarize == nil || *c.Binarize
}

// Canvas converts the config into canvas settings.
func (c *Config) Canvas() (canvas.Config, error) {
	ink, err := ParseColor(c.Ink)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("config: ink: %w", err)
	}
	paper, err := ParseColor(c.Paper)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("config: paper: %w", err)
	}
	preview, err := ParseColor(c.Preview)
	if err != nil {
		return canvas.Config{}, fmt.Errorf("config: preview: %w", err)
	}
	return canvas.Config{
		Width:     c.Width,
		Height:    c.Height,
		Channels:  c.Channels,
		Ink:       ink,
		Paper:     paper,
		Preview:   preview,
		MinRadius: c.MinRadius,
		MaxRadius: c.MaxRadius,
	}, nil
}

// ParseColor parses a #rrggbb colour.
func ParseColor(hex string) (raster.RGB, error) {
	col, err := clr.Hex(hex)
	if err != nil {
		return raster.RGB{}, err
	}
	r, g, b := col.Clamped().RGB255()
	return raster.RGB{R: r, G: g, B: b}, nil
}
