package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sketchmatch/internal/pencil"
	"sketchmatch/internal/raster"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	if c.Width != 128 || c.Height != 128 || c.Channels != 4 || c.Scale != 3 {
		t.Errorf("surface = %dx%dx%d scale %d, want 128x128x4 scale 3", c.Width, c.Height, c.Channels, c.Scale)
	}
	if c.MinRadius != pencil.MinRadius || c.MaxRadius != pencil.MaxRadius {
		t.Errorf("radius range = [%d, %d]", c.MinRadius, c.MaxRadius)
	}
	if !c.BinarizeTargets() {
		t.Error("BinarizeTargets() = false by default")
	}
	if c.RoundSeconds != 60 || c.ScoreEvery != 30 || c.LogLevel != "warn" {
		t.Errorf("game defaults = %d s, every %d, level %q", c.RoundSeconds, c.ScoreEvery, c.LogLevel)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	c := Config{Target: "file.png", Scale: 2, LogLevel: "info"}
	c.Resolve(Flags{Target: "smile.png", Scale: 5, LogLevel: "debug"})
	if c.Target != "smile.png" || c.Scale != 5 || c.LogLevel != "debug" {
		t.Errorf("after Resolve: target %q, scale %d, level %q", c.Target, c.Scale, c.LogLevel)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.json")
	data := `{"width": 64, "ink": "#ff0000", "binarize": false, "round_seconds": 15}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	c.Resolve(Flags{})
	if c.Width != 64 || c.Height != 128 || c.RoundSeconds != 15 {
		t.Errorf("Load() = %+v", c)
	}
	if c.BinarizeTargets() {
		t.Error("binarize: false in file was not honoured")
	}

	cc, err := c.Canvas()
	if err != nil {
		t.Fatal(err)
	}
	if cc.Ink != (raster.RGB{R: 0xff}) {
		t.Errorf("Canvas().Ink = %v, want red", cc.Ink)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil || !strings.Contains(err.Error(), "config: read") {
		t.Errorf("Load(missing) error = %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("Load(bad) error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"channels", func(c *Config) { c.Channels = 2 }, "channels"},
		{"radius", func(c *Config) { c.MinRadius, c.MaxRadius = 5, 1 }, "radius"},
		{"colour", func(c *Config) { c.Preview = "grey" }, "preview"},
		{"same colours", func(c *Config) { c.Paper = c.Ink }, "must differ"},
		{"same colours by case", func(c *Config) { c.Ink, c.Paper = "#FFFFFF", "#ffffff" }, "must differ"},
		{"same colours short form", func(c *Config) { c.Ink, c.Paper = "#fff", "#ffffff" }, "must differ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.Resolve(Flags{})
			tt.modify(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}
}

func TestValidateErrorOrder(t *testing.T) {
	var c Config
	c.Resolve(Flags{})
	c.Ink, c.Paper, c.Preview = "x", "y", "z"
	want := c.Validate().Error()
	for i := 0; i < 20; i++ {
		got := c.Validate().Error()
		if got != want {
			t.Fatalf("Validate() = %q, earlier %q", got, want)
		}
	}
	ink := strings.Index(want, "ink")
	paper := strings.Index(want, "paper")
	preview := strings.Index(want, "preview")
	if ink < 0 || !(ink < paper && paper < preview) {
		t.Errorf("Validate() = %q, want ink, paper, preview in order", want)
	}
	if strings.Contains(want, "must differ") {
		t.Errorf("Validate() = %q, unparsable colours compared", want)
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("#1a2b3c")
	if err != nil {
		t.Fatal(err)
	}
	if got != (raster.RGB{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Errorf("ParseColor(#1a2b3c) = %v", got)
	}
	if _, err := ParseColor("nope"); err == nil {
		t.Error("ParseColor(nope) succeeded")
	}
}
