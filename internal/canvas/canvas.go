// Package canvas owns the user's drawing and advances it one update tick
// at a time.
package canvas

import (
	"fmt"

	"sketchmatch/internal/logger"
	"sketchmatch/internal/pencil"
	"sketchmatch/internal/raster"
)

// Config describes the drawing surface.
type Config struct {
	Width    int
	Height   int
	Channels int

	Ink     raster.RGB // primary button
	Paper   raster.RGB // secondary button, and the initial fill
	Preview raster.RGB // cursor preview

	MinRadius int
	MaxRadius int
}

// DefaultConfig is the 128x128 black-on-white setup of the game.
func DefaultConfig() Config {
	return Config{
		Width:     128,
		Height:    128,
		Channels:  4,
		Ink:       raster.RGB{R: 0x00, G: 0x00, B: 0x00},
		Paper:     raster.RGB{R: 0xff, G: 0xff, B: 0xff},
		Preview:   raster.RGB{R: 0x88, G: 0x88, B: 0x88},
		MinRadius: pencil.MinRadius,
		MaxRadius: pencil.MaxRadius,
	}
}

// Canvas is the persistent pixel buffer plus the pencil that paints it.
type Canvas struct {
	buf *raster.Buffer
	pen *pencil.State

	ink, paper, preview raster.RGB
}

// New creates a canvas filled with the paper colour.
func New(cfg Config) (*Canvas, error) {
	buf, err := raster.NewBuffer(cfg.Width, cfg.Height, cfg.Channels)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	buf.Fill(cfg.Paper)

	return &Canvas{
		buf:     buf,
		pen:     pencil.New(cfg.MinRadius, cfg.MaxRadius),
		ink:     cfg.Ink,
		paper:   cfg.Paper,
		preview: cfg.Preview,
	}, nil
}

// Buffer returns the drawing. The host may read it for display or scoring
// but must not write to it.
func (c *Canvas) Buffer() *raster.Buffer { return c.buf }

// Pencil returns a snapshot of the pencil state.
func (c *Canvas) Pencil() pencil.State { return *c.pen }

// Update applies the events received since the previous tick, in order,
// and then advances the canvas by one tick.
func (c *Canvas) Update(events []pencil.Event) {
	radius := c.pen.Radius
	for _, e := range events {
		c.pen.Apply(e)
	}
	if c.pen.Radius != radius {
		logger.Logger().Debug("pencil resized", "from", radius, "to", c.pen.Radius)
	}
	c.Tick()
}

// Tick paints the stroke segment from the last sample to the current one if
// a button is held, then makes the current sample the new last sample.
func (c *Canvas) Tick() {
	if col, ok := c.strokeColor(); ok {
		raster.FillSegment(c.buf, c.pen.Last, c.pen.Current, c.pen.Radius, col)
		// The segment is empty when the pointer has not moved.
		raster.Stamp(c.buf, c.pen.Current, c.pen.Radius, col)
	}
	c.pen.Advance()
}

func (c *Canvas) strokeColor() (raster.RGB, bool) {
	switch c.pen.Button {
	case pencil.ButtonPrimary:
		return c.ink, true
	case pencil.ButtonSecondary:
		return c.paper, true
	}
	return raster.RGB{}, false
}

// Compose copies the drawing into dst and stamps the cursor preview on top.
// The preview never reaches the drawing itself.
func (c *Canvas) Compose(dst *raster.Buffer) error {
	if err := dst.CopyFrom(c.buf); err != nil {
		return fmt.Errorf("canvas: compose: %w", err)
	}
	raster.Stamp(dst, c.pen.Current, c.pen.Radius, c.preview)
	return nil
}

// NewFrame allocates a buffer suitable for Compose.
func (c *Canvas) NewFrame() *raster.Buffer {
	return c.buf.Clone()
}

// Clear repaints the whole drawing with the paper colour.
func (c *Canvas) Clear() {
	c.buf.Fill(c.paper)
	logger.Logger().Debug("canvas cleared")
}
