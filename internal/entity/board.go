package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sketchmatch/internal/canvas"
	"sketchmatch/internal/logger"
	"sketchmatch/internal/raster"
)

// Board presents the canvas on screen, with the cursor preview on top.
type Board struct {
	X, Y  float64
	Scale float64

	canvas *canvas.Canvas
	frame  *raster.Buffer // drawing + preview, rebuilt every frame
	rgba   []byte         // upload staging for 3-channel frames
	img    *ebiten.Image
}

func NewBoard(c *canvas.Canvas, scale int) *Board {
	frame := c.NewFrame()
	b := &Board{
		Scale:  float64(scale),
		canvas: c,
		frame:  frame,
		img:    ebiten.NewImage(frame.Width(), frame.Height()),
	}
	if frame.Channels() != 4 {
		b.rgba = make([]byte, frame.Width()*frame.Height()*4)
	}
	return b
}

func (b *Board) Draw(screen *ebiten.Image) {
	if err := b.canvas.Compose(b.frame); err != nil {
		logger.Logger().Warn("board: compose failed", "err", err)
		return
	}
	b.img.WritePixels(b.pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Scale, b.Scale) // Keep the chunky pixel look
	op.GeoM.Translate(b.X, b.Y)

	screen.DrawImage(b.img, op)
}

// pixels returns the frame as tightly packed RGBA.
func (b *Board) pixels() []byte {
	pix := b.frame.Pix()
	if b.rgba == nil {
		return pix
	}
	for s, d := 0, 0; s < len(pix); s, d = s+3, d+4 {
		b.rgba[d+0] = pix[s+0]
		b.rgba[d+1] = pix[s+1]
		b.rgba[d+2] = pix[s+2]
		b.rgba[d+3] = 0xff
	}
	return b.rgba
}
