package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidDimensions is returned when a buffer is created with a
// non-positive size or an unsupported channel count.
var ErrInvalidDimensions = errors.New("raster: invalid buffer dimensions")

// RGB is an opaque 24-bit colour. It is what the pencil paints with; alpha
// is never part of a paint operation.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) | uint32(c.R)<<8
	g = uint32(c.G) | uint32(c.G)<<8
	b = uint32(c.B) | uint32(c.B)<<8
	a = 0xffff
	return
}

// RGBFromColor drops alpha from any color.Color after un-premultiplying it.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// Buffer is a fixed-size row-major pixel grid with 3 (RGB) or 4 (RGBA)
// byte channels per pixel.
type Buffer struct {
	width    int
	height   int
	channels int
	pix      []uint8
}

// NewBuffer allocates a zeroed buffer. The geometry is fixed for the
// lifetime of the buffer.
func NewBuffer(width, height, channels int) (*Buffer, error) {
	if width <= 0 || height <= 0 || (channels != 3 && channels != 4) {
		return nil, fmt.Errorf("%w: %dx%d with %d channels", ErrInvalidDimensions, width, height, channels)
	}
	return &Buffer{
		width:    width,
		height:   height,
		channels: channels,
		pix:      make([]uint8, width*height*channels),
	}, nil
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Channels returns the number of bytes per pixel.
func (b *Buffer) Channels() int { return b.channels }

// Pix returns the raw pixel bytes. Callers outside the owner of the buffer
// must treat the slice as read-only.
func (b *Buffer) Pix() []uint8 { return b.pix }

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// SameSize reports whether o has the same width and height as b.
// Channel counts may differ.
func (b *Buffer) SameSize(o *Buffer) bool {
	return o != nil && b.width == o.width && b.height == o.height
}

func (b *Buffer) offset(x, y int) int {
	return (y*b.width + x) * b.channels
}

// SetRGB writes the colour channels of one pixel. Writes outside the
// buffer are dropped; the alpha channel is left untouched.
func (b *Buffer) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := b.offset(x, y)
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// RGBAt returns the colour channels of one pixel, or false if (x, y)
// is outside the buffer.
func (b *Buffer) RGBAt(x, y int) (RGB, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB{}, false
	}
	i := b.offset(x, y)
	return RGB{b.pix[i+0], b.pix[i+1], b.pix[i+2]}, true
}

// SetAlpha writes the alpha channel of one pixel. It is a no-op on
// 3-channel buffers and outside the buffer.
func (b *Buffer) SetAlpha(x, y int, a uint8) {
	if b.channels < 4 || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[b.offset(x, y)+3] = a
}

// Fill paints every pixel with c and makes alpha opaque.
func (b *Buffer) Fill(c RGB) {
	for i := 0; i < len(b.pix); i += b.channels {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		if b.channels == 4 {
			b.pix[i+3] = 0xff
		}
	}
}

// CopyFrom overwrites b with the contents of src. Both buffers must have
// identical geometry.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if !b.SameSize(src) || b.channels != src.channels {
		return fmt.Errorf("%w: copy %s into %s", ErrInvalidDimensions, src.describe(), b.describe())
	}
	copy(b.pix, src.pix)
	return nil
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, channels: b.channels, pix: pix}
}

func (b *Buffer) describe() string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%dx%dx%d", b.width, b.height, b.channels)
}

// String implements fmt.Stringer.
func (b *Buffer) String() string { return "raster.Buffer(" + b.describe() + ")" }

// Image converts the buffer to an NRGBA image. 3-channel buffers come out
// fully opaque.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	if b.channels == 4 {
		copy(img.Pix, b.pix)
		return img
	}
	for s, d := 0, 0; s < len(b.pix); s, d = s+3, d+4 {
		img.Pix[d+0] = b.pix[s+0]
		img.Pix[d+1] = b.pix[s+1]
		img.Pix[d+2] = b.pix[s+2]
		img.Pix[d+3] = 0xff
	}
	return img
}

// FromImage copies img into a new buffer with the given channel count.
// The image origin is mapped to (0, 0).
func FromImage(img image.Image, channels int) (*Buffer, error) {
	r := img.Bounds()
	b, err := NewBuffer(r.Dx(), r.Dy(), channels)
	if err != nil {
		return nil, err
	}

	if n, ok := img.(*image.NRGBA); ok && channels == 4 && n.Stride == 4*r.Dx() {
		copy(b.pix, n.Pix[n.PixOffset(r.Min.X, r.Min.Y):])
		return b, nil
	}

	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			n := color.NRGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.NRGBA)
			b.SetRGB(x, y, RGB{n.R, n.G, n.B})
			b.SetAlpha(x, y, n.A)
		}
	}
	return b, nil
}
