package raster

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBufferInvalid(t *testing.T) {
	tests := []struct{ w, h, ch int }{
		{0, 10, 3},
		{10, -1, 4},
		{10, 10, 2},
		{10, 10, 5},
	}
	for _, tt := range tests {
		if _, err := NewBuffer(tt.w, tt.h, tt.ch); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBuffer(%d, %d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, tt.ch, err)
		}
	}
}

func TestNewBufferLength(t *testing.T) {
	for _, ch := range []int{3, 4} {
		b, err := NewBuffer(128, 96, ch)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := len(b.Pix()), 128*96*ch; got != want {
			t.Errorf("len(Pix()) = %d, want %d", got, want)
		}
	}
}

func TestSetRGBOutOfBounds(t *testing.T) {
	b := newFilled(t, 10, 10, 4, white)
	before := b.Clone()

	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100}} {
		b.SetRGB(p.X, p.Y, black)
		b.SetAlpha(p.X, p.Y, 0)
		if _, ok := b.RGBAt(p.X, p.Y); ok {
			t.Errorf("RGBAt(%d, %d) reported in bounds", p.X, p.Y)
		}
	}
	for i, v := range b.Pix() {
		if v != before.Pix()[i] {
			t.Fatalf("out-of-bounds write modified byte %d", i)
		}
	}
}

func TestFillSetsOpaqueAlpha(t *testing.T) {
	b := newFilled(t, 3, 2, 4, RGB{1, 2, 3})
	pix := b.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 1 || pix[i+1] != 2 || pix[i+2] != 3 || pix[i+3] != 0xff {
			t.Fatalf("pixel at byte %d = %v, want [1 2 3 255]", i, pix[i:i+4])
		}
	}
}

func TestCopyFromMismatch(t *testing.T) {
	a := newFilled(t, 4, 4, 4, white)
	for _, src := range []*Buffer{
		newFilled(t, 4, 5, 4, white),
		newFilled(t, 4, 4, 3, white),
		nil,
	} {
		if err := a.CopyFrom(src); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("CopyFrom(%v) error = %v, want ErrInvalidDimensions", src, err)
		}
	}

	src := newFilled(t, 4, 4, 4, black)
	if err := a.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom() error: %v", err)
	}
	if c, _ := a.RGBAt(3, 3); c != black {
		t.Errorf("after CopyFrom pixel = %v, want black", c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := newFilled(t, 4, 4, 3, white)
	b := a.Clone()
	b.SetRGB(0, 0, black)
	if c, _ := a.RGBAt(0, 0); c != white {
		t.Error("modifying the clone changed the original")
	}
}

func TestImageRoundTrip(t *testing.T) {
	for _, ch := range []int{3, 4} {
		b := newFilled(t, 5, 4, ch, white)
		b.SetRGB(2, 1, RGB{9, 8, 7})

		img := b.Image()
		if got := img.NRGBAAt(2, 1); got != (color.NRGBA{9, 8, 7, 0xff}) {
			t.Errorf("channels=%d: Image().NRGBAAt(2,1) = %v", ch, got)
		}

		back, err := FromImage(img, ch)
		if err != nil {
			t.Fatal(err)
		}
		if c, _ := back.RGBAt(2, 1); c != (RGB{9, 8, 7}) {
			t.Errorf("channels=%d: FromImage pixel = %v, want {9 8 7}", ch, c)
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 13, 22))
	img.Set(12, 21, color.RGBA{0x40, 0x50, 0x60, 0xff})

	b, err := FromImage(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("FromImage size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if c, _ := b.RGBAt(2, 1); c != (RGB{0x40, 0x50, 0x60}) {
		t.Errorf("pixel (2,1) = %v", c)
	}
}

func TestRGBFromColor(t *testing.T) {
	got := RGBFromColor(color.RGBA{0x80, 0x40, 0x00, 0x80})
	if got != (RGB{0xff, 0x7f, 0x00}) {
		t.Errorf("RGBFromColor(premultiplied half alpha) = %v, want {255 127 0}", got)
	}
	if got := RGBFromColor(RGB{1, 2, 3}); got != (RGB{1, 2, 3}) {
		t.Errorf("RGBFromColor(RGB{1,2,3}) = %v", got)
	}
}
