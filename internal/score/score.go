// Package score measures how closely a drawing reproduces a target image.
//
// A pixel matches when its red, green and blue bytes are identical in both
// buffers. Alpha is never compared and there is no tolerance band.
package score

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"sketchmatch/internal/logger"
	"sketchmatch/internal/raster"
)

var (
	// ErrNotReady is returned when a score is requested before a
	// reference image has been supplied.
	ErrNotReady = errors.New("score: no reference image")

	// ErrDimensionMismatch is returned when the drawing and the reference
	// do not have the same width and height.
	ErrDimensionMismatch = errors.New("score: dimension mismatch")
)

// MismatchColor marks differing pixels in a Diff map.
var MismatchColor = color.NRGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}

func check(canvas, ref *raster.Buffer) error {
	if canvas == nil || ref == nil {
		return ErrNotReady
	}
	if !canvas.SameSize(ref) {
		return fmt.Errorf("%w: canvas %dx%d, reference %dx%d", ErrDimensionMismatch,
			canvas.Width(), canvas.Height(), ref.Width(), ref.Height())
	}
	return nil
}

// Match returns the fraction of pixels in [0, 1] whose colour channels are
// equal in canvas and ref. The buffers may use different channel counts.
func Match(canvas, ref *raster.Buffer) (float64, error) {
	if err := check(canvas, ref); err != nil {
		return 0, err
	}

	a, ac := canvas.Pix(), canvas.Channels()
	b, bc := ref.Pix(), ref.Channels()
	total := canvas.Width() * canvas.Height()

	matched := 0
	for i, j := 0, 0; i < len(a); i, j = i+ac, j+bc {
		if a[i] == b[j] && a[i+1] == b[j+1] && a[i+2] == b[j+2] {
			matched++
		}
	}
	return float64(matched) / float64(total), nil
}

// Diff renders a match map: matched pixels keep the drawing colour and
// mismatched ones are painted with MismatchColor.
func Diff(canvas, ref *raster.Buffer) (*image.NRGBA, error) {
	if err := check(canvas, ref); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(canvas.Bounds())
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			got, _ := canvas.RGBAt(x, y)
			want, _ := ref.RGBAt(x, y)
			if got == want {
				img.SetNRGBA(x, y, color.NRGBA{R: got.R, G: got.G, B: got.B, A: 0xff})
			} else {
				img.SetNRGBA(x, y, MismatchColor)
			}
		}
	}
	return img, nil
}

// Scorer compares a live drawing against a reference supplied by the host.
// It holds both buffers by reference; neither is copied.
type Scorer struct {
	canvas *raster.Buffer
	ref    *raster.Buffer
}

// NewScorer returns a scorer for canvas. It is not ready until a reference
// is set.
func NewScorer(canvas *raster.Buffer) *Scorer {
	return &Scorer{canvas: canvas}
}

// SetReference installs or replaces the target image. The reference must
// have the canvas dimensions and must not be modified while it is in use.
func (s *Scorer) SetReference(ref *raster.Buffer) error {
	if ref == nil {
		return fmt.Errorf("%w: nil reference", ErrNotReady)
	}
	if err := check(s.canvas, ref); err != nil {
		return err
	}
	s.ref = ref
	logger.Logger().Info("reference installed", "width", ref.Width(), "height", ref.Height())
	return nil
}

// Ready reports whether a reference has been set.
func (s *Scorer) Ready() bool { return s.ref != nil }

// Score computes the current match fraction. The result is never cached.
func (s *Scorer) Score() (float64, error) {
	if s.ref == nil {
		logger.Logger().Warn("score requested before a reference was set")
		return 0, ErrNotReady
	}
	return Match(s.canvas, s.ref)
}
