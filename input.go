package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchmatch/internal/pencil"
)

// inputSource is the slice of ebiten's input API the pencil needs.
type inputSource interface {
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int)                     { return ebiten.CursorPosition() }
func (ebitenInput) IsMouseButtonPressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }
func (ebitenInput) Wheel() (float64, float64)                      { return ebiten.Wheel() }

// inputReader turns polled mouse state into pencil events.
type inputReader struct {
	src        inputSource
	scale      int     // display pixels per canvas pixel
	wheelScale float64 // ebiten wheel units to browser-style delta

	held    pencil.Button
	last    image.Point
	started bool
}

func newInputReader(src inputSource, scale int, wheelScale float64) *inputReader {
	return &inputReader{src: src, scale: scale, wheelScale: wheelScale}
}

// Poll pushes the events that happened since the previous poll. Moves come
// before presses so a stroke starts under the cursor.
func (r *inputReader) Poll(q *pencil.Queue) {
	// 1. Pointer
	x, y := r.src.CursorPosition()
	pos := pencil.ScalePoint(x, y, r.scale)
	if !r.started || pos != r.last {
		q.Push(pencil.MoveTo(pos))
		r.last = pos
		r.started = true
	}

	// 2. Buttons
	held := pencil.ButtonNone
	switch {
	case r.src.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		held = pencil.ButtonPrimary
	case r.src.IsMouseButtonPressed(ebiten.MouseButtonRight):
		held = pencil.ButtonSecondary
	}
	if held != r.held {
		if held == pencil.ButtonNone {
			q.Push(pencil.Release())
		} else {
			q.Push(pencil.Press(held))
		}
		r.held = held
	}

	// 3. Wheel (browser convention: scrolling down grows the pencil)
	if _, yoff := r.src.Wheel(); yoff != 0 {
		q.Push(pencil.Scroll(-yoff * r.wheelScale))
	}
}
