// Package pencil tracks the drawing tool: its radius, the held pointer
// button and the last two sampled pointer positions.
package pencil

import (
	"fmt"
	"image"
)

// Radius limits of the reference configuration.
const (
	MinRadius     = 0
	MaxRadius     = 28
	DefaultRadius = (MaxRadius - MinRadius) / 2
)

// Button is the pointer button currently held down.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// State is the pencil as seen by one update tick.
type State struct {
	Radius  int
	Button  Button
	Last    image.Point
	Current image.Point

	min, max int
}

// New returns a pencil with radius limits [lo, hi] and a radius halfway
// between them. If hi < lo the limits are swapped.
func New(lo, hi int) *State {
	if hi < lo {
		lo, hi = hi, lo
	}
	return &State{
		Radius: lo + (hi-lo)/2,
		min:    lo,
		max:    hi,
	}
}

// Limits returns the radius range of the pencil.
func (s *State) Limits() (lo, hi int) { return s.min, s.max }

// Drawing reports whether a button is held.
func (s *State) Drawing() bool { return s.Button != ButtonNone }

// Apply folds one input event into the state.
func (s *State) Apply(e Event) {
	switch e.Kind {
	case EventPress:
		// A stroke starts where the button went down.
		s.Button = e.Button
		s.Last = s.Current
	case EventRelease:
		s.Button = ButtonNone
	case EventMove:
		s.Current = e.Pos
	case EventScroll:
		s.Resize(int(e.Delta / 2))
	}
}

// Resize adds delta to the radius and clamps it to the pencil limits.
func (s *State) Resize(delta int) {
	s.Radius = clamp(s.Radius+delta, s.min, s.max)
}

// Advance makes the current sample the starting point of the next stroke
// segment.
func (s *State) Advance() {
	s.Last = s.Current
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
