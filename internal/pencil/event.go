package pencil

import "image"

// EventKind identifies an input event.
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
	EventMove
	EventScroll
)

// Event is one input sample delivered by the host between ticks.
type Event struct {
	Kind   EventKind
	Button Button      // EventPress
	Pos    image.Point // EventMove, in canvas coordinates
	Delta  float64     // EventScroll, browser convention: positive grows the pencil
}

// Press returns a button-down event.
func Press(b Button) Event { return Event{Kind: EventPress, Button: b} }

// Release returns a button-up event.
func Release() Event { return Event{Kind: EventRelease} }

// MoveTo returns a pointer-move event at p.
func MoveTo(p image.Point) Event { return Event{Kind: EventMove, Pos: p} }

// Scroll returns a wheel event with the given signed delta.
func Scroll(delta float64) Event { return Event{Kind: EventScroll, Delta: delta} }

// ScalePoint converts host display coordinates into canvas coordinates by
// dividing by the display scale factor. A scale below 1 is treated as 1.
func ScalePoint(x, y, scale int) image.Point {
	if scale < 1 {
		scale = 1
	}
	return image.Pt(floorDiv(x, scale), floorDiv(y, scale))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// Queue buffers events between ticks. The host pushes while draining its
// own input; the update tick takes everything with Drain.
type Queue struct {
	events []Event
}

// Push appends events to the queue.
func (q *Queue) Push(e ...Event) {
	q.events = append(q.events, e...)
}

// Len returns the number of queued events.
func (q *Queue) Len() int { return len(q.events) }

// Drain returns the queued events in arrival order and empties the queue.
// The returned slice is only valid until the next Push.
func (q *Queue) Drain() []Event {
	ev := q.events
	q.events = q.events[:0]
	return ev
}
