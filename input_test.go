package main

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchmatch/internal/pencil"
)

type fakeInput struct {
	x, y    int
	buttons map[ebiten.MouseButton]bool
	wheel   float64
}

func (f *fakeInput) CursorPosition() (int, int)                     { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(b ebiten.MouseButton) bool { return f.buttons[b] }
func (f *fakeInput) Wheel() (float64, float64)                      { return 0, f.wheel }

func poll(r *inputReader) []pencil.Event {
	var q pencil.Queue
	r.Poll(&q)
	return append([]pencil.Event(nil), q.Drain()...)
}

func TestInputFirstPollMoves(t *testing.T) {
	src := &fakeInput{x: 30, y: 61, buttons: map[ebiten.MouseButton]bool{}}
	r := newInputReader(src, 3, 4)

	ev := poll(r)
	if len(ev) != 1 || ev[0].Kind != pencil.EventMove || ev[0].Pos != image.Pt(10, 20) {
		t.Fatalf("first poll = %+v, want a single move to (10,20)", ev)
	}
	if ev := poll(r); len(ev) != 0 {
		t.Errorf("idle poll = %+v, want no events", ev)
	}
}

func TestInputPressMoveRelease(t *testing.T) {
	src := &fakeInput{buttons: map[ebiten.MouseButton]bool{}}
	r := newInputReader(src, 3, 4)
	poll(r)

	src.x, src.y = 9, 9
	src.buttons[ebiten.MouseButtonLeft] = true
	ev := poll(r)
	if len(ev) != 2 || ev[0].Kind != pencil.EventMove || ev[1].Kind != pencil.EventPress || ev[1].Button != pencil.ButtonPrimary {
		t.Fatalf("press poll = %+v, want move then primary press", ev)
	}

	// Sub-pixel motion at display scale does not emit a move.
	src.x = 10
	if ev := poll(r); len(ev) != 0 {
		t.Errorf("sub-pixel move emitted %+v", ev)
	}

	src.buttons[ebiten.MouseButtonLeft] = false
	ev = poll(r)
	if len(ev) != 1 || ev[0].Kind != pencil.EventRelease {
		t.Errorf("release poll = %+v, want release", ev)
	}
}

func TestInputRightButtonErases(t *testing.T) {
	src := &fakeInput{buttons: map[ebiten.MouseButton]bool{ebiten.MouseButtonRight: true}}
	r := newInputReader(src, 1, 4)

	ev := poll(r)
	if len(ev) != 2 || ev[1].Button != pencil.ButtonSecondary {
		t.Fatalf("poll = %+v, want secondary press", ev)
	}
}

func TestInputWheel(t *testing.T) {
	src := &fakeInput{buttons: map[ebiten.MouseButton]bool{}, wheel: 1}
	r := newInputReader(src, 1, 4)
	poll(r)

	ev := poll(r)
	if len(ev) != 1 || ev[0].Kind != pencil.EventScroll || ev[0].Delta != -4 {
		t.Fatalf("wheel poll = %+v, want scroll -4", ev)
	}

	p := pencil.New(pencil.MinRadius, pencil.MaxRadius)
	p.Apply(ev[0])
	if p.Radius != pencil.DefaultRadius-2 {
		t.Errorf("Radius after wheel up = %d, want %d", p.Radius, pencil.DefaultRadius-2)
	}
}
