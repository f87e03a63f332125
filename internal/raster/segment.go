package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// edgeTolerance absorbs rounding in the projection test, so that pixels
// lying exactly on an axis-aligned rectangle edge are kept.
const edgeTolerance = 1e-7

// FillSegment paints the stroke between two consecutive pointer samples so
// that fast motion leaves no gaps between per-sample stamps.
//
// For r > 0 the body is a rectangle of half-width r around the segment,
// capped by a disc at each end. For r == 0 a one-pixel line is walked from
// p1 to p2. A zero-length segment (p1 == p2) paints nothing. Writes outside
// the buffer are dropped.
func FillSegment(b *Buffer, p1, p2 image.Point, r int, c RGB) {
	if p1 == p2 {
		return
	}
	if r <= 0 {
		fillLine(b, p1, p2, c)
		return
	}
	fillRect(b, p1, p2, r, c)
	Stamp(b, p1, r, c)
	Stamp(b, p2, r, c)
}

// fillRect paints the rotated rectangle with corners a, b (offset from p1
// and p2 along +normal) and c, d (offset along -normal).
func fillRect(buf *Buffer, p1, p2 image.Point, r int, col RGB) {
	from := toVec(p1)
	to := toVec(p2)

	theta := math.Atan2(to.Y-from.Y, to.X-from.X)
	n := vec.Vec2{X: math.Cos(theta + math.Pi/2), Y: math.Sin(theta + math.Pi/2)}.Mul(float64(r))

	a := from.Add(n)
	b := to.Add(n)
	c := from.Sub(n)
	d := to.Sub(n)

	ab := b.Sub(a)
	ac := c.Sub(a)
	abLen2 := ab.Dot(ab)
	acLen2 := ac.Dot(ac)

	// Bounding box, clamped to the buffer
	minX := max(int(math.Floor(min(a.X, b.X, c.X, d.X))), 0)
	maxX := min(int(math.Ceil(max(a.X, b.X, c.X, d.X))), buf.width-1)
	minY := max(int(math.Floor(min(a.Y, b.Y, c.Y, d.Y))), 0)
	maxY := min(int(math.Ceil(max(a.Y, b.Y, c.Y, d.Y))), buf.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			ap := vec.Vec2{X: float64(x), Y: float64(y)}.Sub(a)
			u := ap.Dot(ab)
			if u < -edgeTolerance || u > abLen2+edgeTolerance {
				continue
			}
			v := ap.Dot(ac)
			if v < -edgeTolerance || v > acLen2+edgeTolerance {
				continue
			}
			buf.SetRGB(x, y, col)
		}
	}
}

// fillLine walks unit steps along the direction p1→p2, rounding each
// position to the nearest pixel. The walk is bounded by ceil(|p2-p1|) steps
// and always finishes on p2, so float drift cannot keep it from ending.
func fillLine(b *Buffer, p1, p2 image.Point, c RGB) {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	steps := int(math.Ceil(math.Hypot(dx, dy)))

	theta := math.Atan2(dy, dx)
	step := vec.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}

	pos := toVec(p1)
	for i := 0; i < steps; i++ {
		px := image.Pt(int(math.Floor(pos.X+0.5)), int(math.Floor(pos.Y+0.5)))
		if px == p2 {
			break
		}
		b.SetRGB(px.X, px.Y, c)
		pos = pos.Add(step)
	}
	b.SetRGB(p2.X, p2.Y, c)
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
