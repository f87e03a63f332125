package raster

import "image"

// Stamp paints a filled disc of radius r centred on center.
//
// A pixel at offset (dx, dy) is covered iff dx²+dy² <= r² (inclusive
// boundary). Columns wrap around the buffer width, so a disc near the left
// edge continues on the right; rows outside the buffer are skipped. Only the
// colour channels are written. A radius of 0 paints a single pixel and a
// negative radius is treated as 0.
func Stamp(b *Buffer, center image.Point, r int, c RGB) {
	if r < 0 {
		r = 0
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		y := center.Y + dy
		if y < 0 || y >= b.height {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}
			b.SetRGB(wrap(center.X+dx, b.width), y, c)
		}
	}
}

// InStamp reports whether Stamp(b, center, r, ...) on a buffer of the given
// width covers p. It applies the same inclusive boundary and horizontal
// wraparound as Stamp.
func InStamp(center image.Point, r int, p image.Point, width int) bool {
	if r < 0 {
		r = 0
	}
	dy := p.Y - center.Y
	dx := wrap(p.X-center.X, width)
	if alt := width - dx; alt < dx {
		dx = alt
	}
	return dx*dx+dy*dy <= r*r
}

func wrap(x, n int) int {
	x %= n
	if x < 0 {
		x += n
	}
	return x
}
