// Package geom provides the integer geometry that the rasterizer is
// built on: pixel coordinates, their canonical ordering, and
// interpolation along the segment between two of them.
//
// It is patterned after image.Point, but adds the operations that the
// scanline tests in package figure depend on.
package geom

import (
	"golang.org/x/exp/constraints"
)

// Point is an integer pixel coordinate. X grows to the right and Y
// grows downwards.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Less reports whether p sorts before q. Points are ordered by Y and
// then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Dims is the extent of a rectangle relative to its anchor point.
type Dims struct {
	W, H int
}

// Dm is shorthand for Dims{W: w, H: h}.
func Dm(w, h int) Dims {
	return Dims{W: w, H: h}
}

// Sort returns a and b in canonical order: ascending by Y with ties
// broken by ascending X. Equal points are returned as (b, a), which is
// indistinguishable from (a, b).
func Sort(a, b Point) (lo, hi Point) {
	if a.Less(b) {
		return a, b
	}
	return b, a
}

// LerpX returns the X coordinate at row y of the line through a and b.
// It returns false if the segment is horizontal, in which case there
// is no single answer.
//
// The slope is computed in floating point and the result is truncated
// toward zero, not rounded. Shallow segments can therefore land one
// pixel short of the nearest column, and callers that compare against
// previously rendered output depend on that.
func LerpX(a, b Point, y int) (x int, ok bool) {
	if a.Y == b.Y {
		return 0, false
	}
	if a.X == b.X {
		return b.X, true
	}

	m := float64(a.Y-b.Y) / float64(a.X-b.X)
	return int(float64(y-b.Y)/m) + b.X, true
}

// LerpY returns the Y coordinate at column x of the line through a and
// b. It returns false if the segment is vertical. It truncates the same
// way that LerpX does.
func LerpY(a, b Point, x int) (y int, ok bool) {
	if a.X == b.X {
		return 0, false
	}

	m := float64(a.Y-b.Y) / float64(a.X-b.X)
	return int(m*float64(x-b.X)) + b.Y, true
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// AbsDiff returns |a - b| without underflowing unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
