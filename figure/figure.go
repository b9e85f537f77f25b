// Package figure defines the primitive shapes that a canvas can draw
// and, for each of them, the test that decides which pixels belong to
// it.
//
// Figures are small immutable values. Line and Triangle put their
// points into canonical order when they are constructed, and their
// membership tests rely on that order, so their points can only be set
// through [NewLine] and [NewTriangle].
package figure

import (
	"image"
	"math"

	"deedles.dev/xraster/geom"
)

// Figure is one of [Rectangle], [Circle], [Line] or [Triangle]. The set
// is closed: no type outside of this package can implement it.
type Figure interface {
	// Contains reports whether the pixel at (x, y) belongs to the
	// figure.
	Contains(x, y int) bool

	// Bounds returns a rectangle that contains every pixel for which
	// Contains reports true. It may also contain pixels that are not
	// part of the figure.
	Bounds() image.Rectangle

	// Kind returns the lowercase name of the shape.
	Kind() string

	figure()
}

// lerpX is geom.LerpX that falls back to a's own column when the
// segment from a to b is horizontal.
func lerpX(a, b geom.Point, y int) int {
	if x, ok := geom.LerpX(a, b, y); ok {
		return x
	}
	return a.X
}

// between reports whether x lies between a and b inclusive, in either
// order.
func between(x, a, b int) bool {
	return (x >= min(a, b)) && (x <= max(a, b))
}

// addSat returns a+b, clamped to the range of int instead of wrapping
// around.
func addSat(a, b int) int {
	s := a + b
	switch {
	case (b > 0) && (s < a):
		return math.MaxInt
	case (b < 0) && (s > a):
		return math.MinInt
	}
	return s
}
