package figure

import (
	"image"
	"math/bits"

	"deedles.dev/xraster/geom"
)

// Rectangle is an axis-aligned, filled rectangle. Both of its far
// edges are inclusive, so a rectangle with an extent of (w, h) covers
// (w+1)*(h+1) pixels.
type Rectangle struct {
	Anchor geom.Point
	Extent geom.Dims
}

// NewRectangle returns a rectangle anchored at (x, y) with the given
// extent. The anchor is stored as given.
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{
		Anchor: geom.Pt(x, y),
		Extent: geom.Dm(w, h),
	}
}

func (r Rectangle) Contains(x, y int) bool {
	return (x >= r.Anchor.X) && (x-r.Anchor.X <= r.Extent.W) &&
		(y >= r.Anchor.Y) && (y-r.Anchor.Y <= r.Extent.H)
}

func (r Rectangle) Bounds() image.Rectangle {
	if (r.Extent.W < 0) || (r.Extent.H < 0) {
		return image.Rectangle{}
	}
	return image.Rect(
		r.Anchor.X,
		r.Anchor.Y,
		addSat(addSat(r.Anchor.X, r.Extent.W), 1),
		addSat(addSat(r.Anchor.Y, r.Extent.H), 1),
	)
}

func (Rectangle) Kind() string { return "rectangle" }

func (Rectangle) figure() {}

// Circle is a filled disk: every pixel whose squared distance from
// Center is at most Radius squared.
type Circle struct {
	Center geom.Point
	Radius int
}

// NewCircle returns a circle centered at (x, y).
func NewCircle(x, y, r int) Circle {
	return Circle{
		Center: geom.Pt(x, y),
		Radius: r,
	}
}

func (c Circle) Contains(x, y int) bool {
	r := uint64(geom.Abs(c.Radius))
	dx := uint64(geom.AbsDiff(x, c.Center.X))
	dy := uint64(geom.AbsDiff(y, c.Center.Y))
	if (dx > r) || (dy > r) {
		return false
	}

	// Squares of radii past 2^32 do not fit in 64 bits.
	dhi, dlo := sumSquares(dx, dy)
	rhi, rlo := bits.Mul64(r, r)
	return (dhi < rhi) || ((dhi == rhi) && (dlo <= rlo))
}

func (c Circle) Bounds() image.Rectangle {
	r := geom.Abs(c.Radius)
	return image.Rect(
		addSat(c.Center.X, -r),
		addSat(c.Center.Y, -r),
		addSat(addSat(c.Center.X, r), 1),
		addSat(addSat(c.Center.Y, r), 1),
	)
}

// sumSquares returns a*a + b*b as a 128 bit value. a and b must be
// less than 1<<63.
func sumSquares(a, b uint64) (hi, lo uint64) {
	ahi, alo := bits.Mul64(a, a)
	bhi, blo := bits.Mul64(b, b)
	lo, carry := bits.Add64(alo, blo, 0)
	hi, _ = bits.Add64(ahi, bhi, carry)
	return hi, lo
}

func (Circle) Kind() string { return "circle" }

func (Circle) figure() {}
