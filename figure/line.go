package figure

import (
	"image"

	"deedles.dev/xraster/geom"
)

// Line is a one pixel wide segment. Its endpoints are kept in
// canonical order, see [geom.Sort].
//
// A non-vertical line is scanned one column at a time, so a line that
// is steeper than 45 degrees has gaps between the rows that it hits.
type Line struct {
	p1, p2 geom.Point
}

// NewLine returns the segment from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 int) Line {
	p1, p2 := geom.Sort(geom.Pt(x1, y1), geom.Pt(x2, y2))
	return Line{p1: p1, p2: p2}
}

// Points returns the endpoints of the line in canonical order.
func (l Line) Points() (p1, p2 geom.Point) {
	return l.p1, l.p2
}

// Contains tests x against the range between the smaller and the
// larger endpoint X, not from p1.X to p2.X, so that lines running down
// and to the left are drawn too.
func (l Line) Contains(x, y int) bool {
	if (y < l.p1.Y) || (y > l.p2.Y) {
		return false
	}
	if l.p1.X == l.p2.X {
		return x == l.p1.X
	}
	if !between(x, l.p1.X, l.p2.X) {
		return false
	}

	m := float64(l.p2.Y-l.p1.Y) / float64(l.p2.X-l.p1.X)
	return y-l.p1.Y == int(m*float64(x-l.p1.X))
}

func (l Line) Bounds() image.Rectangle {
	return image.Rect(
		min(l.p1.X, l.p2.X),
		l.p1.Y,
		max(l.p1.X, l.p2.X)+1,
		l.p2.Y+1,
	)
}

func (Line) Kind() string { return "line" }

func (Line) figure() {}
