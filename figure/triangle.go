package figure

import (
	"image"

	"deedles.dev/xraster/geom"
)

// Triangle is a filled triangle. Its vertices are kept sorted by
// [geom.Sort], top to bottom.
type Triangle struct {
	p1, p2, p3 geom.Point
}

// NewTriangle returns the triangle with the three given vertices.
func NewTriangle(x1, y1, x2, y2, x3, y3 int) Triangle {
	p1, p2 := geom.Sort(geom.Pt(x1, y1), geom.Pt(x2, y2))
	p2, p3 := geom.Sort(p2, geom.Pt(x3, y3))
	p1, p2 = geom.Sort(p1, p2)
	return Triangle{p1: p1, p2: p2, p3: p3}
}

// Points returns the vertices of the triangle in canonical order.
func (t Triangle) Points() (p1, p2, p3 geom.Point) {
	return t.p1, t.p2, t.p3
}

// Contains fills the triangle one row at a time. The row through the
// middle vertex splits it into a flat-bottomed upper half and a
// flat-topped lower half, and each half is filled between its two
// interpolated edges.
//
// Each half only answers for its own rows. Extending the edges of one
// half past the middle row would paint pixels outside of the triangle.
func (t Triangle) Contains(x, y int) bool {
	p1, p2, p3 := t.p1, t.p2, t.p3
	if p1.Y == p3.Y {
		return Line{p1: p1, p2: p3}.Contains(x, y)
	}
	if (y < p1.Y) || (y > p3.Y) {
		return false
	}

	if p1.Y == p2.Y {
		return between(x, lerpX(p1, p3, y), lerpX(p2, p3, y))
	}

	p4 := geom.Pt(lerpX(p1, p3, p2.Y), p2.Y)
	if (y <= p2.Y) && between(x, lerpX(p1, p2, y), lerpX(p1, p4, y)) {
		return true
	}
	return (y >= p2.Y) && between(x, lerpX(p2, p3, y), lerpX(p4, p3, y))
}

func (t Triangle) Bounds() image.Rectangle {
	return image.Rect(
		min(t.p1.X, t.p2.X, t.p3.X),
		t.p1.Y,
		max(t.p1.X, t.p2.X, t.p3.X)+1,
		t.p3.Y+1,
	)
}

func (Triangle) Kind() string { return "triangle" }

func (Triangle) figure() {}
