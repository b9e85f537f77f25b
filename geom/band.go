package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Band is a half-open range of rows, [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Dy returns the number of rows in the band.
func (b Band) Dy() int {
	return max(b.Y1-b.Y0, 0)
}

// Bands yields at most n bands that split the rows [y0, y1) evenly
// from top to bottom. Every row is in exactly one band and no band is
// empty, so
//
//	Bands(0, 10, 3)
//
// will produce
//
//	[0, 4) [4, 7) [7, 10)
//
// If n is less than one, a single band is yielded. If there are fewer
// rows than n, each row gets its own band.
func Bands(y0, y1, n int) iter.Seq[Band] {
	return func(yield func(Band) bool) {
		rows := y1 - y0
		if rows <= 0 {
			return
		}
		n = max(1, min(n, rows))

		size, rem := rows/n, rows%n
		for i := range n {
			h := size
			if i < rem {
				h++
			}
			if !yield(Band{Y0: y0, Y1: y0 + h}) {
				return
			}
			y0 += h
		}
	}
}

// SplitBands fills bands with the result of [Bands] for len(bands)
// and returns the prefix of bands that was filled.
func SplitBands(bands []Band, y0, y1 int) []Band {
	if len(bands) == 0 {
		return bands
	}

	n := 0
	for i, b := range xiter.Enumerate(Bands(y0, y1, len(bands))) {
		bands[i] = b
		n = i + 1
	}
	return bands[:n]
}
