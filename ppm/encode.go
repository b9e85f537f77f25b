// Package ppm implements the plain (P3) variant of the portable pixmap
// format. Every sample is written as decimal text, which makes the
// output easy to inspect and diff at the cost of size.
//
// Importing this package registers a decoder with image.Decode.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

const (
	// Magic is the magic number at the start of a plain PPM file.
	Magic = "P3"

	// MaxValue is the maximum sample value written by Encode.
	MaxValue = 255

	// MaxLineWidth is the longest line, not counting the newline, that
	// Encode will write.
	MaxLineWidth = 70
)

type rgber interface {
	RGB() (r, g, b uint8)
}

// Encode writes m to w as a plain PPM image with a maximum sample value
// of MaxValue. Each row of the image starts on a new line, and long
// rows are wrapped so that no line is longer than MaxLineWidth.
//
// Colors that implement an RGB() (r, g, b uint8) method, such as
// xraster.Color, are written as is. Any other color is reduced to 8
// bits per channel from its RGBA method.
func Encode(w io.Writer, m image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := m.Bounds()
	fmt.Fprintf(bw, "%v\n%v %v\n%v\n", Magic, bounds.Dx(), bounds.Dy(), MaxValue)

	lw := lineWriter{w: bw}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b := rgb(m, x, y)
			lw.sample(r)
			lw.sample(g)
			lw.sample(b)
		}
		lw.newline()
	}

	// bufio.Writer keeps the first error and returns it from every
	// later call, including this one.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func rgb(m image.Image, x, y int) (r, g, b uint8) {
	c := m.At(x, y)
	if c, ok := c.(rgber); ok {
		return c.RGB()
	}

	r32, g32, b32, _ := c.RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

// lineWriter writes space separated samples, starting a new line
// whenever the next one would not fit.
type lineWriter struct {
	w   *bufio.Writer
	n   int
	buf [3]byte
}

func (lw *lineWriter) sample(v uint8) {
	s := strconv.AppendUint(lw.buf[:0], uint64(v), 10)
	switch {
	case lw.n == 0:
	case lw.n+1+len(s) > MaxLineWidth:
		lw.w.WriteByte('\n')
		lw.n = 0
	default:
		lw.w.WriteByte(' ')
		lw.n++
	}

	lw.w.Write(s)
	lw.n += len(s)
}

func (lw *lineWriter) newline() {
	if lw.n == 0 {
		return
	}
	lw.w.WriteByte('\n')
	lw.n = 0
}
