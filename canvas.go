// Package xraster is a small software rasterizer. A [Canvas] is a
// fixed-size buffer of packed colors that the shapes from package
// figure are drawn into with a solid color, no anti-aliasing and no
// blending: the last draw to touch a pixel decides its color.
//
// A Canvas is an image.Image, so it can be handed to any encoder. The
// ppm package writes the plain text format that this package was
// designed around.
package xraster

import (
	"image"
	"image/color"
	"sync"

	"deedles.dev/xraster/figure"
	"deedles.dev/xraster/geom"
)

// Canvas is a row-major buffer of Colors. It is not safe for
// concurrent use.
type Canvas struct {
	width, height int
	pix           []Color

	workers int
	bands   []geom.Band
}

// New returns a canvas as described by cfg.
func New(cfg Config) *Canvas {
	w, h := max(cfg.Width, 0), max(cfg.Height, 0)
	c := Canvas{
		width:   w,
		height:  h,
		pix:     make([]Color, w*h),
		workers: max(cfg.Workers, 1),
	}
	c.Fill(cfg.Background)
	return &c
}

// NewCanvas returns a width by height canvas filled with bg.
func NewCanvas(width, height int, bg Color) *Canvas {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Background = width, height, bg
	return New(cfg)
}

// Default returns a canvas created from DefaultConfig.
func Default() *Canvas {
	return New(DefaultConfig())
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Pix returns the pixel buffer. Pixel (x, y) is at index y*Width()+x.
// The slice is shared with the canvas.
func (c *Canvas) Pix() []Color {
	return c.pix
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}

// Draw colors every pixel of f that is on the canvas with col. Parts of
// f that fall outside of the canvas are ignored.
func (c *Canvas) Draw(f figure.Figure, col Color) {
	r := f.Bounds().Intersect(c.Bounds())
	if r.Empty() {
		Logger().Debug("figure is off canvas", "kind", f.Kind(), "bounds", f.Bounds())
		return
	}

	rows := geom.Band{Y0: r.Min.Y, Y1: r.Max.Y}
	if (c.workers < 2) || (rows.Dy() < 2) {
		Logger().Debug("draw", "kind", f.Kind(), "bounds", r, "color", col)
		c.scan(f, col, r.Min.X, r.Max.X, rows)
		return
	}

	if len(c.bands) < c.workers {
		c.bands = make([]geom.Band, c.workers)
	}
	bands := geom.SplitBands(c.bands[:c.workers], rows.Y0, rows.Y1)
	Logger().Debug("draw", "kind", f.Kind(), "bounds", r, "color", col, "bands", len(bands))

	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, b := range bands {
		go func() {
			defer wg.Done()
			c.scan(f, col, r.Min.X, r.Max.X, b)
		}()
	}
	wg.Wait()
}

// scan tests every pixel in columns [x0, x1) of the rows in b. The
// caller guarantees that the region is on the canvas.
func (c *Canvas) scan(f figure.Figure, col Color, x0, x1 int, b geom.Band) {
	for y := b.Y0; y < b.Y1; y++ {
		row := c.pix[y*c.width : (y+1)*c.width]
		for x := x0; x < x1; x++ {
			if f.Contains(x, y) {
				row[x] = col
			}
		}
	}
}

func (c *Canvas) in(x, y int) bool {
	return (x >= 0) && (x < c.width) && (y >= 0) && (y < c.height)
}

// ColorAt returns the color of the pixel at (x, y), or Black if it is
// not on the canvas.
func (c *Canvas) ColorAt(x, y int) Color {
	if !c.in(x, y) {
		return Black
	}
	return c.pix[y*c.width+x]
}

// SetColor sets the pixel at (x, y) to col. It does nothing if the
// pixel is not on the canvas.
func (c *Canvas) SetColor(x, y int, col Color) {
	if !c.in(x, y) {
		return
	}
	c.pix[y*c.width+x] = col
}

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

func (c *Canvas) ColorModel() color.Model { return Model }

func (c *Canvas) At(x, y int) color.Color { return c.ColorAt(x, y) }

func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetColor(x, y, Model.Convert(col).(Color))
}
