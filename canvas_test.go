package xraster_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"deedles.dev/xraster"
	"deedles.dev/xraster/figure"
	"github.com/stretchr/testify/require"
)

const bg = xraster.Black

// colored returns the pixels of c that are not bg in row-major order.
func colored(c *xraster.Canvas) []image.Point {
	var pts []image.Point
	for y := range c.Height() {
		for x := range c.Width() {
			if c.ColorAt(x, y) != bg {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

// scanAll draws f by testing every pixel of the canvas instead of only
// those in its bounds.
func scanAll(c *xraster.Canvas, f figure.Figure, col xraster.Color) {
	for y := range c.Height() {
		for x := range c.Width() {
			if f.Contains(x, y) {
				c.SetColor(x, y, col)
			}
		}
	}
}

func randomFigure(r *rand.Rand, limit int) figure.Figure {
	n := func() int { return r.IntN(limit) }
	switch r.IntN(4) {
	case 0:
		return figure.NewRectangle(n(), n(), r.IntN(limit/2), r.IntN(limit/2))
	case 1:
		return figure.NewCircle(n(), n(), r.IntN(limit/2))
	case 2:
		return figure.NewLine(n(), n(), n(), n())
	default:
		return figure.NewTriangle(n(), n(), n(), n(), n(), n())
	}
}

func TestDefault(t *testing.T) {
	c := xraster.Default()
	require.Equal(t, xraster.DefaultWidth, c.Width())
	require.Equal(t, xraster.DefaultHeight, c.Height())
	require.Len(t, c.Pix(), 264*264)
	for _, p := range c.Pix() {
		require.Equal(t, xraster.DefaultBackground, p)
	}
}

func TestNewCanvas(t *testing.T) {
	c := xraster.NewCanvas(3, 2, xraster.Blue)
	require.Equal(t, image.Rect(0, 0, 3, 2), c.Bounds())
	require.Equal(t, slices.Repeat([]xraster.Color{xraster.Blue}, 6), c.Pix())

	c = xraster.NewCanvas(-4, 7, xraster.Blue)
	require.Zero(t, c.Width())
	require.Empty(t, c.Pix())
	require.NotPanics(t, func() { c.Draw(figure.NewCircle(0, 0, 3), xraster.Red) })
}

func TestFill(t *testing.T) {
	c := xraster.NewCanvas(4, 4, bg)
	c.Draw(figure.NewRectangle(1, 1, 1, 1), xraster.Red)
	c.Fill(xraster.Green)
	require.Equal(t, slices.Repeat([]xraster.Color{xraster.Green}, 16), c.Pix())
}

func TestDrawRectangle(t *testing.T) {
	c := xraster.NewCanvas(8, 8, bg)
	c.Draw(figure.NewRectangle(2, 2, 3, 3), xraster.Red)

	pts := colored(c)
	require.Len(t, pts, 16)
	for _, p := range pts {
		require.True(t, p.In(image.Rect(2, 2, 6, 6)), "%v", p)
		require.Equal(t, xraster.Red, c.ColorAt(p.X, p.Y))
	}
}

func TestDrawCircle(t *testing.T) {
	c := xraster.NewCanvas(32, 32, bg)
	c.Draw(figure.NewCircle(10, 10, 5), xraster.Red)
	require.Equal(t, xraster.Red, c.ColorAt(15, 10))
	require.Equal(t, xraster.Red, c.ColorAt(10, 15))
	require.Equal(t, bg, c.ColorAt(16, 10))
}

func TestDrawLine(t *testing.T) {
	c := xraster.NewCanvas(8, 8, bg)
	c.Draw(figure.NewLine(0, 0, 4, 4), xraster.Red)
	require.Equal(t, []image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, colored(c))
}

func TestDrawTriangle(t *testing.T) {
	c := xraster.NewCanvas(8, 8, bg)
	c.Draw(figure.NewTriangle(0, 0, 4, 0, 2, 4), xraster.Red)

	spans := [][]int{
		{0, 1, 2, 3, 4},
		{1, 2, 3},
		{1, 2, 3},
		{2},
		{2},
	}
	for y, want := range spans {
		var got []int
		for x := range c.Width() {
			if c.ColorAt(x, y) == xraster.Red {
				got = append(got, x)
			}
		}
		require.Equal(t, want, got, "row %v", y)
	}
	for y := 5; y < 8; y++ {
		for x := range 8 {
			require.Equal(t, bg, c.ColorAt(x, y))
		}
	}
}

func TestDrawDegenerateTriangle(t *testing.T) {
	tri := xraster.NewCanvas(10, 10, bg)
	tri.Draw(figure.NewTriangle(6, 4, 2, 4, 9, 4), xraster.Red)

	line := xraster.NewCanvas(10, 10, bg)
	line.Draw(figure.NewLine(2, 4, 9, 4), xraster.Red)

	require.Equal(t, line.Pix(), tri.Pix())
}

func TestDrawLastWriteWins(t *testing.T) {
	c := xraster.NewCanvas(10, 10, bg)
	c.Draw(figure.NewRectangle(0, 0, 5, 5), xraster.Red)
	c.Draw(figure.NewRectangle(3, 3, 5, 5), xraster.Blue)

	require.Equal(t, xraster.Red, c.ColorAt(0, 0))
	require.Equal(t, xraster.Red, c.ColorAt(2, 5))
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			require.Equal(t, xraster.Blue, c.ColorAt(x, y))
		}
	}
	require.Equal(t, xraster.Blue, c.ColorAt(8, 8))
}

func TestDrawOffCanvas(t *testing.T) {
	c := xraster.NewCanvas(6, 6, bg)
	before := slices.Clone(c.Pix())

	c.Draw(figure.NewRectangle(6, 0, 3, 3), xraster.Red)
	c.Draw(figure.NewRectangle(0, 6, 3, 3), xraster.Red)
	c.Draw(figure.NewCircle(20, 20, 4), xraster.Red)
	c.Draw(figure.NewLine(7, 7, 12, 30), xraster.Red)
	c.Draw(figure.NewTriangle(10, 10, 20, 10, 15, 20), xraster.Red)
	require.Equal(t, before, c.Pix())

	c.Draw(figure.NewRectangle(4, 4, 10, 10), xraster.Red)
	require.Equal(t, []image.Point{{4, 4}, {5, 4}, {4, 5}, {5, 5}}, colored(c))
}

func TestDrawHuge(t *testing.T) {
	c := xraster.NewCanvas(10, 10, bg)
	c.Draw(figure.NewRectangle(5, 5, math.MaxInt, math.MaxInt), xraster.Red)
	require.Len(t, colored(c), 25)
	for _, p := range colored(c) {
		require.True(t, p.X >= 5 && p.Y >= 5, "%v", p)
	}

	c = xraster.NewCanvas(10, 10, bg)
	c.Draw(figure.NewCircle(5, 5, 1<<32), xraster.Red)
	require.Len(t, colored(c), 100)

	c = xraster.NewCanvas(10, 10, bg)
	c.Draw(figure.NewCircle(5, 5, math.MaxInt), xraster.Red)
	require.Len(t, colored(c), 100)
}

func TestDrawMatchesFullScan(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 300 {
		f := randomFigure(r, 48)

		got := xraster.NewCanvas(32, 24, bg)
		got.Draw(f, xraster.Red)

		want := xraster.NewCanvas(32, 24, bg)
		scanAll(want, f, xraster.Red)

		require.Equal(t, want.Pix(), got.Pix(), "%v %+v", f.Kind(), f)
	}
}

func TestDrawParallel(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))

	cfg := xraster.Config{Width: 40, Height: 40, Background: bg}
	seq := xraster.New(cfg)
	cfg.Workers = 5
	par := xraster.New(cfg)

	colors := []xraster.Color{xraster.Red, xraster.Green, xraster.Blue, xraster.Yellow}
	for i := range 200 {
		f := randomFigure(r, 48)
		seq.Draw(f, colors[i%len(colors)])
		par.Draw(f, colors[i%len(colors)])
		require.Equal(t, seq.Pix(), par.Pix(), "draw %v: %v %+v", i, f.Kind(), f)
	}
}

func TestSetAt(t *testing.T) {
	c := xraster.NewCanvas(4, 4, bg)
	c.Set(1, 2, color.RGBA{R: 0xFF, A: 0xFF})
	c.Set(9, 9, color.White)
	c.Set(-1, 0, color.White)

	require.Equal(t, xraster.Red, c.At(1, 2))
	require.Equal(t, xraster.Red, c.Pix()[2*4+1])
	require.Equal(t, xraster.Black, c.At(9, 9))
	require.Equal(t, xraster.Model, c.ColorModel())
	require.Equal(t, []image.Point{{1, 2}}, colored(c))
}

func TestDrawLogs(t *testing.T) {
	var buf bytes.Buffer
	xraster.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { xraster.SetLogger(nil) })

	c := xraster.NewCanvas(8, 8, bg)
	c.Draw(figure.NewCircle(3, 3, 2), xraster.Red)
	require.Contains(t, buf.String(), "kind=circle")
	require.Contains(t, buf.String(), "color=#ff0000")

	buf.Reset()
	c.Draw(figure.NewCircle(30, 30, 2), xraster.Red)
	require.Contains(t, buf.String(), "off canvas")
}

func BenchmarkDraw(b *testing.B) {
	for _, workers := range []int{1, 4} {
		cfg := xraster.DefaultConfig()
		cfg.Workers = workers
		c := xraster.New(cfg)
		tri := figure.NewTriangle(0, 100, 200, 0, 200, 200)

		b.Run(fmt.Sprint(workers), func(b *testing.B) {
			for b.Loop() {
				c.Draw(tri, xraster.Cyan)
			}
		})
	}
}
