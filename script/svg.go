package script

import (
	"bufio"
	"fmt"
	"io"

	"deedles.dev/xraster"
	"deedles.dev/xraster/figure"
	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the script to w as an SVG document with one element
// per call, in order. It is a preview: the SVG renderer decides which
// pixels each shape covers, so edges will not match Render exactly.
func (s *Script) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	width, height := max(s.Config.Width, 0), max(s.Config.Height, 0)
	canvas.Start(width, height)

	bg := s.Config.Background
	if s.Fill != nil {
		bg = *s.Fill
	}
	canvas.Rect(0, 0, width, height, fill(bg))

	for _, call := range s.Calls {
		switch f := call.Figure.(type) {
		case figure.Rectangle:
			canvas.Rect(f.Anchor.X, f.Anchor.Y, f.Extent.W+1, f.Extent.H+1, fill(call.Color))
		case figure.Circle:
			canvas.Circle(f.Center.X, f.Center.Y, f.Radius, fill(call.Color))
		case figure.Line:
			p1, p2 := f.Points()
			canvas.Line(p1.X, p1.Y, p2.X, p2.Y, stroke(call.Color))
		case figure.Triangle:
			p1, p2, p3 := f.Points()
			canvas.Polygon(
				[]int{p1.X, p2.X, p3.X},
				[]int{p1.Y, p2.Y, p3.Y},
				fill(call.Color),
			)
		}
	}

	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func fill(c xraster.Color) string {
	return "fill:" + c.String()
}

func stroke(c xraster.Color) string {
	return "stroke:" + c.String() + ";stroke-width:1"
}
