// Package script reads drawing scripts: YAML documents that describe a
// canvas and an ordered list of shapes to draw on it. For example,
//
//	canvas: {width: 264, height: 264, background: "#202020"}
//	fill: white
//	draw:
//	  - {shape: triangle, at: [0, 100, 200, 0, 200, 200], color: cyan}
//	  - {shape: rectangle, at: [50, 90, 50, 200], color: "#00ff00"}
//	  - {shape: circle, at: [100, 100, 50], color: red}
//	  - {shape: line, at: [0, 0, 200, 200], color: blue}
//
// The numbers in at are passed, in order, to the constructor of the
// same name in package figure. Shapes are drawn in the order that they
// are listed.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"deedles.dev/xraster"
	"deedles.dev/xraster/figure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownShape is returned for a draw call with an unrecognized
	// shape.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrArity is returned for a draw call with the wrong number of
	// coordinates for its shape.
	ErrArity = errors.New("wrong number of coordinates")

	// ErrNegative is returned for a negative coordinate or size.
	ErrNegative = errors.New("negative coordinate")

	// ErrBadColor is returned for a color that cannot be parsed.
	ErrBadColor = errors.New("bad color")
)

// Script is a parsed drawing script.
type Script struct {
	Config xraster.Config

	// Fill, if not nil, is drawn over the whole canvas before any of
	// the calls.
	Fill *xraster.Color

	Calls []Call
}

// Call is a single shape to draw.
type Call struct {
	Figure figure.Figure
	Color  xraster.Color
}

type document struct {
	Canvas struct {
		Width      *int   `yaml:"width"`
		Height     *int   `yaml:"height"`
		Background string `yaml:"background"`
		Workers    int    `yaml:"workers"`
	} `yaml:"canvas"`
	Fill string `yaml:"fill"`
	Draw []struct {
		Shape string `yaml:"shape"`
		At    []int  `yaml:"at"`
		Color string `yaml:"color"`
	} `yaml:"draw"`
}

type constructor struct {
	arity int
	build func(v []int) figure.Figure
}

var shapes = map[string]constructor{
	"rectangle": {4, func(v []int) figure.Figure { return figure.NewRectangle(v[0], v[1], v[2], v[3]) }},
	"circle":    {3, func(v []int) figure.Figure { return figure.NewCircle(v[0], v[1], v[2]) }},
	"line":      {4, func(v []int) figure.Figure { return figure.NewLine(v[0], v[1], v[2], v[3]) }},
	"triangle":  {6, func(v []int) figure.Figure { return figure.NewTriangle(v[0], v[1], v[2], v[3], v[4], v[5]) }},
}

// Load parses the script in the file at path.
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses a script from r. Settings missing from the canvas
// section are taken from xraster.DefaultConfig. Unknown keys are an
// error.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	err := dec.Decode(&doc)
	if (err != nil) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	s := Script{Config: xraster.DefaultConfig()}
	if err := s.configure(&doc); err != nil {
		return nil, err
	}

	s.Calls = make([]Call, 0, len(doc.Draw))
	for i, d := range doc.Draw {
		con, ok := shapes[d.Shape]
		if !ok {
			return nil, fmt.Errorf("draw %v: %w: %q", i, ErrUnknownShape, d.Shape)
		}
		if len(d.At) != con.arity {
			return nil, fmt.Errorf("draw %v: %w: %v takes %v, got %v", i, ErrArity, d.Shape, con.arity, len(d.At))
		}
		for _, v := range d.At {
			if v < 0 {
				return nil, fmt.Errorf("draw %v: %w: %v", i, ErrNegative, v)
			}
		}

		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("draw %v: %w", i, err)
		}

		s.Calls = append(s.Calls, Call{Figure: con.build(d.At), Color: c})
	}

	return &s, nil
}

func (s *Script) configure(doc *document) error {
	if w := doc.Canvas.Width; w != nil {
		if *w < 0 {
			return fmt.Errorf("canvas width: %w: %v", ErrNegative, *w)
		}
		s.Config.Width = *w
	}
	if h := doc.Canvas.Height; h != nil {
		if *h < 0 {
			return fmt.Errorf("canvas height: %w: %v", ErrNegative, *h)
		}
		s.Config.Height = *h
	}
	if doc.Canvas.Background != "" {
		c, err := ParseColor(doc.Canvas.Background)
		if err != nil {
			return fmt.Errorf("canvas background: %w", err)
		}
		s.Config.Background = c
	}
	if doc.Canvas.Workers > 0 {
		s.Config.Workers = doc.Canvas.Workers
	}

	if doc.Fill != "" {
		c, err := ParseColor(doc.Fill)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		s.Fill = &c
	}

	return nil
}

// Render creates a canvas from the script's configuration and performs
// the script's calls on it.
func (s *Script) Render() *xraster.Canvas {
	c := xraster.New(s.Config)
	if s.Fill != nil {
		c.Fill(*s.Fill)
	}
	for _, call := range s.Calls {
		c.Draw(call.Figure, call.Color)
	}
	return c
}
