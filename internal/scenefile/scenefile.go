// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenefile loads shape scenes described in YAML.
//
// A scene lists named styles and the shapes to draw, in paint order:
//
//	styles:
//	  arc:
//	    fill: rosy_brown
//	    stroke: midnight_blue
//	    stroke_width: 3
//	shapes:
//	  - kind: polygon
//	    points: [[200, 100], [100, 400], [5, 5], [100, 20]]
//	    fill: 0x000066ff
//	    stroke: [0, 100, 0]
//	    stroke_width: 10
//	  - kind: pie
//	    style: arc
//	    center: [600, 350]
//	    radius: 30
//	    span: [1.5, 6.3]
//	    stroke: null
//
// Colors take any form prim.ParseColor accepts. A null color or the string
// "none" disables that part of the shape; leaving the key out keeps the
// style's or the default color. Fields set on a shape override its style.
package scenefile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/prim"
	"github.com/gogpu/prim/batch"
)

var (
	// ErrUnknownShape is returned for a shape kind prim cannot draw.
	ErrUnknownShape = errors.New("scenefile: unknown shape kind")

	// ErrUnknownStyle is returned when a shape names a style the scene does
	// not define.
	ErrUnknownStyle = errors.New("scenefile: unknown style")

	// ErrInvalidStyle is returned for a malformed style field.
	ErrInvalidStyle = errors.New("scenefile: invalid style")
)

// Scene is a decoded scene file.
type Scene struct {
	Styles map[string]Style `yaml:"styles"`
	Shapes []Shape          `yaml:"shapes"`
}

// Style holds shape options. Colors are kept as raw YAML nodes so that an
// explicit null can be told apart from a missing key.
type Style struct {
	Fill        yaml.Node `yaml:"fill"`
	Stroke      yaml.Node `yaml:"stroke"`
	StrokeWidth *float64  `yaml:"stroke_width"`
	Quality     string    `yaml:"quality"`
}

// Shape is one shape entry. Only the geometry fields its kind uses are read.
type Shape struct {
	Kind  string `yaml:"kind"`
	Style string `yaml:"style"`

	Overrides Style `yaml:",inline"`

	Points [][2]float64 `yaml:"points"`
	Center [2]float64   `yaml:"center"`
	Radii  [2]float64   `yaml:"radii"`
	Radius float64      `yaml:"radius"`
	Span   [2]float64   `yaml:"span"`
	Size   [2]float64   `yaml:"size"`
	Side   float64      `yaml:"side"`
	From   [2]float64   `yaml:"from"`
	To     [2]float64   `yaml:"to"`
	At     [2]float64   `yaml:"at"`
}

// Load decodes a scene. Unknown keys are rejected.
// An empty document is an empty scene.
func Load(r io.Reader) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	prim.Logger().Debug("scenefile: loaded", "shapes", len(sc.Shapes), "styles", len(sc.Styles))
	return &sc, nil
}

// Build draws the scene's shapes into b, or into a new batch when b is
// nil, and returns the batch. It stops at the first failing shape.
func (sc *Scene) Build(b *batch.Batch) (*batch.Batch, error) {
	if b == nil {
		b = batch.New()
	}
	for i, sh := range sc.Shapes {
		opts, err := sc.options(sh)
		if err != nil {
			return nil, fmt.Errorf("scenefile: shape %d (%s): %w", i, sh.Kind, err)
		}
		opts = append(opts, prim.WithBatch(b))
		if err := sh.draw(opts); err != nil {
			return nil, fmt.Errorf("scenefile: shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return b, nil
}

// options resolves the shape's named style, then its own overrides.
func (sc *Scene) options(sh Shape) ([]prim.Option, error) {
	var opts []prim.Option
	if sh.Style != "" {
		st, ok := sc.Styles[sh.Style]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, sh.Style)
		}
		base, err := st.options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, base...)
	}
	own, err := sh.Overrides.options()
	if err != nil {
		return nil, err
	}
	return append(opts, own...), nil
}

func (st Style) options() ([]prim.Option, error) {
	var opts []prim.Option

	fill, err := colorOption(&st.Fill, prim.WithFill, prim.NoFill)
	if err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	stroke, err := colorOption(&st.Stroke, prim.WithStroke, prim.NoStroke)
	if err != nil {
		return nil, fmt.Errorf("stroke: %w", err)
	}
	for _, o := range []prim.Option{fill, stroke} {
		if o != nil {
			opts = append(opts, o)
		}
	}

	if st.StrokeWidth != nil {
		opts = append(opts, prim.WithStrokeWidth(*st.StrokeWidth))
	}

	switch st.Quality {
	case "":
	case "dont_care":
		opts = append(opts, prim.WithQuality(batch.QualityDontCare))
	case "fastest":
		opts = append(opts, prim.WithQuality(batch.QualityFastest))
	case "nicest":
		opts = append(opts, prim.WithQuality(batch.QualityNicest))
	default:
		return nil, fmt.Errorf("%w: quality %q", ErrInvalidStyle, st.Quality)
	}
	return opts, nil
}

// colorOption turns a color node into an option; nil when the key is
// missing.
func colorOption(n *yaml.Node, with func(any) prim.Option, none func() prim.Option) (prim.Option, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.ShortTag() == "!!null" {
		return none(), nil
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyle, err)
	}
	if s, ok := v.(string); ok && s == "none" {
		return none(), nil
	}
	return with(v), nil
}

func pt(v [2]float64) prim.Point {
	return prim.Pt(v[0], v[1])
}

func (sh Shape) draw(opts []prim.Option) error {
	var err error
	switch sh.Kind {
	case "polygon":
		points := make([]prim.Point, len(sh.Points))
		for i, p := range sh.Points {
			points[i] = pt(p)
		}
		_, err = prim.Polygon(points, opts...)
	case "ellipse":
		_, err = prim.Ellipse(pt(sh.Center), pt(sh.Radii), opts...)
	case "circle":
		_, err = prim.Circle(pt(sh.Center), sh.Radius, opts...)
	case "arc":
		_, err = prim.Arc(pt(sh.Center), pt(sh.Radii), prim.Span{Start: sh.Span[0], Stop: sh.Span[1]}, opts...)
	case "pie":
		_, err = prim.Pie(pt(sh.Center), sh.Radius, prim.Span{Start: sh.Span[0], Stop: sh.Span[1]}, opts...)
	case "chord":
		_, err = prim.Chord(pt(sh.Center), pt(sh.Radii), prim.Span{Start: sh.Span[0], Stop: sh.Span[1]}, opts...)
	case "rectangle":
		_, err = prim.Rectangle(pt(sh.Center), pt(sh.Size), opts...)
	case "square":
		_, err = prim.Square(pt(sh.Center), sh.Side, opts...)
	case "line":
		_, err = prim.Line(pt(sh.From), pt(sh.To), opts...)
	case "point":
		_, err = prim.Dot(pt(sh.At), opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShape, sh.Kind)
	}
	return err
}
