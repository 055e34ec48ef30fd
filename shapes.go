// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import (
	"fmt"

	"github.com/gogpu/prim/batch"
)

// PolygonFlat adds a polygon given as a flat [x0, y0, x1, y1, ...]
// coordinate list and returns the batch it was added to.
//
// The fill draws as a triangle fan with an anti-aliased outline in the
// fill color over its edges. The stroke draws as a line loop with a point
// on every vertex to close the gaps at the corners.
func PolygonFlat(coords []float32, opts ...Option) (*batch.Batch, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("prim: polygon: %w: got %d values", batch.ErrOddCoordinates, len(coords))
	}
	o := resolve(opts)
	return closedShape("polygon", coords, o)
}

// Polygon adds a polygon through points.
func Polygon(points []Point, opts ...Option) (*batch.Batch, error) {
	coords := make([]float32, 0, 2*len(points))
	for _, p := range points {
		coords = append(coords, float32(p.X), float32(p.Y))
	}
	return closedShape("polygon", coords, resolve(opts))
}

// Ellipse adds an axis-aligned ellipse with the given center and x/y radii.
func Ellipse(center, radii Point, opts ...Option) (*batch.Batch, error) {
	o := resolve(opts)
	return ellipse("ellipse", center, radii, o)
}

// Circle adds a circle. It is an Ellipse with equal radii.
func Circle(center Point, radius float64, opts ...Option) (*batch.Batch, error) {
	return Ellipse(center, Pt(radius, radius), opts...)
}

// Arc adds the part of an ellipse covered by span, closed through the
// center.
//
// An empty span (Start >= Stop) adds nothing. A span of a whole turn or
// more adds a full ellipse.
func Arc(center, radii Point, span Span, opts ...Option) (*batch.Batch, error) {
	return partialEllipse("arc", center, radii, span, []Point{center}, resolve(opts))
}

// Pie adds a circular Arc.
func Pie(center Point, radius float64, span Span, opts ...Option) (*batch.Batch, error) {
	return partialEllipse("pie", center, Pt(radius, radius), span, []Point{center}, resolve(opts))
}

// Chord adds the part of an ellipse covered by span, closed by the
// straight line between its ends. Empty and full spans behave as in Arc.
func Chord(center, radii Point, span Span, opts ...Option) (*batch.Batch, error) {
	return partialEllipse("chord", center, radii, span, nil, resolve(opts))
}

// Rectangle adds an axis-aligned rectangle centered on center with the
// given width and height.
func Rectangle(center, size Point, opts ...Option) (*batch.Batch, error) {
	half := Pt(size.X/2, size.Y/2)
	corners := []Point{
		center.Sub(half),
		center.Add(Pt(half.X, -half.Y)),
		center.Add(half),
		center.Sub(Pt(half.X, -half.Y)),
	}
	return Polygon(corners, opts...)
}

// Square adds a Rectangle with equal sides.
func Square(center Point, side float64, opts ...Option) (*batch.Batch, error) {
	return Rectangle(center, Pt(side, side), opts...)
}

// Line adds a line segment from a to b drawn with the stroke style.
// Lines have no interior, so the fill options are ignored.
func Line(a, b Point, opts ...Option) (*batch.Batch, error) {
	return strokeOnly("line", batch.Lines, []float32{
		float32(a.X), float32(a.Y),
		float32(b.X), float32(b.Y),
	}, resolve(opts))
}

// Dot adds a single point drawn with the stroke style; the stroke width is
// its size. The fill options are ignored.
func Dot(p Point, opts ...Option) (*batch.Batch, error) {
	return strokeOnly("point", batch.Points, []float32{float32(p.X), float32(p.Y)}, resolve(opts))
}

func ellipse(kind string, center, radii Point, o options) (*batch.Batch, error) {
	coords := Flatten(CurvePoints(center, radii, o.strokeWidth, FullCircle))
	return closedShape(kind, coords, o)
}

// partialEllipse is shared by Arc, Pie and Chord; extra holds the points
// that precede the curve.
func partialEllipse(kind string, center, radii Point, span Span, extra []Point, o options) (*batch.Batch, error) {
	if span.Empty() {
		Logger().Debug("prim: empty span, nothing added", "kind", kind, "start", span.Start, "stop", span.Stop)
		return o.target(), nil
	}
	if span.Full() {
		return ellipse(kind, center, radii, o)
	}
	coords := Flatten(CurvePoints(center, radii, o.strokeWidth, span, extra...))
	return closedShape(kind, coords, o)
}

// closedShape submits the fill and stroke lists of a closed outline.
func closedShape(kind string, coords []float32, o options) (*batch.Batch, error) {
	b := o.target()
	fill, stroke, err := styleLayers(b, o)
	if err != nil {
		return nil, fmt.Errorf("prim: %s: %w", kind, err)
	}

	if !fill.Disabled() {
		l := fill.layer()
		if err := add(b, l, coords, batch.TriangleFan, batch.LineLoop); err != nil {
			return nil, fmt.Errorf("prim: %s fill: %w", kind, err)
		}
	}
	if !stroke.Disabled() {
		l := stroke.layer()
		if err := add(b, l, coords, batch.LineLoop, batch.Points); err != nil {
			return nil, fmt.Errorf("prim: %s stroke: %w", kind, err)
		}
	}

	Logger().Debug("prim: shape added",
		"kind", kind,
		"vertices", len(coords)/2,
		"fill", fill.order, "fillEnabled", !fill.Disabled(),
		"stroke", stroke.order, "strokeEnabled", !stroke.Disabled())
	return b, nil
}

// strokeOnly submits a single list drawn with the stroke style.
func strokeOnly(kind string, t batch.Topology, coords []float32, o options) (*batch.Batch, error) {
	b := o.target()
	_, strokeKey := AllocateOrder(b)
	stroke, err := newStyleLayer(o, roleStroke, strokeKey)
	if err != nil {
		return nil, fmt.Errorf("prim: %s: %w", kind, err)
	}

	if !stroke.Disabled() {
		if err := add(b, stroke.layer(), coords, t); err != nil {
			return nil, fmt.Errorf("prim: %s: %w", kind, err)
		}
	}

	Logger().Debug("prim: shape added", "kind", kind, "stroke", strokeKey, "strokeEnabled", !stroke.Disabled())
	return b, nil
}

// add submits coords to b under l once per topology.
func add(b *batch.Batch, l *batch.Layer, coords []float32, topologies ...batch.Topology) error {
	for _, t := range topologies {
		if _, err := b.Add(l, t, coords); err != nil {
			return err
		}
	}
	return nil
}
