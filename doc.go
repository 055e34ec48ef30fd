// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package prim draws shape primitives into layered vertex batches.
//
// # Overview
//
// prim turns declarative shapes (polygons, ellipses, circles, arcs, pies,
// chords, rectangles, squares, lines and points) into vertex lists inside
// a [batch.Batch]. Each shape gets two fresh ordering keys, one for its
// fill and one above it for its stroke, so fills never cover strokes and
// later shapes paint over earlier ones without the caller tracking any
// order.
//
// # Quick Start
//
//	b, err := prim.Polygon(
//	    []prim.Point{{200, 100}, {100, 400}, {5, 5}, {100, 20}},
//	    prim.WithFill(0x000066ff),
//	    prim.WithStroke([]int{0, 100, 0}),
//	    prim.WithStrokeWidth(10),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Shapes accumulate into the same batch.
//	_, err = prim.Circle(prim.Pt(320, 240), 30, prim.WithBatch(b), prim.NoStroke())
//
//	// Replay onto a gg context.
//	dc := gg.NewContext(640, 480)
//	err = b.Draw(raster.New(dc))
//
// # Styles
//
// Every shape accepts the same options. Fill defaults to opaque white,
// stroke to opaque black, and stroke width to 1. Passing nil to WithFill
// or WithStroke (or using NoFill and NoStroke) disables that part of the
// shape, which is different from leaving the option out.
//
// Colors may be given as packed 0xRRGGBBAA integers, 1 to 4 element
// channel slices, color names, or any color.Color; see [ParseColor].
//
// # Curves
//
// Curved shapes are tessellated by [CurvePoints]. The number of segments
// grows with the curve's circumference and shrinks with the stroke width,
// within [MinEllipseSegments] and [MaxEllipseSegments].
package prim
