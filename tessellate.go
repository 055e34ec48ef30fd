// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import (
	"iter"
	"math"
)

// Ellipse tessellation bounds.
const (
	MinEllipseSegments = 50
	MaxEllipseSegments = 5000
)

// Span is an angular range in radians, half-open on the Stop side.
type Span struct {
	Start, Stop float64
}

// FullCircle spans one whole turn.
var FullCircle = Span{0, 2 * math.Pi}

// Sweep returns Stop - Start.
func (s Span) Sweep() float64 {
	return s.Stop - s.Start
}

// Empty reports whether the span covers no angle.
func (s Span) Empty() bool {
	return s.Start >= s.Stop
}

// Full reports whether the span covers at least one whole turn.
func (s Span) Full() bool {
	return s.Sweep() >= 2*math.Pi
}

// SegmentCount returns how many vertices approximate a whole ellipse with
// radii xr, yr stroked at strokeWidth: the circumference divided by the
// stroke width, clamped to [MinEllipseSegments, MaxEllipseSegments].
//
// Unequal radii use Ramanujan's second approximation of the circumference.
func SegmentCount(xr, yr, strokeWidth float64) int {
	var circumference float64
	if xr == yr {
		circumference = 2 * math.Pi * xr
	} else {
		circumference = math.Pi * (3*(xr+yr) - math.Sqrt((3*xr+yr)*(xr+3*yr)))
	}
	n := circumference / strokeWidth
	return int(min(max(n, MinEllipseSegments), MaxEllipseSegments))
}

// CurvePoints yields the vertices of an ellipse, or of the part of it
// covered by span, preceded by extra verbatim.
//
// The segment count is SegmentCount scaled by the span's share of a whole
// turn, rounded up so that even a tiny span yields a vertex. The vertex at
// span.Stop is never emitted; loop topologies close the curve.
//
// The sequence is finite and can be ranged over any number of times.
func CurvePoints(center, radii Point, strokeWidth float64, span Span, extra ...Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, p := range extra {
			if !yield(p) {
				return
			}
		}

		sweep := span.Sweep()
		turn := 2 * math.Pi
		segments := int(math.Ceil(float64(SegmentCount(radii.X, radii.Y, strokeWidth)) * sweep / turn))

		for s := range segments {
			theta := turn * float64(s) / float64(segments)
			theta = span.Start + theta*sweep/turn
			if !yield(ellipsePoint(center, radii, theta)) {
				return
			}
		}
	}
}

// ellipsePoint returns the point at angle theta on an axis-aligned ellipse.
func ellipsePoint(center, radii Point, theta float64) Point {
	return Point{
		X: center.X + radii.X*math.Cos(theta),
		Y: center.Y + radii.Y*math.Sin(theta),
	}
}

// Flatten collects points into a flat [x0, y0, x1, y1, ...] vertex buffer.
func Flatten(points iter.Seq[Point]) []float32 {
	var coords []float32
	for p := range points {
		coords = append(coords, float32(p.X), float32(p.Y))
	}
	return coords
}
