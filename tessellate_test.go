// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import (
	"math"
	"slices"
	"testing"
)

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		name   string
		xr, yr float64
		width  float64
		want   int
	}{
		{name: "small circle clamps to min", xr: 1, yr: 1, width: 1, want: MinEllipseSegments},
		{name: "circle", xr: 100, yr: 100, width: 1, want: 628},
		{name: "wide stroke", xr: 100, yr: 100, width: 4, want: 157},
		{name: "huge circle clamps to max", xr: 10000, yr: 10000, width: 1, want: MaxEllipseSegments},
		{
			name: "ellipse uses ramanujan",
			xr:   200, yr: 100, width: 1,
			want: 968,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentCount(tt.xr, tt.yr, tt.width); got != tt.want {
				t.Errorf("SegmentCount(%v, %v, %v) = %d, want %d", tt.xr, tt.yr, tt.width, got, tt.want)
			}
		})
	}
}

func TestSegmentCountMonotonic(t *testing.T) {
	prev := 0
	for r := 0.5; r < 2000; r *= 1.3 {
		n := SegmentCount(r, r, 2)
		if n < prev {
			t.Errorf("SegmentCount decreased with radius: r=%v gave %d after %d", r, n, prev)
		}
		if n < MinEllipseSegments || n > MaxEllipseSegments {
			t.Errorf("SegmentCount(%v) = %d outside bounds", r, n)
		}
		prev = n
	}

	prev = math.MaxInt
	for w := 0.1; w < 100; w *= 1.5 {
		n := SegmentCount(300, 150, w)
		if n > prev {
			t.Errorf("SegmentCount increased with width: w=%v gave %d after %d", w, n, prev)
		}
		prev = n
	}
}

func TestCurvePointsFullCircle(t *testing.T) {
	center := Pt(50, -20)
	const r = 80.0
	want := SegmentCount(r, r, 1)

	points := slices.Collect(CurvePoints(center, Pt(r, r), 1, FullCircle))
	if len(points) != want {
		t.Fatalf("len = %d, want %d", len(points), want)
	}
	for i, p := range points {
		if d := p.Distance(center); math.Abs(d-r) > 1e-9 {
			t.Errorf("point %d at distance %v, want %v", i, d, r)
		}
	}
	if first := points[0]; math.Abs(first.X-(center.X+r)) > 1e-9 || math.Abs(first.Y-center.Y) > 1e-9 {
		t.Errorf("first point = %v, want angle 0", first)
	}
}

func TestCurvePointsPartial(t *testing.T) {
	center := Pt(0, 0)
	radii := Pt(30, 30)
	span := Span{Start: math.Pi / 2, Stop: math.Pi}

	points := slices.Collect(CurvePoints(center, radii, 1, span, center))

	segments := int(math.Ceil(float64(SegmentCount(30, 30, 1)) * span.Sweep() / (2 * math.Pi)))
	if len(points) != segments+1 {
		t.Fatalf("len = %d, want %d (segments + extra)", len(points), segments+1)
	}
	if points[0] != center {
		t.Errorf("extra point = %v, want center first", points[0])
	}
	for i, p := range points[1:] {
		theta := math.Atan2(p.Y, p.X)
		if theta < span.Start-1e-9 || theta >= span.Stop {
			t.Errorf("point %d at angle %v outside [%v, %v)", i, theta, span.Start, span.Stop)
		}
	}
	if first := points[1]; math.Abs(first.X) > 1e-9 || math.Abs(first.Y-30) > 1e-9 {
		t.Errorf("first curve point = %v, want (0, 30)", first)
	}
}

func TestCurvePointsTinySpan(t *testing.T) {
	points := slices.Collect(CurvePoints(Pt(0, 0), Pt(10, 10), 1, Span{0, 1e-9}))
	if len(points) != 1 {
		t.Errorf("tiny span produced %d points, want 1", len(points))
	}
}

func TestCurvePointsRestartable(t *testing.T) {
	seq := CurvePoints(Pt(1, 2), Pt(10, 5), 1, Span{0, 1}, Pt(1, 2))
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Error("ranging twice over the same sequence gave different points")
	}

	// Early break must not panic.
	for range seq {
		break
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(slices.Values([]Point{{1, 2}, {3, 4}}))
	if !slices.Equal(got, []float32{1, 2, 3, 4}) {
		t.Errorf("Flatten() = %v", got)
	}
	if Flatten(slices.Values([]Point(nil))) != nil {
		t.Error("Flatten() of nothing should be nil")
	}
}

func TestSpan(t *testing.T) {
	if !(Span{1, 1}).Empty() || !(Span{2, 1}).Empty() || (Span{1, 2}).Empty() {
		t.Error("Empty() wrong")
	}
	if !FullCircle.Full() || !(Span{-1, 7}).Full() || (Span{0, 6}).Full() {
		t.Error("Full() wrong")
	}
}
