// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"errors"
	"image/color"
	"testing"
)

func TestBatchAdd(t *testing.T) {
	b := New()
	l := NewLayer(1, DefaultState())

	coords := []float32{0, 0, 10, 0, 10, 10}
	v, err := b.Add(l, TriangleFan, coords)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if v.Count() != 3 {
		t.Errorf("Count() = %d, want 3", v.Count())
	}
	if v.Layer() != l {
		t.Error("Layer() did not return the submitted layer")
	}
	if v.Topology() != TriangleFan {
		t.Errorf("Topology() = %v, want TriangleFan", v.Topology())
	}

	// The batch keeps its own copy.
	coords[0] = 99
	if v.Coords()[0] != 0 {
		t.Errorf("Coords()[0] = %v after caller mutation, want 0", v.Coords()[0])
	}
}

func TestBatchAddErrors(t *testing.T) {
	b := New()

	if _, err := b.Add(nil, Points, []float32{1, 2}); !errors.Is(err, ErrNilLayer) {
		t.Errorf("Add(nil layer) error = %v, want ErrNilLayer", err)
	}
	if _, err := b.Add(NewLayer(1, State{}), Points, []float32{1, 2, 3}); !errors.Is(err, ErrOddCoordinates) {
		t.Errorf("Add(odd coords) error = %v, want ErrOddCoordinates", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d after failed adds, want 0", b.Len())
	}
	if len(b.Layers()) != 0 {
		t.Errorf("Layers() = %d after failed adds, want 0", len(b.Layers()))
	}
}

func TestBatchLayersDistinct(t *testing.T) {
	var b Batch
	fill := NewLayer(1, DefaultState())
	stroke := NewLayer(2, DefaultState())

	mustAdd(t, &b, fill, TriangleFan, []float32{0, 0, 1, 0, 1, 1})
	mustAdd(t, &b, fill, LineLoop, []float32{0, 0, 1, 0, 1, 1})
	mustAdd(t, &b, stroke, LineLoop, []float32{0, 0, 1, 0, 1, 1})

	layers := b.Layers()
	if len(layers) != 2 {
		t.Fatalf("Layers() len = %d, want 2", len(layers))
	}
	if layers[0] != fill || layers[1] != stroke {
		t.Error("Layers() not in first-use order")
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestTopOrder(t *testing.T) {
	tests := []struct {
		name   string
		layers []*Layer
		base   int
		want   int
	}{
		{name: "empty", base: 0, want: 0},
		{name: "empty custom base", base: 7, want: 7},
		{
			name:   "only unordered",
			layers: []*Layer{NewUnorderedLayer(State{}), NewUnorderedLayer(State{})},
			want:   0,
		},
		{
			name:   "max of ordered",
			layers: []*Layer{NewLayer(3, State{}), NewLayer(9, State{}), NewLayer(4, State{})},
			want:   9,
		},
		{
			name:   "unordered ignored",
			layers: []*Layer{NewUnorderedLayer(State{}), NewLayer(2, State{})},
			want:   2,
		},
		{
			name:   "negative keys beat base",
			layers: []*Layer{NewLayer(-5, State{})},
			base:   0,
			want:   -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			for _, l := range tt.layers {
				mustAdd(t, b, l, Points, []float32{0, 0})
			}
			if got := b.TopOrder(tt.base); got != tt.want {
				t.Errorf("TopOrder(%d) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestStateBuilders(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	s := DefaultState().WithColor(c).WithWidth(3).WithQuality(QualityNicest)

	if !s.AntiAlias {
		t.Error("DefaultState should be anti-aliased")
	}
	if !s.HasColor || s.Color != c {
		t.Errorf("Color = %v (has=%v), want %v", s.Color, s.HasColor, c)
	}
	if s.Width != 3 {
		t.Errorf("Width = %v, want 3", s.Width)
	}
	if s.Quality != QualityNicest {
		t.Errorf("Quality = %v, want Nicest", s.Quality)
	}

	g := s.GPUColor()
	if g.A != 1 || g.R != 10.0/255 {
		t.Errorf("GPUColor() = %+v", g)
	}
	if got := (State{}).GPUColor(); got.A != 1 || got.R != 0 {
		t.Errorf("GPUColor() without color = %+v, want opaque black", got)
	}
}

func mustAdd(t *testing.T, b *Batch, l *Layer, topo Topology, coords []float32) *VertexList {
	t.Helper()
	v, err := b.Add(l, topo, coords)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return v
}
