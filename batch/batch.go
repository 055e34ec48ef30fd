// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"errors"
	"fmt"
)

// ErrOddCoordinates is returned by Add when a flat coordinate buffer does
// not hold whole (x, y) pairs.
var ErrOddCoordinates = errors.New("batch: odd number of coordinates")

// ErrNilLayer is returned by Add when no layer is given.
var ErrNilLayer = errors.New("batch: nil layer")

// VertexList is a run of 2D vertices drawn with one topology under one
// layer. Its lifetime is tied to the batch that owns it.
type VertexList struct {
	topology Topology
	coords   []float32
	layer    *Layer
}

// Topology returns the list's primitive topology.
func (v *VertexList) Topology() Topology { return v.topology }

// Coords returns the flat coordinate buffer [x0, y0, x1, y1, ...].
// The slice is owned by the list and must not be modified.
func (v *VertexList) Coords() []float32 { return v.coords }

// Count returns the number of vertices.
func (v *VertexList) Count() int { return len(v.coords) / 2 }

// Layer returns the layer the list draws under.
func (v *VertexList) Layer() *Layer { return v.layer }

// Batch is an ordered, mutable collection of vertex lists.
// The zero value is an empty batch ready for use.
type Batch struct {
	lists  []*VertexList
	layers []*Layer
	seen   map[*Layer]struct{}
}

// New returns an empty batch.
func New() *Batch {
	return &Batch{}
}

// Add submits a vertex list drawn with topology t under layer l.
// coords is copied; it holds Count*2 values laid out as x, y pairs.
func (b *Batch) Add(l *Layer, t Topology, coords []float32) (*VertexList, error) {
	if l == nil {
		return nil, ErrNilLayer
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddCoordinates, len(coords))
	}

	if b.seen == nil {
		b.seen = make(map[*Layer]struct{})
	}
	if _, ok := b.seen[l]; !ok {
		b.seen[l] = struct{}{}
		b.layers = append(b.layers, l)
	}

	v := &VertexList{
		topology: t,
		coords:   append([]float32(nil), coords...),
		layer:    l,
	}
	b.lists = append(b.lists, v)
	return v, nil
}

// Layers returns the distinct layers in the batch, in the order they were
// first used.
func (b *Batch) Layers() []*Layer {
	return append([]*Layer(nil), b.layers...)
}

// Lists returns the vertex lists in submission order.
func (b *Batch) Lists() []*VertexList {
	return append([]*VertexList(nil), b.lists...)
}

// Len returns the number of vertex lists in the batch.
func (b *Batch) Len() int {
	return len(b.lists)
}

// TopOrder returns the highest ordering key among the batch's ordered
// layers, or base if it has none. Unordered layers are ignored.
func (b *Batch) TopOrder(base int) int {
	top, found := 0, false
	for _, l := range b.layers {
		order, ok := l.Order()
		if !ok {
			continue
		}
		if !found || order > top {
			top, found = order, true
		}
	}
	if !found {
		return base
	}
	return top
}
