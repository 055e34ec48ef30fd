// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"cmp"
	"fmt"
	"slices"
)

// Renderer consumes a batch replay.
//
// Begin applies a layer's state; End restores whatever Begin changed.
// Draw calls DrawList only between Begin and End, and calls End exactly
// once for every Begin that returned nil.
type Renderer interface {
	Begin(s State) error
	DrawList(t Topology, coords []float32) error
	End()
}

// Draw replays every vertex list to r in paint order: unordered layers
// first, then ordered layers by ascending key. Lists under the same key
// keep their submission order.
func (b *Batch) Draw(r Renderer) error {
	lists := b.paintOrder()
	log := Logger()

	for i := 0; i < len(lists); {
		j := i + 1
		for j < len(lists) && lists[j].layer == lists[i].layer {
			j++
		}
		if err := drawRun(r, lists[i].layer, lists[i:j]); err != nil {
			return err
		}
		i = j
	}

	log.Debug("batch: drawn", "lists", len(lists), "layers", len(b.layers))
	return nil
}

// drawRun draws a run of lists that share layer l.
func drawRun(r Renderer, l *Layer, run []*VertexList) error {
	if err := r.Begin(l.State); err != nil {
		return fmt.Errorf("batch: begin layer: %w", err)
	}
	defer r.End()

	for _, v := range run {
		if err := r.DrawList(v.topology, v.coords); err != nil {
			return fmt.Errorf("batch: draw %s list: %w", v.topology, err)
		}
	}
	return nil
}

// paintOrder returns the lists stably sorted into paint order.
func (b *Batch) paintOrder() []*VertexList {
	lists := b.Lists()
	slices.SortStableFunc(lists, func(x, y *VertexList) int {
		xo, xok := x.layer.Order()
		yo, yok := y.layer.Order()
		switch {
		case xok != yok:
			if xok {
				return 1
			}
			return -1
		case !xok:
			return 0
		}
		return cmp.Compare(xo, yo)
	})
	return lists
}
