// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package batch is a retained, layered vertex batch.
//
// A Batch accumulates vertex lists. Every list is tagged with a primitive
// [Topology] and drawn under a [Layer], which carries an ordering key and
// the render [State] (anti-aliasing, blending, color, line/point width)
// shared by the lists submitted under it.
//
// # Ordering
//
// Layers created with [NewLayer] participate in explicit ordering: higher
// keys draw later, on top. Layers created with [NewUnorderedLayer] are
// background content; they draw before every ordered layer, in submission
// order, and are ignored by [Batch.TopOrder].
//
// # Replay
//
// [Batch.Draw] replays the batch to a [Renderer]. The renderer is told
// about every state change through Begin/End pairs, and End is always
// called, even when drawing a list fails.
//
//	b := batch.New()
//	fill := batch.NewLayer(1, batch.DefaultState().WithColor(white))
//	_, _ = b.Add(fill, batch.TriangleFan, coords)
//	err := b.Draw(renderer)
//
// # GPU lowering
//
// WebGPU has no fan or loop topologies. [VertexList.Mesh] expands lists
// into triangle lists and closed line strips described with gputypes, and
// [VertexLayout] describes the float32x2 vertex buffer they use.
//
// A Batch is not safe for concurrent use.
package batch
