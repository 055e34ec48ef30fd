// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import "github.com/gogpu/prim/batch"

// AllocateOrder returns fresh fill and stroke ordering keys for a new shape
// in b: one and two above the highest ordered layer already in the batch.
// The new fill therefore paints over everything before it and under its
// own stroke. An empty batch yields (1, 2).
//
// Keys are derived from the batch each call, so shape calls need no shared
// counter.
func AllocateOrder(b *batch.Batch) (fill, stroke int) {
	top := b.TopOrder(0)
	return top + 1, top + 2
}
