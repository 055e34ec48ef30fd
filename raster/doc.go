// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster replays batches onto a gg drawing context.
//
// Usage:
//
//	dc := gg.NewContext(640, 480)
//	dc.ClearWithColor(gg.White)
//	if err := b.Draw(raster.New(dc)); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("out.png")
//
// Triangle fans are filled, line loops and lines are stroked with butt
// caps and bevel joins, and points become discs whose diameter is the
// layer width. Vertex corners are left to the point lists the shapes
// submit, as they would be on a GPU.
//
// gg always anti-aliases and composites source-over, so a layer's
// AntiAlias and Blend fields only matter to GPU pipelines. The quality
// hint selects the rasterizer mode instead.
package raster
