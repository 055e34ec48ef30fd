// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/prim/batch"
)

var (
	// ErrNotBegun is returned by DrawList outside a Begin/End pair.
	ErrNotBegun = errors.New("raster: draw outside Begin/End")

	// ErrNested is returned by Begin when a layer is already open.
	ErrNested = errors.New("raster: nested Begin")
)

// defaultWidth is the line width and point size for layers without one.
const defaultWidth = 1.0

// Renderer draws batch replays onto a *gg.Context.
// It implements batch.Renderer.
type Renderer struct {
	dc *gg.Context

	open  bool
	width float64

	// Context settings saved by Begin and restored by End.
	savedStroke gg.Stroke
	savedBrush  gg.Brush
	savedMode   gg.RasterizerMode
}

var _ batch.Renderer = (*Renderer)(nil)

// New returns a Renderer drawing onto dc.
func New(dc *gg.Context) *Renderer {
	return &Renderer{dc: dc}
}

// Begin applies s to the context.
func (r *Renderer) Begin(s batch.State) error {
	if r.open {
		return ErrNested
	}

	r.savedStroke = r.dc.GetStroke()
	r.savedBrush = r.dc.FillBrush()
	r.savedMode = r.dc.RasterizerMode()
	r.dc.Push()
	r.open = true

	r.width = s.Width
	if r.width <= 0 {
		r.width = defaultWidth
	}
	if s.HasColor {
		r.dc.SetColor(s.Color)
	}
	r.dc.SetStroke(gg.DefaultStroke().
		WithWidth(r.width).
		WithCap(gg.LineCapButt).
		WithJoin(gg.LineJoinBevel))
	r.dc.SetRasterizerMode(rasterizerMode(s.Quality))
	return nil
}

// End restores the context settings Begin changed.
func (r *Renderer) End() {
	if !r.open {
		return
	}
	r.dc.ClearPath()
	r.dc.Pop()
	r.dc.SetStroke(r.savedStroke)
	r.dc.SetFillBrush(r.savedBrush)
	r.dc.SetRasterizerMode(r.savedMode)
	r.open = false
}

// DrawList draws one vertex list with the current layer state.
func (r *Renderer) DrawList(t batch.Topology, coords []float32) error {
	if !r.open {
		return ErrNotBegun
	}
	n := len(coords) / 2

	var err error
	switch t {
	case batch.TriangleFan:
		if n < 3 {
			return nil
		}
		r.closedPath(coords)
		err = r.dc.Fill()
	case batch.LineLoop:
		if n < 2 {
			return nil
		}
		r.closedPath(coords)
		err = r.dc.Stroke()
	case batch.Lines:
		if n < 2 {
			return nil
		}
		for i := 0; i+1 < n; i += 2 {
			r.dc.MoveTo(float64(coords[2*i]), float64(coords[2*i+1]))
			r.dc.LineTo(float64(coords[2*i+2]), float64(coords[2*i+3]))
		}
		err = r.dc.Stroke()
	case batch.Points:
		if n == 0 {
			return nil
		}
		for i := range n {
			r.dc.DrawCircle(float64(coords[2*i]), float64(coords[2*i+1]), r.width/2)
		}
		err = r.dc.Fill()
	default:
		return fmt.Errorf("raster: unsupported topology %v", t)
	}

	if err != nil {
		return fmt.Errorf("raster: %s: %w", t, err)
	}
	return nil
}

// closedPath traces the vertices as one closed subpath.
func (r *Renderer) closedPath(coords []float32) {
	r.dc.MoveTo(float64(coords[0]), float64(coords[1]))
	for i := 2; i+1 < len(coords); i += 2 {
		r.dc.LineTo(float64(coords[i]), float64(coords[i+1]))
	}
	r.dc.ClosePath()
}

// rasterizerMode maps a quality hint onto gg's rasterizer selection.
func rasterizerMode(q batch.Quality) gg.RasterizerMode {
	switch q {
	case batch.QualityFastest:
		return gg.RasterizerAnalytic
	case batch.QualityNicest:
		return gg.RasterizerSDF
	default:
		return gg.RasterizerAuto
	}
}
