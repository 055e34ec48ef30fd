// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package batch

import (
	"image/color"

	"github.com/gogpu/gputypes"
)

// Quality is the anti-aliasing quality hint a layer requests.
type Quality uint8

const (
	// QualityDontCare lets the renderer choose.
	QualityDontCare Quality = iota
	// QualityFastest prefers speed over smoothness.
	QualityFastest
	// QualityNicest prefers smoothness over speed.
	QualityNicest
)

// String returns the quality hint name.
func (q Quality) String() string {
	switch q {
	case QualityDontCare:
		return "DontCare"
	case QualityFastest:
		return "Fastest"
	case QualityNicest:
		return "Nicest"
	default:
		return "Unknown"
	}
}

// antiAliasSamples is the sample count requested from GPU pipelines for
// anti-aliased layers.
const antiAliasSamples = 4

// State is the render state a layer applies while its vertex lists draw.
//
// The zero value draws without blending, anti-aliasing or color change.
// Use DefaultState for alpha-blended, anti-aliased drawing.
type State struct {
	// AntiAlias enables smoothing of points, lines and polygon edges.
	// GPU pipelines read it through Multisample. The gg raster renderer
	// always anti-aliases and ignores it.
	AntiAlias bool

	// Quality is the smoothing hint used when AntiAlias is set.
	Quality Quality

	// Blend is the color blend equation for GPU pipelines, read through
	// ColorTarget. The gg raster renderer always composites source-over.
	Blend gputypes.BlendState

	// Color is the draw color. It is only applied when HasColor is set;
	// otherwise the renderer keeps whatever color is current.
	Color    color.NRGBA
	HasColor bool

	// Width is the line width and point size. Zero selects the renderer's
	// default of one unit.
	Width float64
}

// DefaultState returns an anti-aliased, alpha-blended state with no color
// and no width.
func DefaultState() State {
	return State{
		AntiAlias: true,
		Quality:   QualityDontCare,
		Blend:     gputypes.BlendStateAlpha(),
	}
}

// WithColor returns a copy of s drawing in c.
func (s State) WithColor(c color.NRGBA) State {
	s.Color = c
	s.HasColor = true
	return s
}

// WithWidth returns a copy of s with line width and point size w.
func (s State) WithWidth(w float64) State {
	s.Width = w
	return s
}

// WithQuality returns a copy of s with the quality hint q.
func (s State) WithQuality(q Quality) State {
	s.Quality = q
	return s
}

// GPUColor returns the state color as normalized gputypes components.
// A state without a color yields opaque black.
func (s State) GPUColor() gputypes.Color {
	if !s.HasColor {
		return gputypes.Color{A: 1}
	}
	return gputypes.Color{
		R: float64(s.Color.R) / 255,
		G: float64(s.Color.G) / 255,
		B: float64(s.Color.B) / 255,
		A: float64(s.Color.A) / 255,
	}
}

// ColorTarget returns the pipeline color target for drawing this state
// into a texture of the given format.
func (s State) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	blend := s.Blend
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// Multisample returns the pipeline multisample state for this state.
func (s State) Multisample() gputypes.MultisampleState {
	if !s.AntiAlias {
		return gputypes.DefaultMultisampleState()
	}
	return gputypes.MultisampleState{
		Count: antiAliasSamples,
		Mask:  ^uint64(0),
	}
}

// Layer groups vertex lists that share an ordering key and render state.
// A layer belongs to the shape call that created it and is handed to the
// batch with the first list added under it.
type Layer struct {
	order   int
	ordered bool

	// State is applied while the layer's lists draw.
	State State
}

// NewLayer creates a layer that draws at ordering key order.
func NewLayer(order int, s State) *Layer {
	return &Layer{order: order, ordered: true, State: s}
}

// NewUnorderedLayer creates a background layer that takes no part in
// explicit ordering.
func NewUnorderedLayer(s State) *Layer {
	return &Layer{State: s}
}

// Order returns the layer's ordering key and whether it has one.
func (l *Layer) Order() (int, bool) {
	return l.order, l.ordered
}
