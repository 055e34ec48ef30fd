// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import (
	"fmt"

	"github.com/gogpu/prim/batch"
)

// role selects which part of a shape a style layer paints.
type role uint8

const (
	roleFill role = iota
	roleStroke
)

func (r role) String() string {
	if r == roleFill {
		return "fill"
	}
	return "stroke"
}

// styleLayer is the resolved style of one role of a shape.
type styleLayer struct {
	role     role
	order    int
	color    Color
	width    float64
	quality  batch.Quality
	disabled bool
}

// newStyleLayer resolves the role's color from o, falling back to white
// for fills and black for strokes when no color was given.
func newStyleLayer(o options, r role, order int) (styleLayer, error) {
	s := styleLayer{role: r, order: order, width: o.strokeWidth, quality: o.quality}

	setting, fallback := o.fill, White
	if r == roleStroke {
		setting, fallback = o.stroke, Black
	}

	switch setting.state {
	case colorDisabled:
		s.disabled = true
	case colorUnset:
		s.color = fallback
	default:
		c, err := ParseColor(setting.value)
		if err != nil {
			Logger().Warn("prim: rejected color", "role", r, "value", setting.value, "err", err)
			return styleLayer{}, fmt.Errorf("%s color: %w", r, err)
		}
		s.color = c
	}
	return s, nil
}

// Disabled reports whether the role was explicitly switched off.
// A disabled layer submits nothing.
func (s styleLayer) Disabled() bool {
	return s.disabled
}

// layer builds the batch layer the role's vertex lists draw under.
// Fills keep the renderer's default width; strokes use the stroke width
// for both lines and corner points.
func (s styleLayer) layer() *batch.Layer {
	state := batch.DefaultState().
		WithColor(s.color.NRGBA()).
		WithQuality(s.quality)
	if s.role == roleStroke {
		state = state.WithWidth(s.width)
	}
	return batch.NewLayer(s.order, state)
}

// styleLayers allocates ordering keys in b and resolves both roles.
// Colors are resolved before anything is submitted, so a bad color leaves
// the batch untouched.
func styleLayers(b *batch.Batch, o options) (fill, stroke styleLayer, err error) {
	fillKey, strokeKey := AllocateOrder(b)
	if fill, err = newStyleLayer(o, roleFill, fillKey); err != nil {
		return styleLayer{}, styleLayer{}, err
	}
	if stroke, err = newStyleLayer(o, roleStroke, strokeKey); err != nil {
		return styleLayer{}, styleLayer{}, err
	}
	return fill, stroke, nil
}
