// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import "github.com/gogpu/prim/batch"

// DefaultStrokeWidth is the stroke width used when none is given.
const DefaultStrokeWidth = 1.0

// Option configures a shape call.
//
// Example:
//
//	b, err := prim.Circle(prim.Pt(100, 100), 40,
//	    prim.WithFill("aquamarine"),
//	    prim.WithStroke(0x8a2be2ff),
//	    prim.WithStrokeWidth(3),
//	)
//
// Options are plain values, so a style can be saved and reused:
//
//	style := []prim.Option{prim.WithFill("rosy_brown"), prim.WithStrokeWidth(3)}
//	b, err = prim.Pie(center, 30, span, append(style, prim.WithBatch(b))...)
type Option func(*options)

// colorState distinguishes an omitted color from an explicitly disabled one.
type colorState uint8

const (
	colorUnset colorState = iota
	colorDisabled
	colorSet
)

// colorSetting is a tri-state color option.
type colorSetting struct {
	state colorState
	value any
}

// options holds the configuration of one shape call.
type options struct {
	batch       *batch.Batch
	fill        colorSetting
	stroke      colorSetting
	strokeWidth float64
	quality     batch.Quality
}

func defaultOptions() options {
	return options{
		strokeWidth: DefaultStrokeWidth,
		quality:     batch.QualityDontCare,
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// target returns the batch the shape is added to, creating it on first use.
func (o *options) target() *batch.Batch {
	if o.batch == nil {
		o.batch = batch.New()
	}
	return o.batch
}

// WithBatch adds the shape to b instead of a new batch.
// A nil b is the same as omitting the option.
func WithBatch(b *batch.Batch) Option {
	return func(o *options) {
		o.batch = b
	}
}

// WithFill sets the fill color. c may be any value ParseColor accepts.
// A nil c disables the fill, like NoFill.
func WithFill(c any) Option {
	return func(o *options) {
		o.fill = newColorSetting(c)
	}
}

// NoFill draws the shape without a fill.
func NoFill() Option {
	return func(o *options) {
		o.fill = colorSetting{state: colorDisabled}
	}
}

// WithStroke sets the stroke color. c may be any value ParseColor accepts.
// A nil c disables the stroke, like NoStroke.
func WithStroke(c any) Option {
	return func(o *options) {
		o.stroke = newColorSetting(c)
	}
}

// NoStroke draws the shape without a stroke.
func NoStroke() Option {
	return func(o *options) {
		o.stroke = colorSetting{state: colorDisabled}
	}
}

// WithStrokeWidth sets the stroke width. It also sets how finely curves
// are tessellated: wider strokes hide facets, so they need fewer segments.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		o.strokeWidth = w
	}
}

// WithQuality sets the anti-aliasing quality hint of the shape's layers.
func WithQuality(q batch.Quality) Option {
	return func(o *options) {
		o.quality = q
	}
}

func newColorSetting(c any) colorSetting {
	if c == nil {
		return colorSetting{state: colorDisabled}
	}
	return colorSetting{state: colorSet, value: c}
}
