// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package prim

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"reflect"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColorFormat is returned when a value cannot be read as a color.
var ErrInvalidColorFormat = errors.New("prim: invalid color format")

// Color is a non-premultiplied color with 8-bit red, green, blue and alpha
// channels.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{}
)

// Packed color channel masks for the 0xRRGGBBAA layout.
const (
	redMask   = 0xff000000
	greenMask = 0x00ff0000
	blueMask  = 0x0000ff00
	alphaMask = 0x000000ff
)

// Hex returns the color packed as 0xRRGGBBAA.
//
// The alpha byte is never implied: 0x0000ff is a fully transparent blue,
// not an opaque one.
func Hex(packed uint32) Color {
	return Color{
		R: uint8((packed & redMask) >> 24),
		G: uint8((packed & greenMask) >> 16),
		B: uint8((packed & blueMask) >> 8),
		A: uint8(packed & alphaMask),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as a standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// Packed returns c as 0xRRGGBBAA.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String returns c as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", c.Packed())
}

// ParseColor converts any supported color representation to a Color:
//
//   - an integer of any kind in [0, 0xFFFFFFFF], read as 0xRRGGBBAA
//   - a slice or array of 1 to 4 numbers: (grey), (grey, alpha),
//     (r, g, b) or (r, g, b, a); int, uint8 and float64 elements, or
//     []any of numbers
//   - a color name such as "dark_orange" or "DarkOrange"
//   - a Color or any color.Color
//
// Channel values are not clamped. Any other input returns an error
// wrapping ErrInvalidColorFormat.
func ParseColor(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case int:
		return fromSigned(int64(c))
	case int32:
		return fromSigned(int64(c))
	case int64:
		return fromSigned(c)
	case uint:
		return fromUnsigned(uint64(c))
	case uint32:
		return Hex(c), nil
	case uint64:
		return fromUnsigned(c)
	case []int:
		return fromTuple(c)
	case []uint8:
		return fromTuple(c)
	case []float64:
		return fromTuple(c)
	case []any:
		vals := make([]float64, len(c))
		for i, e := range c {
			f, ok := number(e)
			if !ok {
				return Color{}, fmt.Errorf("%w: channel %d is %T", ErrInvalidColorFormat, i, e)
			}
			vals[i] = f
		}
		return fromTuple(vals)
	case string:
		if named, ok := Named(c); ok {
			return named, nil
		}
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColorFormat, c)
	case color.Color:
		return Color(color.NRGBAModel.Convert(c).(color.NRGBA)), nil
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Array {
			return fromArray(rv)
		}
		return Color{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidColorFormat, v)
	}
}

func fromSigned(v int64) (Color, error) {
	if v < 0 {
		return Color{}, fmt.Errorf("%w: negative packed color %d", ErrInvalidColorFormat, v)
	}
	return fromUnsigned(uint64(v))
}

func fromUnsigned(v uint64) (Color, error) {
	if v > math.MaxUint32 {
		return Color{}, fmt.Errorf("%w: packed color %#x exceeds 32 bits", ErrInvalidColorFormat, v)
	}
	return Hex(uint32(v)), nil
}

// fromArray reads a fixed-size array such as [3]int or [4]uint8.
func fromArray(rv reflect.Value) (Color, error) {
	vals := make([]float64, rv.Len())
	for i := range vals {
		e := rv.Index(i)
		switch e.Kind() {
		case reflect.Int:
			vals[i] = float64(e.Int())
		case reflect.Uint8:
			vals[i] = float64(e.Uint())
		case reflect.Float64:
			vals[i] = e.Float()
		default:
			return Color{}, fmt.Errorf("%w: unsupported type %s", ErrInvalidColorFormat, rv.Type())
		}
	}
	return fromTuple(vals)
}

// fromTuple expands a 1 to 4 element channel tuple.
func fromTuple[T int | uint8 | float64](t []T) (Color, error) {
	switch len(t) {
	case 1:
		g := uint8(t[0])
		return Color{g, g, g, 255}, nil
	case 2:
		g := uint8(t[0])
		return Color{g, g, g, uint8(t[1])}, nil
	case 3:
		return Color{uint8(t[0]), uint8(t[1]), uint8(t[2]), 255}, nil
	case 4:
		return Color{uint8(t[0]), uint8(t[1]), uint8(t[2]), uint8(t[3])}, nil
	default:
		return Color{}, fmt.Errorf("%w: tuple of length %d", ErrInvalidColorFormat, len(t))
	}
}

// number reads a numeric scalar as decoded from YAML or JSON.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Named looks up an SVG 1.1 color name. Matching ignores case, spaces,
// hyphens and underscores, so "Dark Orange", "dark_orange" and
// "darkorange" are the same color.
func Named(name string) (Color, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, cases.Fold().String(name))

	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}
	return Color{c.R, c.G, c.B, c.A}, true
}
