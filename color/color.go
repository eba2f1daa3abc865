/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color normalizes raw design-export color values into canonical hex.
//
// A raw value is first classified into exactly one of three variants:
//
//   - [Literal]: a string, passed through untouched
//   - [Channels]: an {r,g,b} object with channels nominally in [0,1]
//   - [Unrecognized]: anything else; the caller drops the token
//
// [Normalize] switches over the variants exhaustively.
package color

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Value is a classified raw color value. The interface is sealed; the only
// implementations are Literal, Channels and Unrecognized.
type Value interface {
	isValue()
}

// Literal is a string value, assumed to be pre-formatted hex.
type Literal struct {
	Text string
}

// Channels is a floating-point RGB triple.
type Channels struct {
	R, G, B float64
}

// Unrecognized is any value shape the normalizer does not model.
type Unrecognized struct {
	Raw any
}

func (Literal) isValue()      {}
func (Channels) isValue()     {}
func (Unrecognized) isValue() {}

// Options configures normalization.
type Options struct {
	// Clamp restricts channels to [0,1] before conversion. Off by default:
	// out-of-range channels then produce whatever digits the rounding yields.
	Clamp bool
}

// Classify inspects a decoded JSON or YAML value and returns its variant.
// An object is Channels only when r, g and b are all finite numbers.
func Classify(raw any) Value {
	switch v := raw.(type) {
	case string:
		return Literal{Text: v}
	case map[string]any:
		r, okR := number(v["r"])
		if !okR {
			return Unrecognized{Raw: raw}
		}
		g, okG := number(v["g"])
		b, okB := number(v["b"])
		if !okG || !okB {
			return Unrecognized{Raw: raw}
		}
		return Channels{R: r, G: g, B: b}
	default:
		return Unrecognized{Raw: raw}
	}
}

// Normalize returns the canonical hex for v. The boolean is false for
// Unrecognized values.
func Normalize(v Value, opts Options) (string, bool) {
	switch c := v.(type) {
	case Literal:
		return c.Text, true
	case Channels:
		return c.Hex(opts.Clamp), true
	case Unrecognized:
		return "", false
	default:
		return "", false
	}
}

// FromRaw classifies and normalizes in one step.
func FromRaw(raw any, opts Options) (string, bool) {
	return Normalize(Classify(raw), opts)
}

// Hex converts the channels to an uppercase #RRGGBB string.
// Each channel is scaled by 255 and rounded half up.
func (c Channels) Hex(clamp bool) string {
	if clamp {
		return strings.ToUpper(colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex())
	}
	var sb strings.Builder
	sb.WriteByte('#')
	sb.WriteString(channelHex(c.R))
	sb.WriteString(channelHex(c.G))
	sb.WriteString(channelHex(c.B))
	return strings.ToUpper(sb.String())
}

// channelHex renders one unclamped channel as at least two hex digits.
func channelHex(x float64) string {
	n := int64(math.Floor(x*255 + 0.5))
	s := strconv.FormatInt(n, 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// number accepts the numeric types produced by encoding/json and yaml.v3.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
