/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"bennypowers.dev/figtokens/color"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  color.Value
	}{
		{
			name:  "string literal",
			input: "#ABCDEF",
			want:  color.Literal{Text: "#ABCDEF"},
		},
		{
			name:  "channel object",
			input: map[string]any{"r": 1.0, "g": 0.0, "b": 0.5},
			want:  color.Channels{R: 1, G: 0, B: 0.5},
		},
		{
			name:  "yaml integer channels",
			input: map[string]any{"r": 1, "g": 0, "b": 0},
			want:  color.Channels{R: 1, G: 0, B: 0},
		},
		{
			name:  "json.Number channels",
			input: map[string]any{"r": json.Number("0.5"), "g": json.Number("0"), "b": json.Number("1")},
			want:  color.Channels{R: 0.5, G: 0, B: 1},
		},
		{
			name:  "channel object with extra alpha",
			input: map[string]any{"r": 0.0, "g": 0.0, "b": 0.0, "a": 0.5},
			want:  color.Channels{},
		},
		{
			name:  "nil",
			input: nil,
			want:  color.Unrecognized{},
		},
		{
			name:  "number",
			input: 42.0,
			want:  color.Unrecognized{Raw: 42.0},
		},
		{
			name:  "bool",
			input: true,
			want:  color.Unrecognized{Raw: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := color.Classify(tt.input)
			switch want := tt.want.(type) {
			case color.Unrecognized:
				if _, ok := got.(color.Unrecognized); !ok {
					t.Errorf("Classify(%v) = %#v, want Unrecognized", tt.input, got)
				}
			default:
				if got != want {
					t.Errorf("Classify(%v) = %#v, want %#v", tt.input, got, want)
				}
			}
		})
	}
}

func TestClassify_ObjectsWithoutChannels(t *testing.T) {
	inputs := map[string]any{
		"missing r":     map[string]any{"g": 0.5, "b": 0.5},
		"string r":      map[string]any{"r": "1", "g": 0.5, "b": 0.5},
		"missing g":     map[string]any{"r": 0.5, "b": 0.5},
		"missing b":     map[string]any{"r": 0.5, "g": 0.5},
		"NaN channel":   map[string]any{"r": math.NaN(), "g": 0.5, "b": 0.5},
		"empty object":  map[string]any{},
		"list of three": []any{1.0, 0.0, 0.0},
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, ok := color.Classify(input).(color.Unrecognized); !ok {
				t.Errorf("expected Unrecognized for %v", input)
			}
			if hex, ok := color.FromRaw(input, color.Options{}); ok {
				t.Errorf("FromRaw(%v) = %q, want no value", input, hex)
			}
		})
	}
}

func TestNormalize_Channels(t *testing.T) {
	tests := []struct {
		name     string
		channels color.Channels
		expected string
	}{
		{name: "red", channels: color.Channels{R: 1, G: 0, B: 0}, expected: "#FF0000"},
		{name: "black", channels: color.Channels{R: 0, G: 0, B: 0}, expected: "#000000"},
		{name: "white", channels: color.Channels{R: 1, G: 1, B: 1}, expected: "#FFFFFF"},
		{
			name:     "mid gray",
			channels: color.Channels{R: 0.5019607843137255, G: 0.5019607843137255, B: 0.5019607843137255},
			expected: "#808080",
		},
		{name: "0.6 rounds to 153", channels: color.Channels{R: 0.6, G: 0.6, B: 0.6}, expected: "#999999"},
		{name: "half rounds up", channels: color.Channels{R: 0.5, G: 0, B: 0}, expected: "#800000"},
		{name: "small values pad", channels: color.Channels{R: 1.0 / 255, G: 0, B: 15.0 / 255}, expected: "#01000F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := color.Normalize(tt.channels, color.Options{})
			if !ok {
				t.Fatal("expected a value")
			}
			if got != tt.expected {
				t.Errorf("Normalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalize_LiteralPassthrough(t *testing.T) {
	for _, in := range []string{"#ABCDEF", "#abcdef", "rgb(1, 2, 3)", ""} {
		got, ok := color.Normalize(color.Literal{Text: in}, color.Options{})
		if !ok {
			t.Errorf("Normalize(%q) reported no value", in)
		}
		if got != in {
			t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestNormalize_Unrecognized(t *testing.T) {
	if got, ok := color.Normalize(color.Unrecognized{Raw: 1}, color.Options{}); ok {
		t.Errorf("Normalize(Unrecognized) = %q, want no value", got)
	}
}

func TestNormalize_OutOfRange(t *testing.T) {
	over := color.Channels{R: 1.2, G: 0, B: 0}
	under := color.Channels{R: 0, G: -0.1, B: 0}

	t.Run("unclamped keeps raw digits", func(t *testing.T) {
		got, _ := color.Normalize(over, color.Options{})
		if got != "#1320000" {
			t.Errorf("got %q, want %q", got, "#1320000")
		}
		got, _ = color.Normalize(under, color.Options{})
		if !strings.HasPrefix(got, "#00-1") {
			t.Errorf("got %q, want negative digits", got)
		}
	})

	t.Run("clamped", func(t *testing.T) {
		got, _ := color.Normalize(over, color.Options{Clamp: true})
		if got != "#FF0000" {
			t.Errorf("got %q, want %q", got, "#FF0000")
		}
		got, _ = color.Normalize(under, color.Options{Clamp: true})
		if got != "#000000" {
			t.Errorf("got %q, want %q", got, "#000000")
		}
	})

	t.Run("clamp agrees in range", func(t *testing.T) {
		in := color.Channels{R: 0.6, G: 0.5019607843137255, B: 1}
		a, _ := color.Normalize(in, color.Options{})
		b, _ := color.Normalize(in, color.Options{Clamp: true})
		if a != b {
			t.Errorf("clamped %q != unclamped %q for in-range input", b, a)
		}
	})
}

func TestIsCSSColor(t *testing.T) {
	if !color.IsCSSColor("#FF6B36") {
		t.Error("expected hex to parse")
	}
	if !color.IsCSSColor("rebeccapurple") {
		t.Error("expected named color to parse")
	}
	if color.IsCSSColor("not a color") {
		t.Error("expected garbage to fail")
	}
}

func TestCSSHex(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"#FF0000", "#ff0000", true},
		{"rebeccapurple", "#663399", true},
		{"rgb(0 128 0)", "#008000", true},
		{"nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := color.CSSHex(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CSSHex(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
