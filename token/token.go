/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the canonical color token types emitted by the pipeline.
package token

import (
	"strings"
)

// DefaultPrefix is prepended to every CSS variable name.
const DefaultPrefix = "--color-"

// Source identifies which part of the export a token came from.
type Source int

const (
	// SourceCollection is a variable inside a named collection.
	SourceCollection Source = iota

	// SourceStyle is a standalone style.
	SourceStyle
)

// String returns the string representation of the source.
func (s Source) String() string {
	switch s {
	case SourceCollection:
		return "collection"
	case SourceStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Token is a canonical color entry.
type Token struct {
	// Name is the CSS variable name (e.g., "--color-gray-500").
	Name string `json:"name"`

	// Hex is the canonical color value.
	Hex string `json:"hex"`

	// Symbol is the export's underscore-delimited identifier (e.g., "gray_500").
	Symbol string `json:"-"`

	// Path is the export's slash-delimited human name (e.g., "Gray/500").
	Path string `json:"-"`

	// Source records the provenance of the winning value.
	Source Source `json:"-"`

	// Collection is the collection name for SourceCollection tokens.
	Collection string `json:"-"`
}

// CSSVariableName derives a CSS custom property name from an export symbol.
// e.g., "gray_500" with prefix "--color-" -> "--color-gray-500"
func CSSVariableName(symbol, prefix string) string {
	return prefix + strings.ReplaceAll(symbol, "_", "-")
}
