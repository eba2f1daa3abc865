/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export models the design-tool color export the pipeline consumes.
//
// The export is third-party and loosely structured: a "collections" object of
// named collections, each with a "variables.colors" list, plus a top-level
// "styles.colors" list. Containers that are missing or have the wrong shape
// are treated as empty; only an unparseable document is an error.
package export

import "fmt"

// valueKeys lists the keys under "values" that may carry a token's color,
// in resolution order. The bare "value" field is consulted last.
var valueKeys = []string{"Style", "Value"}

// Document is a parsed design export.
type Document struct {
	// Collections in document order.
	Collections []*Collection

	// Styles are the standalone color styles.
	Styles []RawToken
}

// Collection is a named group of color variables.
type Collection struct {
	Name   string
	Colors []RawToken
}

// RawToken is one color entry from a collection or the styles list.
// Fields of the wrong JSON type are left at their zero value.
type RawToken struct {
	// Token is the underscore-delimited symbol (e.g., "gray_500").
	Token string

	// Name is the slash-delimited human path (e.g., "Gray/500").
	Name string

	// Values holds the "values" object, when present.
	Values map[string]any

	// Value holds the bare "value" field, when present.
	Value any

	// Pointer locates the entry in the document for diagnostics
	// (e.g., "collections.Primitives.variables.colors[3]").
	Pointer string
}

// RawValue resolves the token's color value through values.Style,
// values.Value, then value. The first present, non-null candidate wins.
func (t RawToken) RawValue() any {
	for _, key := range valueKeys {
		if v, ok := t.Values[key]; ok && v != nil {
			return v
		}
	}
	return t.Value
}

// TokenCount returns the number of raw entries across collections and styles.
func (d *Document) TokenCount() int {
	n := len(d.Styles)
	for _, c := range d.Collections {
		n += len(c.Colors)
	}
	return n
}

// Collection returns the named collection, if any.
func (d *Document) Collection(name string) (*Collection, bool) {
	for _, c := range d.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// buildDocument assembles a Document from decoded, order-preserving parts.
func buildDocument(collections []field, styles any) *Document {
	doc := &Document{}
	for _, f := range collections {
		pointer := fmt.Sprintf("collections.%s.variables.colors", f.key)
		doc.Collections = append(doc.Collections, &Collection{
			Name:   f.key,
			Colors: rawTokens(lookup(f.value, "variables", "colors"), pointer),
		})
	}
	doc.Styles = rawTokens(lookup(styles, "colors"), "styles.colors")
	return doc
}

// field is one key/value pair of a JSON or YAML object, kept in order.
type field struct {
	key   string
	value any
}

// lookup walks nested objects by key, returning nil when any step is missing.
func lookup(v any, keys ...string) any {
	for _, key := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

// rawTokens converts a decoded list into RawTokens. Non-object entries are
// kept as empty tokens so that they surface as skips rather than vanish.
func rawTokens(v any, pointer string) []RawToken {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	tokens := make([]RawToken, 0, len(list))
	for i, item := range list {
		tok := RawToken{Pointer: fmt.Sprintf("%s[%d]", pointer, i)}
		if m, ok := item.(map[string]any); ok {
			tok.Token, _ = m["token"].(string)
			tok.Name, _ = m["name"].(string)
			tok.Values, _ = m["values"].(map[string]any)
			tok.Value = m["value"]
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
