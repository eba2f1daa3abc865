/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bytes"
	"encoding/json"
)

// Map is an insertion-ordered table of tokens keyed by CSS variable name.
// It serializes as a JSON object of name to hex in first-seen order, so that
// repeated runs over the same export produce identical bytes.
type Map struct {
	names  []string
	byName map[string]*Token
}

// NewMap creates an empty token map.
func NewMap() *Map {
	return &Map{byName: make(map[string]*Token)}
}

// Set stores tok under tok.Name. Replacing an existing entry keeps its
// original position.
func (m *Map) Set(tok *Token) {
	if _, exists := m.byName[tok.Name]; !exists {
		m.names = append(m.names, tok.Name)
	}
	m.byName[tok.Name] = tok
}

// SetIfAbsent stores tok only when no entry exists for tok.Name.
// Returns false when an existing entry was kept.
func (m *Map) SetIfAbsent(tok *Token) bool {
	if _, exists := m.byName[tok.Name]; exists {
		return false
	}
	m.Set(tok)
	return true
}

// Get looks up a token by CSS variable name.
func (m *Map) Get(name string) (*Token, bool) {
	tok, ok := m.byName[name]
	return tok, ok
}

// Len returns the number of tokens.
func (m *Map) Len() int {
	return len(m.names)
}

// Names returns the CSS variable names in insertion order.
func (m *Map) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Tokens returns the tokens in insertion order.
func (m *Map) Tokens() []*Token {
	out := make([]*Token, 0, len(m.names))
	for _, name := range m.names {
		out = append(out, m.byName[name])
	}
	return out
}

// MarshalJSON encodes the map as {"--color-x": "#HEX", ...} in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, m.byName[name].Hex); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString JSON-encodes s without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
