/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/figtokens/export"
	"bennypowers.dev/figtokens/testutil"
)

func TestParseFile_JSONC(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "basic", "/project")

	doc, err := export.ParseFile(mfs, "/project/design/figma-export.json")
	require.NoError(t, err)

	require.Len(t, doc.Collections, 2)
	assert.Equal(t, "Primitives", doc.Collections[0].Name)
	assert.Equal(t, "Semantic", doc.Collections[1].Name)
	assert.Len(t, doc.Collections[0].Colors, 8)
	assert.Len(t, doc.Collections[1].Colors, 2)
	assert.Len(t, doc.Styles, 3)
	assert.Equal(t, 13, doc.TokenCount())

	first := doc.Collections[0].Colors[0]
	assert.Equal(t, "gray_500", first.Token)
	assert.Equal(t, "Gray/500", first.Name)
	assert.Equal(t, "collections.Primitives.variables.colors[0]", first.Pointer)
	assert.Equal(t, map[string]any{"r": 0.6, "g": 0.6, "b": 0.6}, first.RawValue())

	assert.Equal(t, "styles.colors[2]", doc.Styles[2].Pointer)
}

func TestParse_CollectionOrderIsDocumentOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order.
	data := []byte(`{"collections": {"Zeta": {}, "Alpha": {}, "Mid": {}}}`)

	doc, err := export.Parse(data)
	require.NoError(t, err)

	names := make([]string, 0, len(doc.Collections))
	for _, c := range doc.Collections {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, names)
}

func TestParse_DuplicateCollectionKeepsFirstPosition(t *testing.T) {
	data := []byte(`{"collections": {
		"A": {"variables": {"colors": [{"token": "old"}]}},
		"B": {},
		"A": {"variables": {"colors": [{"token": "new"}]}}
	}}`)

	doc, err := export.Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Collections, 2)
	assert.Equal(t, "A", doc.Collections[0].Name)
	require.Len(t, doc.Collections[0].Colors, 1)
	assert.Equal(t, "new", doc.Collections[0].Colors[0].Token)
}

func TestParse_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "yaml", "/project")

	doc, err := export.ParseFile(mfs, "/project/design/figma-export.yaml")
	require.NoError(t, err)

	require.Len(t, doc.Collections, 2)
	assert.Equal(t, "Zeta", doc.Collections[0].Name)
	assert.Equal(t, "Alpha", doc.Collections[1].Name)

	blue := doc.Collections[0].Colors[0]
	assert.Equal(t, "blue_700", blue.Token)
	assert.Equal(t, map[string]any{"r": 0, "g": 0, "b": 1}, blue.RawValue())

	require.Len(t, doc.Styles, 1)
	assert.Equal(t, "error_500", doc.Styles[0].Token)
}

func TestParse_MissingContainers(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty object", data: `{}`},
		{name: "null collections", data: `{"collections": null, "styles": null}`},
		{name: "collections as list", data: `{"collections": [1, 2]}`},
		{name: "collection without variables", data: `{"collections": {"A": {}}}`},
		{name: "colors not a list", data: `{"collections": {"A": {"variables": {"colors": "nope"}}}, "styles": {"colors": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := export.Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, 0, doc.TokenCount())
		})
	}
}

func TestParse_WrongFieldTypes(t *testing.T) {
	data := []byte(`{"styles": {"colors": [
		{"token": 5, "name": ["x"], "values": "nope", "value": "#FFFFFF"},
		"not an object"
	]}}`)

	doc, err := export.Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Styles, 2)

	assert.Empty(t, doc.Styles[0].Token)
	assert.Empty(t, doc.Styles[0].Name)
	assert.Nil(t, doc.Styles[0].Values)
	assert.Equal(t, "#FFFFFF", doc.Styles[0].RawValue())

	assert.Empty(t, doc.Styles[1].Token)
	assert.Nil(t, doc.Styles[1].RawValue())
	assert.Equal(t, "styles.colors[1]", doc.Styles[1].Pointer)
}

func TestRawToken_RawValuePriority(t *testing.T) {
	tests := []struct {
		name     string
		tok      export.RawToken
		expected any
	}{
		{
			name:     "style wins",
			tok:      export.RawToken{Values: map[string]any{"Style": "#111111", "Value": "#222222"}, Value: "#333333"},
			expected: "#111111",
		},
		{
			name:     "value next",
			tok:      export.RawToken{Values: map[string]any{"Value": "#222222"}, Value: "#333333"},
			expected: "#222222",
		},
		{
			name:     "bare value last",
			tok:      export.RawToken{Value: "#333333"},
			expected: "#333333",
		},
		{
			name:     "null style falls through",
			tok:      export.RawToken{Values: map[string]any{"Style": nil, "Value": "#222222"}},
			expected: "#222222",
		},
		{
			name:     "nothing",
			tok:      export.RawToken{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tok.RawValue())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
	}{
		{name: "truncated JSON", data: `{ "collections": {`, format: "JSON"},
		{name: "null root", data: ` null`, format: "YAML"},
		{name: "JSON array root", data: `[1, 2, 3]`, format: "YAML"},
		{name: "YAML scalar root", data: `just a string`, format: "YAML"},
		{name: "empty", data: ``, format: "YAML"},
		{name: "YAML without containers", data: "error: upstream export failed\n", format: "YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := export.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, export.ErrInvalidExport)

			var pe *export.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.format, pe.Format)
		})
	}
}

func TestParseSource_FormatByExtension(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		data    string
		format  string
		wantErr bool
	}{
		{name: "json rejects YAML text", source: "/p/design/figma-export.json", data: "styles:\n  colors: []\n", format: "JSON", wantErr: true},
		{name: "json URL with query", source: "https://example.com/export.JSON?v=2", data: "error: failed\n", format: "JSON", wantErr: true},
		{name: "yml", source: "export.yml", data: "styles:\n  colors:\n    - token: gray_100\n      name: Gray/100\n      value: \"#F2F4F7\"\n"},
		{name: "unknown extension sniffs JSON", source: "export.txt", data: `{"styles": {"colors": []}}`},
		{name: "unknown extension rejects bare YAML", source: "export", data: "error: failed\n", format: "YAML", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := export.ParseSource([]byte(tt.data), tt.source)
			if !tt.wantErr {
				require.NoError(t, err)
				require.NotNil(t, doc)
				return
			}
			require.ErrorIs(t, err, export.ErrInvalidExport)
			var pe *export.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.format, pe.Format)
		})
	}
}

func TestParseFile_InvalidRecordsPath(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "invalid", "/project")

	_, err := export.ParseFile(mfs, "/project/design/figma-export.json")
	require.Error(t, err)

	var pe *export.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "/project/design/figma-export.json", pe.Path)
	assert.Contains(t, err.Error(), "/project/design/figma-export.json")
}

func TestParseFile_Missing(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "basic", "/project")

	_, err := export.ParseFile(mfs, "/project/nope.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, export.ErrInvalidExport))
}

func TestDocument_Collection(t *testing.T) {
	doc, err := export.Parse([]byte(`{"collections": {"A": {}, "B": {}}}`))
	require.NoError(t, err)

	c, ok := doc.Collection("B")
	require.True(t, ok)
	assert.Equal(t, "B", c.Name)

	_, ok = doc.Collection("C")
	assert.False(t, ok)
}
