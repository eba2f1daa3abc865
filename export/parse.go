/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/figtokens/fs"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errNoContainers rejects a YAML root that holds neither export container.
var errNoContainers = errors.New(`root has neither "collections" nor "styles"`)

// Parse parses an export document. JSON (with optional comments and trailing
// commas) is the normal form; anything not starting with '{' is read as YAML.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if isLikelyJSON(data) {
		return parseJSON(data)
	}
	return parseYAML(data)
}

// ParseSource parses an export read from source, a file path or URL.
// A .json or .jsonc source is always JSON and a .yaml or .yml source is
// always YAML; any other source is detected as in Parse.
func ParseSource(data []byte, source string) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	switch sourceExt(source) {
	case ".json", ".jsonc":
		return parseJSON(data)
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return Parse(data)
	}
}

// ParseFile reads and parses the export at path.
func ParseFile(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseSource(data, path)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

func sourceExt(source string) string {
	name := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		name = u.Path
	}
	return strings.ToLower(path.Ext(name))
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func parseJSON(data []byte) (*Document, error) {
	clean := jsonc.ToJSON(data)

	var top map[string]json.RawMessage
	if err := json.Unmarshal(clean, &top); err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}
	if top == nil {
		return nil, &ParseError{Format: "JSON", Err: errors.New("root must be an object")}
	}

	var collections []field
	if raw, ok := top["collections"]; ok {
		fields, err := orderedJSONObject(raw)
		if err != nil {
			return nil, &ParseError{Format: "JSON", Err: err}
		}
		collections = fields
	}

	var styles any
	if raw, ok := top["styles"]; ok {
		if err := json.Unmarshal(raw, &styles); err != nil {
			return nil, &ParseError{Format: "JSON", Err: err}
		}
	}

	return buildDocument(collections, styles), nil
}

// orderedJSONObject decodes a JSON object into fields in document order.
// A repeated key keeps its first position and takes the last value.
// Non-object input yields no fields.
func orderedJSONObject(raw json.RawMessage) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil
	}

	var fields []field
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			fields[i].value = value
			continue
		}
		index[key] = len(fields)
		fields = append(fields, field{key: key, value: value})
	}
	return fields, nil
}

func parseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Format: "YAML", Err: err}
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, &ParseError{Format: "YAML", Err: errors.New("root must be an object")}
	}
	top := root.Content[0]

	var collections []field
	var styles any
	found := false
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i].Value, deref(top.Content[i+1])
		switch key {
		case "collections":
			found = true
			if value.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				var v any
				if err := value.Content[j+1].Decode(&v); err != nil {
					return nil, &ParseError{Format: "YAML", Err: err}
				}
				collections = append(collections, field{key: value.Content[j].Value, value: normalizeMap(v)})
			}
		case "styles":
			found = true
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, &ParseError{Format: "YAML", Err: err}
			}
			styles = normalizeMap(v)
		}
	}
	if !found {
		return nil, &ParseError{Format: "YAML", Err: errNoContainers}
	}

	return buildDocument(collections, styles), nil
}

func deref(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "10:") decodes into map[any]any.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
