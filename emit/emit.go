/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit serializes the mapped color tokens and writes the artifact.
package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/token"
)

// ErrWrite indicates the artifact could not be written.
var ErrWrite = errors.New("failed to write token artifact")

// Document is the emitted artifact.
type Document struct {
	Colors   *token.Map       `json:"colors"`
	Palettes []*token.Palette `json:"palettes"`
}

// Options configures writing.
type Options struct {
	// Atomic writes to a sibling temporary file, then renames it over the
	// destination, so a crash never leaves a truncated artifact.
	Atomic bool

	// MkdirAll creates the destination's parent directory if needed.
	MkdirAll bool
}

// Marshal encodes doc as two-space indented JSON without HTML escaping and
// without a trailing newline.
func Marshal(doc Document) ([]byte, error) {
	if doc.Colors == nil {
		doc.Colors = token.NewMap()
	}
	if doc.Palettes == nil {
		doc.Palettes = []*token.Palette{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write overwrites path with data.
func Write(filesystem fs.FileSystem, path string, data []byte, opts Options) error {
	if opts.MkdirAll {
		if err := filesystem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
		}
	}

	if !opts.Atomic {
		if err := filesystem.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
		}
		return nil
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := filesystem.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err := filesystem.Rename(tmp, path); err != nil {
		_ = filesystem.Remove(tmp)
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}

// UpToDate reports whether path already holds exactly data.
func UpToDate(filesystem fs.FileSystem, path string, data []byte) bool {
	existing, err := filesystem.ReadFile(path)
	if err != nil {
		return false
	}
	return bytes.Equal(existing, data)
}
