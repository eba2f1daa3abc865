/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"errors"
	"fmt"
)

// ErrInvalidExport indicates the export could not be parsed.
var ErrInvalidExport = errors.New("invalid design export")

// ParseError reports a document that is not valid JSON or YAML, or whose
// root is not an object.
type ParseError struct {
	// Path is the file the document was read from, if known.
	Path string

	// Format is "JSON" or "YAML".
	Format string

	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s export %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse %s export: %v", e.Format, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrInvalidExport.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidExport
}
