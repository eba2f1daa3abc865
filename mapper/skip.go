/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapper

import (
	"fmt"

	"bennypowers.dev/figtokens/token"
)

// SkipReason explains why a raw token was dropped or kept out of a palette.
type SkipReason int

const (
	// SkipIgnored means the token's name matched an ignore pattern.
	SkipIgnored SkipReason = iota

	// SkipMissingToken means the entry has no symbol to derive a name from.
	SkipMissingToken

	// SkipUnrecognizedValue means the value is neither a string nor an {r,g,b} object.
	SkipUnrecognizedValue

	// SkipShadowed means a style collided with a collection variable, which wins.
	SkipShadowed

	// SkipNoStep means the name has no "<Palette>/<Step>" form.
	// The token is still in the color table.
	SkipNoStep

	// SkipFamily means the palette name matched no allow-listed family.
	// The token is still in the color table.
	SkipFamily
)

// String returns the string representation of the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipIgnored:
		return "ignored"
	case SkipMissingToken:
		return "missing-token"
	case SkipUnrecognizedValue:
		return "unrecognized-value"
	case SkipShadowed:
		return "shadowed"
	case SkipNoStep:
		return "no-step"
	case SkipFamily:
		return "family"
	default:
		return "unknown"
	}
}

// Drops reports whether the reason removes the token from the color table,
// as opposed to only keeping it out of a palette.
func (r SkipReason) Drops() bool {
	switch r {
	case SkipIgnored, SkipMissingToken, SkipUnrecognizedValue, SkipShadowed:
		return true
	default:
		return false
	}
}

// Skip records one skip decision.
type Skip struct {
	Reason     SkipReason
	Source     token.Source
	Collection string
	Token      string
	Name       string
	Pointer    string
}

// String formats the skip for diagnostics.
func (s Skip) String() string {
	label := s.Token
	if label == "" {
		label = s.Name
	}
	if label == "" {
		label = "(unnamed)"
	}
	return fmt.Sprintf("%s: %s %q", s.Pointer, s.Reason, label)
}
