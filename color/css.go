/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// IsCSSColor reports whether s parses as a CSS color.
// Used for diagnostics only; literals are always emitted as given.
func IsCSSColor(s string) bool {
	_, err := csscolorparser.Parse(s)
	return err == nil
}

// CSSHex parses any CSS color and returns it as lowercase #rrggbb,
// dropping alpha. Used for terminal swatches.
func CSSHex(s string) (string, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", false
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), true
}
