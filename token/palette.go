/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Step is one entry of a palette.
type Step struct {
	// Step is the palette step as written in the export (e.g., "500").
	Step string `json:"step"`

	// Token is the CSS variable name of the step's color.
	Token string `json:"token"`

	// Hex is the canonical color value.
	Hex string `json:"hex"`
}

// Palette is a named, step-ordered group of related tokens.
type Palette struct {
	// Name is the palette name exactly as it appears before the last "/".
	Name string `json:"name"`

	// Steps holds the palette entries, ascending by numeric step after SortSteps.
	Steps []Step `json:"steps"`
}

// NewPalette creates an empty palette.
func NewPalette(name string) *Palette {
	return &Palette{Name: name, Steps: []Step{}}
}

// Add appends a step.
func (p *Palette) Add(step Step) {
	p.Steps = append(p.Steps, step)
}

// SortSteps orders steps by numeric value, so "2" comes before "10".
// Steps that are not numbers sort after all numeric ones, in their
// original relative order.
func (p *Palette) SortSteps() {
	sort.SliceStable(p.Steps, func(i, j int) bool {
		return stepKey(p.Steps[i].Step) < stepKey(p.Steps[j].Step)
	})
}

// stepKey maps non-numeric steps to +Inf.
func stepKey(step string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(step), 64)
	if err != nil || math.IsNaN(f) {
		return math.Inf(1)
	}
	return f
}
