/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapper turns a parsed design export into the canonical color table
// and its step-ordered palettes.
//
// Collections are visited before styles, so collection variables take
// precedence: a style is only recorded when its CSS variable name is new.
// Every per-token anomaly is a silent skip, reported in Result.Skipped.
package mapper

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/figtokens/color"
	"bennypowers.dev/figtokens/export"
	"bennypowers.dev/figtokens/token"
)

// stepPattern splits a name on its last "/" into palette name and step.
var stepPattern = regexp.MustCompile(`^(.+)/([^/]+)$`)

// DefaultFamilies returns the palette-name substrings recognized by default.
func DefaultFamilies() []string {
	return []string{
		"Colors/",
		"Gray",
		"Brand",
		"Error",
		"Warning",
		"Success",
		"Blue",
		"Indigo",
		"Violet",
		"Purple",
		"Fuchsia",
		"Pink",
		"Rose",
		"Orange",
		"Yellow",
		"Green",
		"Teal",
		"Cyan",
		"Moss",
	}
}

// Options configures mapping.
type Options struct {
	// Prefix is prepended to CSS variable names. Defaults to token.DefaultPrefix.
	Prefix string

	// Families are case-sensitive substrings; a palette is formed only when
	// its name contains one of them. Nil means DefaultFamilies.
	Families []string

	// Ignore holds doublestar patterns matched against token names
	// (e.g., "Legacy/**"). Matching tokens are dropped.
	Ignore []string

	// Color configures value normalization.
	Color color.Options
}

// Result is the mapped export.
type Result struct {
	// Colors maps CSS variable names to tokens in first-seen order.
	Colors *token.Map

	// Palettes in first-seen order, each sorted by step.
	Palettes []*token.Palette

	// Skipped lists every skip decision in traversal order.
	Skipped []Skip
}

// Palette returns the named palette, if any.
func (r *Result) Palette(name string) (*token.Palette, bool) {
	for _, p := range r.Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// SkipCounts tallies skips by reason.
func (r *Result) SkipCounts() map[SkipReason]int {
	counts := make(map[SkipReason]int)
	for _, s := range r.Skipped {
		counts[s.Reason]++
	}
	return counts
}

// Dropped returns the skips that removed a token from the color table.
func (r *Result) Dropped() []Skip {
	var out []Skip
	for _, s := range r.Skipped {
		if s.Reason.Drops() {
			out = append(out, s)
		}
	}
	return out
}

// Build maps doc into a Result. The only error is an invalid ignore pattern.
func Build(doc *export.Document, opts Options) (*Result, error) {
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}
	if opts.Prefix == "" {
		opts.Prefix = token.DefaultPrefix
	}
	if opts.Families == nil {
		opts.Families = DefaultFamilies()
	}

	b := &builder{
		opts:   opts,
		result: &Result{Colors: token.NewMap(), Palettes: []*token.Palette{}},
		steps:  make(map[string]stepRef),
	}

	for _, c := range doc.Collections {
		for _, raw := range c.Colors {
			b.add(raw, token.SourceCollection, c.Name)
		}
	}
	for _, raw := range doc.Styles {
		b.add(raw, token.SourceStyle, "")
	}

	for _, p := range b.result.Palettes {
		p.SortSteps()
	}
	return b.result, nil
}

// stepRef locates a token's palette step while steps are still unsorted.
type stepRef struct {
	palette *token.Palette
	index   int
}

type builder struct {
	opts   Options
	result *Result
	steps  map[string]stepRef
}

func (b *builder) skip(reason SkipReason, raw export.RawToken, source token.Source, collection string) {
	b.result.Skipped = append(b.result.Skipped, Skip{
		Reason:     reason,
		Source:     source,
		Collection: collection,
		Token:      raw.Token,
		Name:       raw.Name,
		Pointer:    raw.Pointer,
	})
}

func (b *builder) add(raw export.RawToken, source token.Source, collection string) {
	if b.ignored(raw.Name) {
		b.skip(SkipIgnored, raw, source, collection)
		return
	}
	if raw.Token == "" {
		b.skip(SkipMissingToken, raw, source, collection)
		return
	}
	hex, ok := color.FromRaw(raw.RawValue(), b.opts.Color)
	if !ok {
		b.skip(SkipUnrecognizedValue, raw, source, collection)
		return
	}

	tok := &token.Token{
		Name:       token.CSSVariableName(raw.Token, b.opts.Prefix),
		Hex:        hex,
		Symbol:     raw.Token,
		Path:       raw.Name,
		Source:     source,
		Collection: collection,
	}

	switch source {
	case token.SourceStyle:
		if !b.result.Colors.SetIfAbsent(tok) {
			b.skip(SkipShadowed, raw, source, collection)
			return
		}
	default:
		b.result.Colors.Set(tok)
	}

	b.group(tok, raw, source, collection)
}

// group files tok into its palette. A token already in a palette (a later
// collection redefining it) has its step updated in place.
func (b *builder) group(tok *token.Token, raw export.RawToken, source token.Source, collection string) {
	if ref, ok := b.steps[tok.Name]; ok {
		ref.palette.Steps[ref.index].Hex = tok.Hex
		return
	}

	m := stepPattern.FindStringSubmatch(raw.Name)
	if m == nil {
		b.skip(SkipNoStep, raw, source, collection)
		return
	}
	name, step := m[1], m[2]
	if !b.allowed(name) {
		b.skip(SkipFamily, raw, source, collection)
		return
	}

	palette, ok := b.result.Palette(name)
	if !ok {
		palette = token.NewPalette(name)
		b.result.Palettes = append(b.result.Palettes, palette)
	}
	palette.Add(token.Step{Step: step, Token: tok.Name, Hex: tok.Hex})
	b.steps[tok.Name] = stepRef{palette: palette, index: len(palette.Steps) - 1}
}

func (b *builder) allowed(paletteName string) bool {
	return slices.ContainsFunc(b.opts.Families, func(family string) bool {
		return strings.Contains(paletteName, family)
	})
}

func (b *builder) ignored(name string) bool {
	for _, pattern := range b.opts.Ignore {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
