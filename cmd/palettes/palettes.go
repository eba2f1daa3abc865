/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package palettes provides the palettes command for figtokens.
package palettes

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/figtokens/cmd/settings"
	"bennypowers.dev/figtokens/color"
	"bennypowers.dev/figtokens/generate"
	"bennypowers.dev/figtokens/token"
)

// NewCmd returns the palettes cobra command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Print the palettes a design export produces",
		Long: `Print every palette with its steps in order, without writing the artifact.

Table output shows a color swatch beside each step when writing to a color
terminal. --color=always forces 24-bit swatches; --color=never disables them.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
	cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
	cmd.Flags().String("color", "auto", "Swatches in table output: auto, always, never")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	colorMode, _ := cmd.Flags().GetString("color")

	opts, err := settings.Resolve(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = true

	result, err := generate.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), result.Palettes)
	case "table":
		renderer, err := newRenderer(cmd.OutOrStdout(), colorMode)
		if err != nil {
			return err
		}
		return outputTable(cmd.OutOrStdout(), renderer, result.Palettes)
	default:
		return fmt.Errorf("invalid format %q: expected table or json", format)
	}
}

func newRenderer(w io.Writer, mode string) (*lipgloss.Renderer, error) {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case "auto":
	case "always":
		r.SetColorProfile(termenv.TrueColor)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("invalid color mode %q: expected auto, always or never", mode)
	}
	return r, nil
}

// swatch renders a two-cell block in the step's color. It is empty when the
// renderer has no colors and blank when hex is not a CSS color.
func swatch(r *lipgloss.Renderer, hex string) string {
	if r.ColorProfile() == termenv.Ascii {
		return ""
	}
	css, ok := color.CSSHex(hex)
	if !ok {
		return "   "
	}
	return r.NewStyle().Background(lipgloss.Color(css)).Render("  ") + " "
}

func outputTable(w io.Writer, r *lipgloss.Renderer, palettes []*token.Palette) error {
	title := cases.Title(language.English, cases.NoLower)
	for i, p := range palettes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", title.String(p.Name), len(p.Steps)); err != nil {
			return err
		}
		for _, s := range p.Steps {
			if _, err := fmt.Fprintf(w, "  %-6s %s%-9s %s\n", s.Step, swatch(r, s.Hex), s.Hex, s.Token); err != nil {
				return err
			}
		}
	}
	return nil
}

func outputJSON(w io.Writer, palettes []*token.Palette) error {
	if palettes == nil {
		palettes = []*token.Palette{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(palettes)
}
