/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for figtokens.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtokens/cmd/settings"
	"bennypowers.dev/figtokens/color"
	"bennypowers.dev/figtokens/generate"
	"bennypowers.dev/figtokens/mapper"
	"bennypowers.dev/figtokens/token"
)

// NewCmd returns the validate cobra command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a design export without writing the artifact",
		Long: `Load and map the design export, then report every skipped token and every
string color that is not a parseable CSS color. Nothing is written.

Exits non-zero when the export cannot be loaded, or with --strict when any
token was dropped or any literal failed to parse.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
	cmd.Flags().Bool("strict", false, "Fail when any token was dropped or is not a CSS color")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	opts, err := settings.Resolve(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = true

	result, err := generate.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	problems, err := report(cmd.OutOrStdout(), result.Result)
	if err != nil {
		return err
	}
	if strict && problems > 0 {
		return fmt.Errorf("validation failed: %d problem(s)", problems)
	}
	return nil
}

// report prints skips and non-CSS literals, returning how many tokens were
// dropped or carry an unparseable literal. Palette-only skips are printed
// but not counted.
func report(w io.Writer, result *mapper.Result) (int, error) {
	var problems int

	for _, s := range result.Skipped {
		level := "info"
		if s.Reason.Drops() {
			level = "error"
			problems++
		}
		if _, err := fmt.Fprintf(w, "%-5s %s\n", level, s); err != nil {
			return 0, err
		}
	}

	for _, tok := range result.Colors.Tokens() {
		if color.IsCSSColor(tok.Hex) {
			continue
		}
		problems++
		if _, err := fmt.Fprintf(w, "error %s: %q is not a CSS color (%s)\n", tok.Name, tok.Hex, provenance(tok)); err != nil {
			return 0, err
		}
	}

	_, err := fmt.Fprintf(w, "%d colors, %d palettes, %d skipped, %d problem(s)\n",
		result.Colors.Len(), len(result.Palettes), len(result.Skipped), problems)
	return problems, err
}

func provenance(tok *token.Token) string {
	if tok.Collection != "" {
		return fmt.Sprintf("%s %s %q", tok.Source, tok.Collection, tok.Path)
	}
	return fmt.Sprintf("%s %q", tok.Source, tok.Path)
}
