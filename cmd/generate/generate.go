/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for figtokens.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtokens/cmd/settings"
	generatelib "bennypowers.dev/figtokens/generate"
	"bennypowers.dev/figtokens/internal/logger"
)

// NewCmd returns the generate cobra command.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the color token artifact from a design export",
		Long: `Read the design export, normalize every color to uppercase hex, map
tokens to CSS variable names, group stepped tokens into palettes, and write
{colors, palettes} as JSON.

Collection variables take precedence over standalone styles. Malformed tokens
are skipped; run with --verbose to see each one.

Examples:
  # Conventional paths: design/figma-export.json -> src/styles/tokens.json
  figtokens generate

  # Custom paths and prefix
  figtokens generate -i exports/colors.json -o dist/tokens.json --prefix --ds-

  # Preview without writing
  figtokens generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: Run,
	}
	settings.AddWriteFlags(cmd.Flags())
	return cmd
}

// Run executes the pipeline with options resolved from cmd. The root command
// shares it so that a bare "figtokens" generates.
func Run(cmd *cobra.Command, args []string) error {
	opts, err := settings.Resolve(cmd)
	if err != nil {
		return err
	}

	result, err := generatelib.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(result.Data))
		return err
	}

	dropped := len(result.Dropped())
	if dropped > 0 {
		logger.Info("Skipped %d malformed or shadowed tokens", dropped)
	}
	status := "Wrote"
	if !result.Changed {
		status = "Unchanged"
	}
	logger.Info("%s %s: %d colors, %d palettes", status, result.Output, result.Colors.Len(), len(result.Palettes))
	return nil
}
