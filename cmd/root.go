/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for figtokens.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/figtokens/cmd/generate"
	"bennypowers.dev/figtokens/cmd/palettes"
	"bennypowers.dev/figtokens/cmd/settings"
	"bennypowers.dev/figtokens/cmd/validate"
	"bennypowers.dev/figtokens/cmd/version"
	"bennypowers.dev/figtokens/internal/logger"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "figtokens",
		Short: "Generate color tokens from a design-tool export",
		Long: `figtokens turns a design-tool color export into a stable JSON artifact of
CSS variable names and step-ordered palettes.

Run without a subcommand to generate. Settings come from flags, FIGTOKENS_*
environment variables, a .env file, and .config/figtokens.{yaml,yml,json}, in
that order of precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(settings.Verbose(cmd))
		},
		RunE: generate.Run,
	}

	settings.AddPersistentFlags(root.PersistentFlags())
	settings.AddWriteFlags(root.Flags())

	root.AddCommand(generate.NewCmd())
	root.AddCommand(palettes.NewCmd())
	root.AddCommand(validate.NewCmd())
	root.AddCommand(version.NewCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error(err, "figtokens failed")
	}
	return err
}
