/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for figtokens.
package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/figtokens/internal/version"
)

// NewCmd returns the version cobra command that prints version and build information.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for figtokens.`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		buildInfo := version.Info()
		data, err := json.MarshalIndent(buildInfo, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling version info: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	default:
		_, err := fmt.Fprintf(out, "figtokens %s\n", version.Get())
		return err
	}
}
