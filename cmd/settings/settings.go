/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings merges command-line flags, environment variables, the
// project .env file and the project config file into pipeline options.
//
// Precedence, highest first: flags, environment, .env, config file, defaults.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/figtokens/config"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/generate"
	"bennypowers.dev/figtokens/load"
)

// EnvPrefix prefixes every environment variable figtokens reads,
// e.g. FIGTOKENS_INPUT or FIGTOKENS_FETCH_TIMEOUT.
const EnvPrefix = "FIGTOKENS"

// AddPersistentFlags registers the flags shared by every pipeline command.
func AddPersistentFlags(flags *pflag.FlagSet) {
	flags.StringP("dir", "C", ".", "Project root that paths and .config/figtokens.* are resolved against")
	flags.StringP("input", "i", generate.DefaultInput, "Design export path or http(s) URL")
	flags.StringP("output", "o", generate.DefaultOutput, "Token artifact path")
	flags.String("prefix", "", "CSS variable prefix (default \"--color-\")")
	flags.StringSlice("families", nil, "Palette families to allow-list (default: built-in families)")
	flags.StringSlice("ignore", nil, "Glob patterns of token names to drop, e.g. 'Legacy/**'")
	flags.Bool("clamp", false, "Clamp RGB channels to [0,1] before conversion")
	flags.StringArray("header", nil, "HTTP header for URL inputs as 'Key: Value' (repeatable)")
	flags.Duration("fetch-timeout", load.DefaultTimeout, "Timeout for URL inputs")
	flags.BoolP("verbose", "v", false, "Log every skipped token")
}

// AddWriteFlags registers the flags of commands that write the artifact.
func AddWriteFlags(flags *pflag.FlagSet) {
	flags.Bool("atomic", false, "Write through a temporary file and rename")
	flags.Bool("mkdir", false, "Create the output directory if it does not exist")
	flags.Bool("dry-run", false, "Map and serialize without writing")
}

// Resolve builds pipeline options for cmd from its flags, FIGTOKENS_*
// environment variables, the project's .env file and config file.
func Resolve(cmd *cobra.Command) (generate.Options, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return generate.Options{}, fmt.Errorf("error binding flags: %w", err)
	}

	root := v.GetString("dir")
	filesystem := fs.NewOSFileSystem()

	cfg, err := config.LoadOrDefault(filesystem, root)
	if err != nil {
		return generate.Options{}, err
	}
	setConfigDefaults(v, cfg)

	if err := loadDotEnv(v, filepath.Join(root, ".env")); err != nil {
		return generate.Options{}, err
	}

	opts := generate.Options{
		FS:           filesystem,
		Root:         root,
		Input:        v.GetString("input"),
		Output:       v.GetString("output"),
		Prefix:       v.GetString("prefix"),
		Ignore:       stringSlice(v, "ignore"),
		Clamp:        v.GetBool("clamp"),
		Atomic:       v.GetBool("atomic"),
		MkdirAll:     v.GetBool("mkdir"),
		DryRun:       v.GetBool("dry-run"),
		FetchTimeout: v.GetDuration("fetch-timeout"),
	}
	if v.IsSet("families") {
		opts.Families = stringSlice(v, "families")
	}

	if load.IsRemote(opts.Input) {
		fetcher := load.NewHTTPFetcher(load.DefaultMaxSize)
		headers, err := cmd.Flags().GetStringArray("header")
		if err != nil {
			return generate.Options{}, fmt.Errorf("error reading header flag: %w", err)
		}
		for _, h := range headers {
			key, value, found := strings.Cut(h, ":")
			if !found {
				return generate.Options{}, fmt.Errorf("invalid header %q: expected 'Key: Value'", h)
			}
			fetcher.WithHeader(strings.TrimSpace(key), strings.TrimSpace(value))
		}
		opts.Fetcher = fetcher
	}

	return opts, nil
}

// Verbose reports whether debug logging was requested by flag or environment.
func Verbose(cmd *cobra.Command) bool {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if flag := cmd.Flags().Lookup("verbose"); flag != nil {
		_ = v.BindPFlag("verbose", flag)
	}
	return v.GetBool("verbose")
}

// stringSlice reads a list setting. Flags and the config file yield slices;
// environment and .env values are comma-separated strings.
func stringSlice(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func setConfigDefaults(v *viper.Viper, cfg *config.Config) {
	v.SetDefault("input", cfg.Input)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("prefix", cfg.Prefix)
	v.SetDefault("clamp", cfg.Clamp)
	v.SetDefault("atomic", cfg.Atomic)
	if cfg.Families != nil {
		v.SetDefault("families", cfg.Families)
	}
	if cfg.Ignore != nil {
		v.SetDefault("ignore", cfg.Ignore)
	}
}

// loadDotEnv layers FIGTOKENS_* entries from a .env file over the config
// defaults. Real environment variables still take precedence. A missing
// file is not an error.
func loadDotEnv(v *viper.Viper, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	for name, value := range values {
		key, ok := strings.CutPrefix(name, EnvPrefix+"_")
		if !ok {
			continue
		}
		v.SetDefault(strings.ReplaceAll(strings.ToLower(key), "_", "-"), value)
	}
	return nil
}
