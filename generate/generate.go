/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate runs the token pipeline: load the export, map it to
// colors and palettes, and write the JSON artifact.
package generate

import (
	"context"
	"fmt"
	"time"

	"bennypowers.dev/figtokens/color"
	"bennypowers.dev/figtokens/emit"
	"bennypowers.dev/figtokens/fs"
	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/load"
	"bennypowers.dev/figtokens/mapper"
)

const (
	// DefaultInput is the conventional export location, relative to the project root.
	DefaultInput = "design/figma-export.json"

	// DefaultOutput is the conventional artifact location, relative to the project root.
	DefaultOutput = "src/styles/tokens.json"
)

// Options configures a pipeline run.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Root is the project root that Input and Output are resolved against.
	Root string

	// Input is the export path or http(s) URL. Defaults to DefaultInput.
	Input string

	// Output is the artifact path. Defaults to DefaultOutput.
	Output string

	// Prefix for CSS variable names. Defaults to token.DefaultPrefix.
	Prefix string

	// Families allow-lists palette names. Nil means mapper.DefaultFamilies.
	Families []string

	// Ignore holds doublestar patterns for token names to drop.
	Ignore []string

	// Clamp restricts RGB channels to [0,1] before conversion.
	Clamp bool

	// Atomic writes through a temporary file and rename.
	Atomic bool

	// MkdirAll creates the output directory when missing.
	MkdirAll bool

	// DryRun maps and serializes without writing.
	DryRun bool

	// Fetcher enables URL inputs.
	Fetcher load.Fetcher

	// FetchTimeout bounds a URL fetch. Defaults to load.DefaultTimeout.
	FetchTimeout time.Duration
}

// Result describes a completed run.
type Result struct {
	*mapper.Result

	// Output is the resolved artifact path.
	Output string

	// Data is the serialized artifact.
	Data []byte

	// Changed reports whether Data differs from what Output held before the run.
	Changed bool

	// Written reports whether Output was written.
	Written bool
}

// Run executes the pipeline. Loader, configuration and write failures are
// returned as errors; per-token anomalies are recorded in Result.Skipped.
// Nothing is written unless every earlier stage succeeded.
func Run(ctx context.Context, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	input := opts.Input
	if input == "" {
		input = DefaultInput
	}
	output := opts.Output
	if output == "" {
		output = DefaultOutput
	}

	doc, err := load.Load(ctx, input, load.Options{
		Root:         opts.Root,
		FS:           filesystem,
		Fetcher:      opts.Fetcher,
		FetchTimeout: opts.FetchTimeout,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded %d raw tokens from %d collections", doc.TokenCount(), len(doc.Collections))

	mapped, err := mapper.Build(doc, mapper.Options{
		Prefix:   opts.Prefix,
		Families: opts.Families,
		Ignore:   opts.Ignore,
		Color:    color.Options{Clamp: opts.Clamp},
	})
	if err != nil {
		return nil, err
	}
	for _, s := range mapped.Skipped {
		logger.Debug("Skipped %s", s)
	}

	data, err := emit.Marshal(emit.Document{Colors: mapped.Colors, Palettes: mapped.Palettes})
	if err != nil {
		return nil, fmt.Errorf("error serializing tokens: %w", err)
	}

	outPath, err := load.ResolvePath(output, opts.Root)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Result:  mapped,
		Output:  outPath,
		Data:    data,
		Changed: !emit.UpToDate(filesystem, outPath, data),
	}
	if opts.DryRun {
		return result, nil
	}

	if err := emit.Write(filesystem, outPath, data, emit.Options{
		Atomic:   opts.Atomic,
		MkdirAll: opts.MkdirAll,
	}); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}
