/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads a design export from disk, or from a URL when a Fetcher
// is configured, and parses it.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/figtokens/export"
	"bennypowers.dev/figtokens/fs"
)

var (
	// ErrRead indicates the export could not be read.
	ErrRead = errors.New("failed to read design export")

	// ErrNoFetcher indicates a URL source was given without a Fetcher.
	ErrNoFetcher = errors.New("remote export requires a fetcher")
)

// Options configures how an export is loaded.
type Options struct {
	// Root is the directory relative sources are resolved against.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher enables http:// and https:// sources. Nil disables them.
	Fetcher Fetcher

	// FetchTimeout bounds a network fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration
}

// Load reads and parses the export named by source.
//
// Read failures wrap ErrRead; parse failures wrap export.ErrInvalidExport.
// Both are fatal to the pipeline.
func Load(ctx context.Context, source string, opts Options) (*export.Document, error) {
	data, origin, err := read(ctx, source, opts)
	if err != nil {
		return nil, err
	}

	doc, err := export.ParseSource(data, origin)
	if err != nil {
		var pe *export.ParseError
		if errors.As(err, &pe) {
			pe.Path = origin
		}
		return nil, err
	}
	return doc, nil
}

// IsRemote reports whether source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ResolvePath makes a local source absolute against root.
func ResolvePath(source, root string) (string, error) {
	if filepath.IsAbs(source) {
		return source, nil
	}
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}
	return filepath.Join(root, source), nil
}

func read(ctx context.Context, source string, opts Options) ([]byte, string, error) {
	if IsRemote(source) {
		content, err := fetch(ctx, source, opts)
		if err != nil {
			return nil, source, fmt.Errorf("%w %s: %w", ErrRead, source, err)
		}
		return content, source, nil
	}

	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	path, err := ResolvePath(source, opts.Root)
	if err != nil {
		return nil, source, err
	}
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return content, path, nil
}

func fetch(ctx context.Context, url string, opts Options) ([]byte, error) {
	if opts.Fetcher == nil {
		return nil, ErrNoFetcher
	}

	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return opts.Fetcher.Fetch(ctx, url)
}
