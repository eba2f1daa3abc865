/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for figtokens.
package testutil

import (
	"bytes"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/figtokens/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataCandidates lists where the repository's testdata directory may be
// relative to a package under test.
func testdataCandidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// NewFixtureFS loads fixture files from testdata/fixtures and returns a
// MapFileSystem with files mapped under rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	var fixturePath string
	for _, path := range testdataCandidates(filepath.Join("fixtures", fixtureDir)) {
		if _, err := os.Stat(path); err == nil {
			fixturePath = path
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// NewFixtureDir copies fixtures from testdata/fixtures into a fresh temporary
// directory and returns its path, for tests that need the real filesystem.
func NewFixtureDir(t *testing.T, fixtureDir string) string {
	t.Helper()

	dir := t.TempDir()
	mfs := NewFixtureFS(t, fixtureDir, "/")
	for p, kind := range mfs.ListFiles() {
		if kind == "directory" {
			continue
		}
		content, err := mfs.ReadFile(p)
		if err != nil {
			t.Fatalf("Failed to read fixture %s: %v", p, err)
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", target, err)
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", target, err)
		}
	}
	return dir
}

// CheckGolden compares actual against testdata/golden/<name>, rewriting the
// golden file instead when the -update flag is set.
func CheckGolden(t *testing.T, name string, actual []byte) {
	t.Helper()

	candidates := testdataCandidates(filepath.Join("golden", name))
	if *updateGolden {
		writeGolden(t, candidates, actual)
		return
	}

	for _, path := range candidates {
		expected, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if !bytes.Equal(expected, actual) {
			t.Errorf("output does not match golden file %s\n--- want\n%s\n--- got\n%s", path, expected, actual)
		}
		return
	}
	t.Fatalf("Failed to read golden file %s (tried all paths)", name)
}

func writeGolden(t *testing.T, candidates []string, actual []byte) {
	t.Helper()

	targetPath := candidates[0]
	for _, path := range candidates {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			targetPath = path
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", targetPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", targetPath, err)
	}
	t.Logf("Updated golden file: %s", targetPath)
}
