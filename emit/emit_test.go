/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"bennypowers.dev/figtokens/emit"
	"bennypowers.dev/figtokens/internal/mapfs"
	"bennypowers.dev/figtokens/token"
)

func sampleDocument() emit.Document {
	colors := token.NewMap()
	colors.Set(&token.Token{Name: "--color-gray-500", Hex: "#999999"})
	colors.Set(&token.Token{Name: "--color-black", Hex: "#000000"})

	gray := token.NewPalette("Gray")
	gray.Add(token.Step{Step: "500", Token: "--color-gray-500", Hex: "#999999"})

	return emit.Document{Colors: colors, Palettes: []*token.Palette{gray}}
}

func TestMarshal(t *testing.T) {
	data, err := emit.Marshal(sampleDocument())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := `{
  "colors": {
    "--color-gray-500": "#999999",
    "--color-black": "#000000"
  },
  "palettes": [
    {
      "name": "Gray",
      "steps": [
        {
          "step": "500",
          "token": "--color-gray-500",
          "hex": "#999999"
        }
      ]
    }
  ]
}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshal_Empty(t *testing.T) {
	data, err := emit.Marshal(emit.Document{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "{\n  \"colors\": {},\n  \"palettes\": []\n}"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestMarshal_Stable(t *testing.T) {
	a, _ := emit.Marshal(sampleDocument())
	b, _ := emit.Marshal(sampleDocument())
	if string(a) != string(b) {
		t.Error("two marshals of equal documents differ")
	}
}

func TestWrite(t *testing.T) {
	t.Run("overwrites", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/out/tokens.json", "stale", 0644)

		if err := emit.Write(mfs, "/out/tokens.json", []byte("fresh"), emit.Options{}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, _ := mfs.ReadFile("/out/tokens.json")
		if string(got) != "fresh" {
			t.Errorf("content = %q, want %q", got, "fresh")
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.SetStrictDirs(true)

		err := emit.Write(mfs, "/missing/tokens.json", []byte("x"), emit.Options{})
		if !errors.Is(err, emit.ErrWrite) {
			t.Fatalf("expected ErrWrite, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected wrapped ErrNotExist, got %v", err)
		}
	})

	t.Run("mkdir creates directory", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.SetStrictDirs(true)

		err := emit.Write(mfs, "/missing/tokens.json", []byte("x"), emit.Options{MkdirAll: true})
		if err != nil {
			t.Fatalf("Write: %v", err)
		}
		if !mfs.Exists("/missing/tokens.json") {
			t.Error("expected file to exist")
		}
	})

	t.Run("atomic leaves no temp file", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/out/tokens.json", "stale", 0644)

		if err := emit.Write(mfs, "/out/tokens.json", []byte("fresh"), emit.Options{Atomic: true}); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, _ := mfs.ReadFile("/out/tokens.json")
		if string(got) != "fresh" {
			t.Errorf("content = %q, want %q", got, "fresh")
		}
		for path := range mfs.ListFiles() {
			if strings.HasSuffix(path, ".tmp") {
				t.Errorf("temp file left behind: %s", path)
			}
		}
	})

	t.Run("atomic failure keeps previous artifact", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/out/tokens.json", "previous", 0644)
		mfs.FailWrites("/out/tokens.json", errors.New("read-only"))

		err := emit.Write(mfs, "/out/tokens.json", []byte("fresh"), emit.Options{Atomic: true})
		if !errors.Is(err, emit.ErrWrite) {
			t.Fatalf("expected ErrWrite, got %v", err)
		}
		got, _ := mfs.ReadFile("/out/tokens.json")
		if string(got) != "previous" {
			t.Errorf("content = %q, want previous artifact intact", got)
		}
		if mfs.Exists("/out/.tokens.json.tmp") {
			t.Error("temp file left behind after failed rename")
		}
	})
}

func TestUpToDate(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/out/tokens.json", "same", 0644)

	if !emit.UpToDate(mfs, "/out/tokens.json", []byte("same")) {
		t.Error("expected up to date")
	}
	if emit.UpToDate(mfs, "/out/tokens.json", []byte("different")) {
		t.Error("expected stale")
	}
	if emit.UpToDate(mfs, "/out/none.json", []byte("same")) {
		t.Error("expected missing file to be stale")
	}
}
