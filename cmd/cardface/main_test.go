// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/cardface"
)

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-rank", "queen", "-suit", "d", "-format", "json"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var l struct {
		Commands []struct {
			Kind string `json:"kind"`
		} `json:"commands"`
	}
	if err := json.Unmarshal(out.Bytes(), &l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(l.Commands) != 4 || l.Commands[1].Kind != "Image" {
		t.Errorf("commands = %+v", l.Commands)
	}
}

func TestRunTerm(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-rank", "3", "-suit", "♣", "-format", "term"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out.String(), "♣") != 5 {
		t.Errorf("term output:\n%s", out.String())
	}
}

func TestRunPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	if err := run([]string{"-rank", "8", "-suit", "h", "-width", "100", "-height", "150", "-output", path}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil || cfg.Width != 100 || cfg.Height != 150 {
		t.Errorf("PNG config = %+v, %v", cfg, err)
	}
}

func TestRunDeck(t *testing.T) {
	dir := t.TempDir()
	deck := filepath.Join(dir, "deck.toml")
	data := "[viewport]\nwidth = 80\nheight = 120\n\n[[card]]\nrank = \"A\"\nsuit = \"s\"\n\n[[card]]\nrank = \"K\"\nsuit = \"h\"\nface_up = false\n"
	if err := os.WriteFile(deck, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	outdir := filepath.Join(dir, "out")
	if err := run([]string{"-deck", deck, "-outdir", outdir}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"a_spade.png", "k_heart_back.png"} {
		if _, err := os.Stat(filepath.Join(outdir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-rank", "Z"},
		{"-suit", "stars"},
		{"-format", "gif"},
		{"-assets", "/does/not/exist"},
		{"-bogus"},
	} {
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Errorf("run(%v) succeeded", args)
		}
	}
}

func TestRunRasterToStdout(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-rank", "5", "-suit", "d", "-width", "60", "-height", "90", "-format", "raster"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	cfg, err := png.DecodeConfig(&out)
	if err != nil || cfg.Width != 60 || cfg.Height != 90 {
		t.Errorf("PNG config = %+v, %v", cfg, err)
	}
}

// textBackend records the command kinds it receives.
type textBackend struct {
	kinds []string
	src   cardface.ImageSource
}

func (b *textBackend) Begin(float64, float64) error { b.kinds = b.kinds[:0]; return nil }
func (b *textBackend) End() error                   { return nil }
func (b *textBackend) DrawRoundedRect(cardface.RoundedRect) error {
	b.kinds = append(b.kinds, "rect")
	return nil
}
func (b *textBackend) DrawText(cardface.TextBlock) error {
	b.kinds = append(b.kinds, "text")
	return nil
}
func (b *textBackend) DrawImage(cardface.Image) error {
	b.kinds = append(b.kinds, "image")
	return nil
}
func (b *textBackend) SetImageSource(src cardface.ImageSource) { b.src = src }
func (b *textBackend) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(b.kinds, ",")+"\n")
	return int64(n), err
}

func TestRunRegisteredBackend(t *testing.T) {
	var created *textBackend
	cardface.Register("kinds", func() cardface.Backend {
		created = &textBackend{}
		return created
	})
	t.Cleanup(func() { cardface.Unregister("kinds") })

	assetDir := t.TempDir()
	var out bytes.Buffer
	if err := run([]string{"-rank", "K", "-suit", "s", "-format", "kinds", "-assets", assetDir}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if created == nil {
		t.Fatal("registry factory not called")
	}
	if created.src == nil {
		t.Error("asset store not attached to the registered backend")
	}
	// The empty asset dir has no K♠ art: the court card falls back to zero
	// pips, leaving the border and both corners.
	if got := strings.TrimSpace(out.String()); got != "rect,text,text" {
		t.Errorf("output = %q", got)
	}
}

func TestUnknownFormatListsBackends(t *testing.T) {
	err := run([]string{"-format", "gif"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "raster") || !strings.Contains(err.Error(), "term") {
		t.Errorf("err = %v, want the registered backends listed", err)
	}
}
