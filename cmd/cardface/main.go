// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command cardface lays out and renders playing cards.
//
//	cardface -rank K -suit hearts -output king.png
//	cardface -rank 7 -suit s -format term
//	cardface -rank Q -suit d -format json
//	cardface -deck deck.toml -outdir out/
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/assets"
	"github.com/gogpu/cardface/config"
	"github.com/gogpu/cardface/fontmeasure"
	_ "github.com/gogpu/cardface/render/raster" // register "raster"
	_ "github.com/gogpu/cardface/render/term"   // register "term"
)

type options struct {
	rank, suit string
	faceDown   bool
	width      float64
	height     float64
	output     string
	format     string
	deck       string
	outdir     string
	assetDir   string
	fontPath   string
	verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("cardface: %v", err)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("cardface", flag.ContinueOnError)
	fs.StringVar(&o.rank, "rank", "A", "card rank (A, 2-10, J, Q, K or a name)")
	fs.StringVar(&o.suit, "suit", "spades", "card suit (glyph, name or initial)")
	fs.BoolVar(&o.faceDown, "face-down", false, "show the card back")
	fs.Float64Var(&o.width, "width", config.DefaultWidth, "viewport width")
	fs.Float64Var(&o.height, "height", config.DefaultHeight, "viewport height")
	fs.StringVar(&o.output, "output", "card.png", "output file for -format png")
	fs.StringVar(&o.format, "format", "png", "output format: png, json or a registered backend (term, raster)")
	fs.StringVar(&o.deck, "deck", "", "render every card of a TOML deck file")
	fs.StringVar(&o.outdir, "outdir", ".", "output directory for -deck")
	fs.StringVar(&o.assetDir, "assets", "", "directory with face and back images")
	fs.StringVar(&o.fontPath, "font", "", "TrueType/OpenType font for metrics and text")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	err := fs.Parse(args)
	return o, err
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	cardface.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	r, err := newRenderer(o)
	if err != nil {
		return err
	}

	if o.deck != "" {
		return r.renderDeck(o.deck, o.outdir)
	}

	card, err := cardFromFlags(o)
	if err != nil {
		return err
	}
	vp := cardface.Viewport{Width: o.width, Height: o.height}
	switch o.format {
	case "png":
		if err := r.renderPNG(card, vp, o.output); err != nil {
			return err
		}
		log.Printf("%s saved to %s (%.0fx%.0f)", card, o.output, o.width, o.height)
		return nil
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r.engine.Layout(card, vp))
	default:
		return r.renderTo(o.format, card, vp, stdout)
	}
}

// backendName maps -format values to registered backend names.
func backendName(format string) string {
	if format == "png" {
		return "raster"
	}
	return format
}

func cardFromFlags(o options) (cardface.Card, error) {
	rank, err := config.ParseRank(o.rank)
	if err != nil {
		return cardface.Card{}, err
	}
	suit, err := config.ParseSuit(o.suit)
	if err != nil {
		return cardface.Card{}, err
	}
	c := cardface.NewCard(rank, suit)
	c.SetFaceUp(!o.faceDown)
	return c, nil
}

// renderer holds the engine and the raster dependencies shared by every
// card rendered in one run.
type renderer struct {
	engine *cardface.Engine
	store  *assets.Store
	font   *text.FontSource
}

func newRenderer(o options) (*renderer, error) {
	r := &renderer{}
	engineOpts := []cardface.EngineOption{}

	var m *fontmeasure.Measurer
	if o.fontPath != "" {
		data, err := os.ReadFile(o.fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		if m, err = fontmeasure.New(data); err != nil {
			return nil, err
		}
		if r.font, err = text.NewFontSource(data); err != nil {
			return nil, fmt.Errorf("load font: %w", err)
		}
	} else {
		var err error
		if m, err = fontmeasure.Default(); err != nil {
			return nil, err
		}
	}
	engineOpts = append(engineOpts, cardface.WithMeasurer(m))

	if o.assetDir != "" {
		info, err := os.Stat(o.assetDir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", o.assetDir)
		}
		r.store = assets.NewStore(os.DirFS(o.assetDir))
		engineOpts = append(engineOpts, cardface.WithCatalog(r.store))
	}
	r.engine = cardface.NewEngine(engineOpts...)
	return r, nil
}

// fontBackend is implemented by backends that draw text with a font source.
type fontBackend interface {
	SetFontSource(src *text.FontSource)
}

// backend creates a registered backend by name and attaches the card art
// and font of this run.
func (r *renderer) backend(format string) (cardface.Backend, error) {
	b, err := cardface.NewBackend(backendName(format))
	if err != nil {
		return nil, fmt.Errorf("format %q: %w (registered: %s)", format, err, strings.Join(cardface.Backends(), ", "))
	}
	if ib, ok := b.(cardface.ImageBackend); ok && r.store != nil {
		ib.SetImageSource(r.store)
	}
	if fb, ok := b.(fontBackend); ok && r.font != nil {
		fb.SetFontSource(r.font)
	}
	return b, nil
}

// renderTo plays the card into the named backend and writes its output.
func (r *renderer) renderTo(format string, card cardface.Card, vp cardface.Viewport, w io.Writer) error {
	b, err := r.backend(format)
	if err != nil {
		return err
	}
	wb, ok := b.(cardface.WriterBackend)
	if !ok {
		return fmt.Errorf("format %q cannot write to a stream", format)
	}
	if err := r.engine.Layout(card, vp).Playback(wb); err != nil {
		return err
	}
	_, err = wb.WriteTo(w)
	return err
}

func (r *renderer) renderPNG(card cardface.Card, vp cardface.Viewport, path string) error {
	b, err := r.backend("png")
	if err != nil {
		return err
	}
	fb, ok := b.(cardface.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot save files", backendName("png"))
	}
	if err := r.engine.Layout(card, vp).Playback(fb); err != nil {
		return err
	}
	return fb.SaveToFile(path)
}

func (r *renderer) renderDeck(path, outdir string) error {
	deck, err := config.LoadDeck(path)
	if err != nil {
		return err
	}
	cards, err := deck.Resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return err
	}
	vp := deck.Size()
	var errs []error
	for i, c := range cards {
		out := filepath.Join(outdir, deck.Cards[i].OutputName(i))
		if err := r.renderPNG(c, vp, out); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", out, err))
			continue
		}
		cardface.Logger().Debug("cardface: rendered", "card", c.String(), "path", out)
	}
	log.Printf("rendered %d of %d cards to %s", len(cards)-len(errs), len(cards), outdir)
	return errors.Join(errs...)
}
