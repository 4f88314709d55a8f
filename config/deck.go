// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/cardface"
)

// Default viewport for deck files without a [viewport] table.
const (
	DefaultWidth  = 200
	DefaultHeight = 300
)

// ErrEmptyDeck is returned for a deck file without any [[card]] entry.
var ErrEmptyDeck = errors.New("config: deck has no cards")

// Deck is a TOML deck file:
//
//	[viewport]
//	width = 200
//	height = 300
//
//	[[card]]
//	rank = "K"
//	suit = "hearts"
//
//	[[card]]
//	rank = "7"
//	suit = "♠"
//	face_up = false
//	output = "seven.png"
type Deck struct {
	Viewport ViewportSpec `toml:"viewport"`
	Cards    []CardSpec   `toml:"card"`
}

// ViewportSpec is the [viewport] table.
type ViewportSpec struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// CardSpec is one [[card]] entry. FaceUp defaults to true when omitted.
type CardSpec struct {
	Rank   string `toml:"rank"`
	Suit   string `toml:"suit"`
	FaceUp *bool  `toml:"face_up"`
	Output string `toml:"output"`
}

// Card converts the entry to a card. Unlike [Attributes.Apply], a value
// that does not parse is an error: deck files are authored, not streamed.
func (s CardSpec) Card() (cardface.Card, error) {
	c := cardface.DefaultCard()
	if s.Rank != "" {
		r, err := ParseRank(s.Rank)
		if err != nil {
			return c, err
		}
		c.SetRank(r)
	}
	if s.Suit != "" {
		suit, err := ParseSuit(s.Suit)
		if err != nil {
			return c, err
		}
		c.SetSuit(suit)
	}
	if s.FaceUp != nil {
		c.SetFaceUp(*s.FaceUp)
	}
	return c, nil
}

// OutputName returns Output, or a file name derived from the card.
func (s CardSpec) OutputName(index int) string {
	if s.Output != "" {
		return s.Output
	}
	c, err := s.Card()
	if err != nil || c.Key() == "" {
		return fmt.Sprintf("card%02d.png", index)
	}
	name := c.Rank().String() + "_" + c.Suit().Name()
	if !c.FaceUp() {
		name += "_back"
	}
	return strings.ToLower(name) + ".png"
}

// Size returns the viewport, applying defaults for missing dimensions.
func (d *Deck) Size() cardface.Viewport {
	vp := cardface.Viewport{Width: d.Viewport.Width, Height: d.Viewport.Height}
	if vp.Width <= 0 {
		vp.Width = DefaultWidth
	}
	if vp.Height <= 0 {
		vp.Height = DefaultHeight
	}
	return vp
}

// Resolve converts every entry to a card.
func (d *Deck) Resolve() ([]cardface.Card, error) {
	cards := make([]cardface.Card, 0, len(d.Cards))
	for i, spec := range d.Cards {
		c, err := spec.Card()
		if err != nil {
			return nil, fmt.Errorf("config: card %d: %w", i, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// ParseDeck decodes a TOML deck. Unknown keys are rejected.
func ParseDeck(data []byte) (*Deck, error) {
	var d Deck
	md, err := toml.Decode(string(data), &d)
	if err != nil {
		return nil, fmt.Errorf("config: parse deck: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown deck keys: %s", strings.Join(keys, ", "))
	}
	if len(d.Cards) == 0 {
		return nil, ErrEmptyDeck
	}
	if _, err := d.Resolve(); err != nil {
		return nil, err
	}
	return &d, nil
}

// LoadDeck reads and parses a deck file.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read deck: %w", err)
	}
	return ParseDeck(data)
}
