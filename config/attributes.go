// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config maps declarative attributes onto cards.
//
// Attributes are the string key/value pairs a host reads from markup, query
// strings or deck files. Values are matched case-insensitively and accept
// the common spellings of ranks and suits:
//
//	attrs := config.Attributes{"rank": "king", "suit": "hearts", "faceUp": "false"}
//	card := cardface.DefaultCard()
//	attrs.Apply(&card) // K♥, face down
//
// Invalid values are ignored and the card keeps its previous value, the same
// way the card setters behave.
package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/cardface"
)

// Attribute names.
const (
	AttrRank   = "rank"
	AttrSuit   = "suit"
	AttrFaceUp = "faceUp"
)

// Attributes is a set of named card attributes.
type Attributes map[string]string

var rankAliases = map[string]cardface.Rank{
	"a": cardface.Ace, "ace": cardface.Ace, "1": cardface.Ace,
	"2": cardface.Two, "two": cardface.Two,
	"3": cardface.Three, "three": cardface.Three,
	"4": cardface.Four, "four": cardface.Four,
	"5": cardface.Five, "five": cardface.Five,
	"6": cardface.Six, "six": cardface.Six,
	"7": cardface.Seven, "seven": cardface.Seven,
	"8": cardface.Eight, "eight": cardface.Eight,
	"9": cardface.Nine, "nine": cardface.Nine,
	"10": cardface.Ten, "ten": cardface.Ten, "t": cardface.Ten,
	"j": cardface.Jack, "jack": cardface.Jack,
	"q": cardface.Queen, "queen": cardface.Queen,
	"k": cardface.King, "king": cardface.King,
}

var suitAliases = map[string]cardface.Suit{
	"♥": cardface.Hearts, "♡": cardface.Hearts, "h": cardface.Hearts, "heart": cardface.Hearts, "hearts": cardface.Hearts,
	"♦": cardface.Diamonds, "♢": cardface.Diamonds, "d": cardface.Diamonds, "diamond": cardface.Diamonds, "diamonds": cardface.Diamonds,
	"♠": cardface.Spades, "♤": cardface.Spades, "s": cardface.Spades, "spade": cardface.Spades, "spades": cardface.Spades,
	"♣": cardface.Clubs, "♧": cardface.Clubs, "c": cardface.Clubs, "club": cardface.Clubs, "clubs": cardface.Clubs,
}

// fold normalizes a value for alias lookup. A Caser keeps state, so one is
// created per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseRank accepts the canonical rank symbols and their common spellings
// ("ace", "k", "Ten", ...).
func ParseRank(s string) (cardface.Rank, error) {
	if r, ok := rankAliases[fold(s)]; ok {
		return r, nil
	}
	return cardface.NoRank, fmt.Errorf("%w: %q", cardface.ErrInvalidRank, s)
}

// ParseSuit accepts suit glyphs (filled or outlined), names and initials.
func ParseSuit(s string) (cardface.Suit, error) {
	if suit, ok := suitAliases[fold(s)]; ok {
		return suit, nil
	}
	return cardface.NoSuit, fmt.Errorf("%w: %q", cardface.ErrInvalidSuit, s)
}

// ParseFaceUp accepts strconv booleans plus "up"/"down" and "yes"/"no".
func ParseFaceUp(s string) (bool, error) {
	switch v := fold(s); v {
	case "up", "yes", "y", "on":
		return true, nil
	case "down", "no", "n", "off":
		return false, nil
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("config: invalid faceUp %q", s)
		}
		return b, nil
	}
}

// canonicalName maps attribute spellings (faceUp, face_up, face-up) to the
// attribute constants.
func canonicalName(name string) string {
	n := strings.NewReplacer("_", "", "-", "").Replace(fold(name))
	switch n {
	case "rank":
		return AttrRank
	case "suit":
		return AttrSuit
	case "faceup":
		return AttrFaceUp
	}
	return ""
}

// attrOrder is the order Apply assigns attributes in.
var attrOrder = [...]string{AttrRank, AttrSuit, AttrFaceUp}

// Apply sets the recognised attributes on c and returns how many were
// applied. Unknown names and invalid values are skipped. Spellings of one
// attribute ("faceUp", "face_up") that disagree are skipped as well, so the
// result never depends on map order.
func (a Attributes) Apply(c *cardface.Card) int {
	values := make(map[string]string, len(attrOrder))
	conflicts := make(map[string]bool)
	for _, name := range slices.Sorted(maps.Keys(a)) {
		attr := canonicalName(name)
		if attr == "" {
			cardface.Logger().Debug("config: unknown attribute", "name", name)
			continue
		}
		if prev, seen := values[attr]; seen && fold(prev) != fold(a[name]) {
			conflicts[attr] = true
		}
		values[attr] = a[name]
	}

	n := 0
	for _, attr := range attrOrder {
		value, ok := values[attr]
		if !ok {
			continue
		}
		if conflicts[attr] {
			cardface.Logger().Debug("config: conflicting spellings ignored", "name", attr)
			continue
		}
		var err error
		switch attr {
		case AttrRank:
			var r cardface.Rank
			if r, err = ParseRank(value); err == nil {
				c.SetRank(r)
			}
		case AttrSuit:
			var s cardface.Suit
			if s, err = ParseSuit(value); err == nil {
				c.SetSuit(s)
			}
		case AttrFaceUp:
			var up bool
			if up, err = ParseFaceUp(value); err == nil {
				c.SetFaceUp(up)
			}
		}
		if err != nil {
			cardface.Logger().Debug("config: attribute ignored", "name", attr, "value", value, "err", err)
			continue
		}
		n++
	}
	return n
}

// Card returns a default card with the attributes applied.
func (a Attributes) Card() cardface.Card {
	c := cardface.DefaultCard()
	a.Apply(&c)
	return c
}

// FromCard returns the attributes describing c. Unset fields are omitted.
func FromCard(c cardface.Card) Attributes {
	a := Attributes{AttrFaceUp: strconv.FormatBool(c.FaceUp())}
	if c.Rank().Valid() {
		a[AttrRank] = c.Rank().String()
	}
	if c.Suit().Valid() {
		a[AttrSuit] = c.Suit().String()
	}
	return a
}
