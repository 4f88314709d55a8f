// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cardface package.
var (
	// ErrInvalidRank is returned when a rank string is not one of A, 2..10, J, Q, K.
	ErrInvalidRank = errors.New("cardface: invalid rank")

	// ErrInvalidSuit is returned when a suit string is not one of ♥ ♦ ♠ ♣.
	ErrInvalidSuit = errors.New("cardface: invalid suit")
)

// Rank is a card rank. The zero value means "unset".
type Rank uint8

// Ranks in deck order.
const (
	NoRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// rankNames maps Rank values to their corner index text.
var rankNames = [...]string{
	NoRank: "",
	Ace:    "A",
	Two:    "2",
	Three:  "3",
	Four:   "4",
	Five:   "5",
	Six:    "6",
	Seven:  "7",
	Eight:  "8",
	Nine:   "9",
	Ten:    "10",
	Jack:   "J",
	Queen:  "Q",
	King:   "K",
}

// String returns the corner index text of the rank ("A", "10", "K").
// Unset and out-of-range ranks return "".
func (r Rank) String() string {
	if int(r) < len(rankNames) {
		return rankNames[r]
	}
	return ""
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// IsFace reports whether r is a Jack, Queen or King.
func (r Rank) IsFace() bool {
	return r >= Jack && r <= King
}

// ParseRank parses a corner index string ("A", "2".."10", "J", "Q", "K").
func ParseRank(s string) (Rank, error) {
	for r := Ace; r <= King; r++ {
		if rankNames[r] == s {
			return r, nil
		}
	}
	return NoRank, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}

// Ranks returns all valid ranks in deck order.
func Ranks() []Rank {
	out := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		out = append(out, r)
	}
	return out
}

// Suit is a card suit. The zero value means "unset".
type Suit uint8

// Suits in the order used by face image keys.
const (
	NoSuit Suit = iota
	Hearts
	Diamonds
	Spades
	Clubs
)

// suitGlyphs maps Suit values to the glyph drawn in corners and pips.
var suitGlyphs = [...]string{
	NoSuit:   "",
	Hearts:   "♥",
	Diamonds: "♦",
	Spades:   "♠",
	Clubs:    "♣",
}

// suitNames maps Suit values to plain names, used for asset file names.
var suitNames = [...]string{
	NoSuit:   "",
	Hearts:   "heart",
	Diamonds: "diamond",
	Spades:   "spade",
	Clubs:    "club",
}

// String returns the suit glyph ("♥", "♦", "♠", "♣").
func (s Suit) String() string {
	if int(s) < len(suitGlyphs) {
		return suitGlyphs[s]
	}
	return ""
}

// Name returns the singular English name of the suit ("heart", "spade").
func (s Suit) Name() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return ""
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// IsRed reports whether the suit is printed in red (hearts and diamonds).
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit parses a suit glyph ("♥", "♦", "♠", "♣").
func ParseSuit(str string) (Suit, error) {
	for s := Hearts; s <= Clubs; s++ {
		if suitGlyphs[s] == str {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("%w: %q", ErrInvalidSuit, str)
}

// Suits returns all valid suits.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// Card is the state of a single card: rank, suit and whether it is face up.
//
// The zero value is a face-up card with no rank or suit, the same as
// [DefaultCard]. Invalid assignments through the setters are rejected and
// leave the previous value in place.
type Card struct {
	rank     Rank
	suit     Suit
	faceDown bool
}

// NewCard returns a face-up card. Invalid rank or suit values are left unset.
func NewCard(rank Rank, suit Suit) Card {
	c := DefaultCard()
	c.SetRank(rank)
	c.SetSuit(suit)
	return c
}

// DefaultCard returns a face-up card with no rank or suit.
func DefaultCard() Card {
	return Card{}
}

// Rank returns the card rank, NoRank if unset.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card suit, NoSuit if unset.
func (c Card) Suit() Suit { return c.suit }

// FaceUp reports whether the card shows its face.
func (c Card) FaceUp() bool { return !c.faceDown }

// SetRank sets the rank if r is valid and reports whether it was accepted.
func (c *Card) SetRank(r Rank) bool {
	if !r.Valid() {
		return false
	}
	c.rank = r
	return true
}

// SetSuit sets the suit if s is valid and reports whether it was accepted.
func (c *Card) SetSuit(s Suit) bool {
	if !s.Valid() {
		return false
	}
	c.suit = s
	return true
}

// SetRankString parses and sets the rank. Invalid strings are ignored.
func (c *Card) SetRankString(s string) bool {
	r, err := ParseRank(s)
	if err != nil {
		return false
	}
	return c.SetRank(r)
}

// SetSuitString parses and sets the suit. Invalid strings are ignored.
func (c *Card) SetSuitString(s string) bool {
	suit, err := ParseSuit(s)
	if err != nil {
		return false
	}
	return c.SetSuit(suit)
}

// SetFaceUp sets the face-up state.
func (c *Card) SetFaceUp(up bool) {
	c.faceDown = !up
}

// Flip toggles the face-up state.
func (c *Card) Flip() {
	c.faceDown = !c.faceDown
}

// Key returns the asset key of the card face, rank followed by suit glyph
// ("K♥"). It is empty unless both rank and suit are set.
func (c Card) Key() string {
	if !c.rank.Valid() || !c.suit.Valid() {
		return ""
	}
	return c.rank.String() + c.suit.String()
}

// String returns the card key, or "??" style placeholders for unset fields.
func (c Card) String() string {
	r, s := c.rank.String(), c.suit.String()
	if r == "" {
		r = "?"
	}
	if s == "" {
		s = "?"
	}
	if c.faceDown {
		return r + s + " (down)"
	}
	return r + s
}
