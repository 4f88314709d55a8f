// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import (
	"encoding/json"
	"fmt"
)

// Layout is the ordered list of draw commands for one card in one viewport.
// A Layout is immutable once returned and can be played back any number of
// times, from any goroutine.
type Layout struct {
	Width, Height float64
	Commands      []Command
}

// Border returns the border command. ok is false only for a zero Layout.
func (l Layout) Border() (rr RoundedRect, ok bool) {
	for _, c := range l.Commands {
		if r, isRect := c.(RoundedRect); isRect {
			return r, true
		}
	}
	return RoundedRect{}, false
}

// Texts returns the text blocks with the given role, in order.
func (l Layout) Texts(role TextRole) []TextBlock {
	var out []TextBlock
	for _, c := range l.Commands {
		if t, ok := c.(TextBlock); ok && t.Role == role {
			out = append(out, t)
		}
	}
	return out
}

// Pips returns the pip text blocks, one per glyph.
func (l Layout) Pips() []TextBlock { return l.Texts(RolePip) }

// Corners returns the corner index text blocks.
func (l Layout) Corners() []TextBlock { return l.Texts(RoleCorner) }

// Images returns the image commands, in order.
func (l Layout) Images() []Image {
	var out []Image
	for _, c := range l.Commands {
		if img, ok := c.(Image); ok {
			out = append(out, img)
		}
	}
	return out
}

// Count returns the number of commands of the given kind.
func (l Layout) Count(kind CommandKind) int {
	n := 0
	for _, c := range l.Commands {
		if c.Kind() == kind {
			n++
		}
	}
	return n
}

// Playback replays the layout to a backend: Begin, every command in order,
// then End. It stops at the first error.
func (l Layout) Playback(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}
	if err := b.Begin(l.Width, l.Height); err != nil {
		return fmt.Errorf("cardface: backend begin: %w", err)
	}
	for i, c := range l.Commands {
		var err error
		switch cmd := c.(type) {
		case RoundedRect:
			err = b.DrawRoundedRect(cmd)
		case TextBlock:
			err = b.DrawText(cmd)
		case Image:
			err = b.DrawImage(cmd)
		default:
			err = &UnknownCommandError{Index: i, Kind: c.Kind()}
		}
		if err != nil {
			return fmt.Errorf("cardface: command %d (%s): %w", i, c.Kind(), err)
		}
	}
	if err := b.End(); err != nil {
		return fmt.Errorf("cardface: backend end: %w", err)
	}
	return nil
}

// commandJSON tags each command with its kind.
type commandJSON struct {
	Kind    CommandKind `json:"kind"`
	Command Command     `json:"command"`
}

// MarshalJSON encodes the layout with kind-tagged commands.
func (l Layout) MarshalJSON() ([]byte, error) {
	cmds := make([]commandJSON, len(l.Commands))
	for i, c := range l.Commands {
		cmds[i] = commandJSON{Kind: c.Kind(), Command: c}
	}
	return json.Marshal(struct {
		Width    float64       `json:"width"`
		Height   float64       `json:"height"`
		Commands []commandJSON `json:"commands"`
	}{l.Width, l.Height, cmds})
}
