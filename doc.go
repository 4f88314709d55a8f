// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cardface computes the face layout of a playing card.
//
// # Overview
//
// cardface turns a card state (rank, suit, face-up) and a viewport size into
// an ordered list of declarative draw commands: a rounded border, corner
// indices, suit pips and image placements. The package never renders
// anything itself; a [Backend] consumes the commands and owns pixels, fonts
// and bitmaps.
//
// # Quick Start
//
//	import "github.com/gogpu/cardface"
//
//	card := cardface.NewCard(cardface.Seven, cardface.Spades)
//	layout := cardface.NewEngine().Layout(card, cardface.Viewport{Width: 200, Height: 300})
//
//	for _, cmd := range layout.Commands {
//	    fmt.Println(cmd.Kind())
//	}
//
//	// Render through a registered backend
//	import _ "github.com/gogpu/cardface/render/raster"
//
//	b, _ := cardface.NewBackend("raster")
//	_ = layout.Playback(b)
//
// # Layout Model
//
// Every layout starts with exactly one border [RoundedRect]. A face-down
// card adds one [Image] for the card back. A face-up card adds either one
// face [Image] (J, Q, K with an available asset) or a set of pip
// [TextBlock]s, followed by two corner [TextBlock]s.
//
// All geometry derives from the viewport:
//   - scale = height / 240 (the reference card height)
//   - corner radius = 12 * scale
//   - corner font size = 14 * scale
//   - pip font size = 14 * width * 0.01
//
// # Coordinate System
//
// Uses the same convention as gg:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotations in degrees, clockwise on screen
//
// # Thread Safety
//
// [Engine] holds no per-card state and is safe for concurrent use.
// Backends are single-use and not safe for concurrent use.
package cardface
