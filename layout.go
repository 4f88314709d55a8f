// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import "strings"

// Reference geometry. Every size scales from a card CardStandardHeight
// units tall.
const (
	CardStandardHeight  = 240.0
	CornerRadius        = 12.0
	FaceCardScaleFactor = 0.85
	TextStandardSize    = 14.0

	BorderStrokeWidth = 3.0
	CornerLineSpacing = 0.9
	cornerOffsetRatio = 0.5
)

// CornerGeometry returns the scale factor and corner radius for a viewport.
// scale = height / CardStandardHeight and radius = CornerRadius * scale.
// Both are zero for a degenerate viewport.
func CornerGeometry(vp Viewport) (scale, radius float64) {
	h := vp.normalized().Height
	scale = h / CardStandardHeight
	return scale, CornerRadius * scale
}

// Engine computes card layouts. It holds configuration only; every call to
// Layout is independent, so an Engine is safe for concurrent use.
type Engine struct {
	measurer  Measurer
	catalog   Catalog
	faceScale float64
}

// NewEngine creates a layout engine.
func NewEngine(opts ...EngineOption) *Engine {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Engine{
		measurer:  options.measurer,
		catalog:   options.catalog,
		faceScale: options.faceScale,
	}
}

var defaultEngine = NewEngine()

// LayoutCard lays out card with a default engine.
func LayoutCard(card Card, vp Viewport) Layout {
	return defaultEngine.Layout(card, vp)
}

// Layout returns the draw commands for card in vp.
//
// The first command is always the border. A face-down card adds the card
// back image. A face-up card adds the face image or pips, then the two
// corner indices.
func (e *Engine) Layout(card Card, vp Viewport) Layout {
	vp = vp.normalized()
	scale, radius := CornerGeometry(vp)
	bounds := vp.Bounds()

	out := Layout{
		Width:    vp.Width,
		Height:   vp.Height,
		Commands: make([]Command, 0, 16),
	}
	out.Commands = append(out.Commands, RoundedRect{
		Rect:        bounds,
		Radius:      radius,
		Style:       StyleFill | StyleStroke,
		Fill:        White,
		Stroke:      Black,
		StrokeWidth: BorderStrokeWidth,
		Clip:        true,
	})

	inner := bounds.Scaled(e.faceScale)
	if !card.FaceUp() {
		out.Commands = append(out.Commands, Image{Key: BackKey, Dest: inner, Role: RoleBack})
		return out
	}

	key := card.Key()
	switch {
	case IsFaceKey(key) && e.catalog.Has(key):
		out.Commands = append(out.Commands, Image{Key: key, Dest: inner, Role: RoleFace})
	default:
		if IsFaceKey(key) {
			Logger().Debug("cardface: face image unavailable, falling back to pips", "key", key)
		}
		out.Commands = e.appendPips(out.Commands, card, vp)
	}
	out.Commands = e.appendCorners(out.Commands, card, vp, scale, radius)
	return out
}

// appendPips emits one TextBlock per pip glyph.
func (e *Engine) appendPips(cmds []Command, card Card, vp Viewport) []Command {
	if !card.Suit().Valid() || !card.Rank().Valid() {
		return cmds
	}
	glyph := card.Suit().String()
	color := SuitColor(card.Suit())
	size := TextStandardSize * vp.Width * PipFontScale
	bw, bh := e.measurer.Bounds(glyph, size)
	center := vp.Center()
	flip := halfTurn(vp.Width, vp.Height)

	pip := func(p Point, rotation float64) TextBlock {
		return TextBlock{
			Text:        glyph,
			Origin:      p,
			Rotation:    rotation,
			FontSize:    size,
			Color:       color,
			Align:       AlignLeft,
			Anchor:      AnchorBaseline,
			Role:        RolePip,
			LineSpacing: 1,
			Width:       bw,
		}
	}

	for _, row := range PipRows(card.Rank()) {
		origin := Point{
			X: center.X - bw/2 - row.H*vp.Width,
			Y: center.Y + bh/2 - row.V*vp.Height,
		}
		points := []Point{origin}
		if row.H > 0 {
			points = append(points, Point{X: origin.X + 2*row.H*vp.Width, Y: origin.Y})
		}
		for _, p := range points {
			cmds = append(cmds, pip(p, 0))
		}
		if row.Mirrored {
			for _, p := range points {
				cmds = append(cmds, pip(flip.TransformPoint(p), 180))
			}
		}
	}
	return cmds
}

// appendCorners emits the top-left and bottom-right corner indices.
func (e *Engine) appendCorners(cmds []Command, card Card, vp Viewport, scale, radius float64) []Command {
	lines := make([]string, 0, 2)
	if r := card.Rank().String(); r != "" {
		lines = append(lines, r)
	}
	if s := card.Suit().String(); s != "" {
		lines = append(lines, s)
	}
	if len(lines) == 0 {
		return cmds
	}

	size := TextStandardSize * scale
	width := 0.0
	for _, l := range lines {
		if w := e.measurer.Advance(l, size); w > width {
			width = w
		}
	}
	offset := radius * cornerOffsetRatio
	corner := TextBlock{
		Text:        strings.Join(lines, "\n"),
		Origin:      Point{X: offset, Y: offset},
		FontSize:    size,
		Color:       SuitColor(card.Suit()),
		Align:       AlignCenter,
		Anchor:      AnchorTop,
		Role:        RoleCorner,
		LineSpacing: CornerLineSpacing,
		Width:       width,
	}
	opposite := corner
	opposite.Origin = Point{X: vp.Width - offset, Y: vp.Height - offset}
	opposite.Rotation = 180
	return append(cmds, corner, opposite)
}
