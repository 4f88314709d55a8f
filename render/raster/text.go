// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/cardface"
)

// textBlock is a text block laid out in its own upright frame, with the
// anchor point at the origin.
type textBlock struct {
	x        []float64 // left edge of each line
	baseline []float64 // baseline y of each line
	min, max cardface.Point
}

// blockLayout positions the lines of t. Lines are aligned within t.Width,
// or within the widest line when Width is zero. Baselines are one line
// height apart, scaled by LineSpacing.
func blockLayout(t cardface.TextBlock, lines []string, face text.Face) textBlock {
	m := face.Metrics()
	spacing := t.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	lineHeight := m.LineHeight() * spacing

	advances := make([]float64, len(lines))
	width := t.Width
	widest := 0.0
	for i, line := range lines {
		advances[i] = face.Advance(line)
		widest = math.Max(widest, advances[i])
	}
	if width <= 0 {
		width = widest
	}

	first := 0.0
	if t.Anchor == cardface.AnchorTop {
		first = m.Ascent
	}

	bl := textBlock{
		x:        make([]float64, len(lines)),
		baseline: make([]float64, len(lines)),
		min:      cardface.Pt(0, first-m.Ascent),
		max:      cardface.Pt(width, 0),
	}
	for i := range lines {
		switch t.Align {
		case cardface.AlignCenter:
			bl.x[i] = (width - advances[i]) / 2
		case cardface.AlignRight:
			bl.x[i] = width - advances[i]
		}
		bl.baseline[i] = first + float64(i)*lineHeight
		bl.min.X = math.Min(bl.min.X, bl.x[i])
		bl.max.X = math.Max(bl.max.X, bl.x[i]+advances[i])
	}
	bl.max.Y = bl.baseline[len(lines)-1] + m.Descent

	bl.min = bl.min.Sub(cardface.Pt(glyphPad, glyphPad))
	bl.max = bl.max.Add(cardface.Pt(glyphPad, glyphPad))
	return bl
}
