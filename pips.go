// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

// Pip offsets as a fraction of the viewport size, measured from its center.
const (
	PipHOffset  = 0.165 // side columns
	PipVOffset1 = 0.100 // inner rows (9, 10)
	PipVOffset2 = 0.175 // upper/lower center row
	PipVOffset3 = 0.300 // outer rows

	// PipFontScale converts viewport width to pip font size:
	// size = TextStandardSize * width * PipFontScale.
	PipFontScale = 0.01
)

// PipRow is one row of the pip table: a glyph (h == 0) or a horizontally
// mirrored pair of glyphs (h > 0) placed at v above the center, plus the
// upside-down copy below the center when Mirrored is set.
type PipRow struct {
	Name     string
	H, V     float64
	Mirrored bool
	ranks    rankSet
}

// rankSet is a bitset of ranks.
type rankSet uint16

func ranksOf(rs ...Rank) rankSet {
	var s rankSet
	for _, r := range rs {
		s |= 1 << r
	}
	return s
}

func (s rankSet) has(r Rank) bool {
	return s&(1<<r) != 0
}

// pipTable lists every row in drawing order. A rank collects every row whose
// set contains it.
var pipTable = [...]PipRow{
	{Name: "center", H: 0, V: 0, ranks: ranksOf(Ace, Three, Five, Nine)},
	{Name: "side", H: PipHOffset, V: 0, ranks: ranksOf(Six, Seven, Eight)},
	{Name: "upper", H: 0, V: PipVOffset2, Mirrored: true, ranks: ranksOf(Two, Three, Seven, Eight, Ten)},
	{Name: "outer", H: PipHOffset, V: PipVOffset3, Mirrored: true, ranks: ranksOf(Four, Five, Six, Seven, Eight, Nine, Ten)},
	{Name: "inner", H: PipHOffset, V: PipVOffset1, Mirrored: true, ranks: ranksOf(Nine, Ten)},
}

// PipRows returns the rows contributing to rank r, with the mirroring flag
// resolved for that rank. Seven keeps only the upper glyph of the
// upper/lower row, as on a real seven.
func PipRows(r Rank) []PipRow {
	var rows []PipRow
	for _, row := range pipTable {
		if !row.ranks.has(r) {
			continue
		}
		if row.Name == "upper" && r == Seven {
			row.Mirrored = false
		}
		rows = append(rows, row)
	}
	return rows
}

// Glyphs returns the number of glyphs the row draws.
func (p PipRow) Glyphs() int {
	n := 1
	if p.H > 0 {
		n = 2
	}
	if p.Mirrored {
		n *= 2
	}
	return n
}

// PipCount returns the number of pips drawn for rank r.
// Court cards and an unset rank have none.
func PipCount(r Rank) int {
	n := 0
	for _, row := range PipRows(r) {
		n += row.Glyphs()
	}
	return n
}
