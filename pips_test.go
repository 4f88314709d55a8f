// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import "testing"

func TestPipRows(t *testing.T) {
	tests := []struct {
		rank Rank
		want []string
	}{
		{Ace, []string{"center"}},
		{Two, []string{"upper"}},
		{Three, []string{"center", "upper"}},
		{Four, []string{"outer"}},
		{Five, []string{"center", "outer"}},
		{Six, []string{"side", "outer"}},
		{Seven, []string{"side", "upper", "outer"}},
		{Eight, []string{"side", "upper", "outer"}},
		{Nine, []string{"center", "outer", "inner"}},
		{Ten, []string{"upper", "outer", "inner"}},
		{Jack, nil},
		{Queen, nil},
		{King, nil},
		{NoRank, nil},
	}
	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			rows := PipRows(tt.rank)
			if len(rows) != len(tt.want) {
				t.Fatalf("PipRows(%v) = %d rows, want %v", tt.rank, len(rows), tt.want)
			}
			for i, row := range rows {
				if row.Name != tt.want[i] {
					t.Errorf("row %d = %s, want %s", i, row.Name, tt.want[i])
				}
			}
		})
	}
}

func TestSevenUpperRowNotMirrored(t *testing.T) {
	for _, r := range []Rank{Two, Three, Seven, Eight, Ten} {
		for _, row := range PipRows(r) {
			if row.Name != "upper" {
				continue
			}
			if want := r != Seven; row.Mirrored != want {
				t.Errorf("rank %v upper row mirrored = %v, want %v", r, row.Mirrored, want)
			}
		}
	}
	// The shared table must not be modified by the per-rank override.
	if !pipTable[2].Mirrored {
		t.Error("pip table upper row lost its mirrored flag")
	}
}

func TestPipRowGlyphs(t *testing.T) {
	tests := []struct {
		row  PipRow
		want int
	}{
		{PipRow{H: 0}, 1},
		{PipRow{H: PipHOffset}, 2},
		{PipRow{H: 0, Mirrored: true}, 2},
		{PipRow{H: PipHOffset, Mirrored: true}, 4},
	}
	for _, tt := range tests {
		if got := tt.row.Glyphs(); got != tt.want {
			t.Errorf("%+v.Glyphs() = %d, want %d", tt.row, got, tt.want)
		}
	}
}
