// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180deg", Rotate(math.Pi), Pt(3, 4), Pt(-3, -4)},
		{"rotate 180 degrees", RotateDegrees(180), Pt(1, 2), Pt(-1, -2)},
		{"translate then rotate", Translate(5, 5).Multiply(Rotate(math.Pi)), Pt(1, 2), Pt(4, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if got != tt.want {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateSnapsQuarterTurns(t *testing.T) {
	m := Rotate(math.Pi)
	if m.B != 0 || m.D != 0 || m.A != -1 || m.E != -1 {
		t.Errorf("Rotate(π) = %+v, want exact half turn", m)
	}
}

func TestHalfTurnIsInvolution(t *testing.T) {
	m := halfTurn(200, 300)
	for _, p := range []Point{{0, 0}, {12.5, 40}, {200, 300}, {100, 150}} {
		if got := m.TransformPoint(m.TransformPoint(p)); got != p {
			t.Errorf("halfTurn twice(%v) = %v", p, got)
		}
	}
	if c := m.TransformPoint(Pt(100, 150)); c != Pt(100, 150) {
		t.Errorf("center moved to %v", c)
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{Width: 100, Height: 40}
	if got, want := r.Inset(10, 5), (Rect{X: 10, Y: 5, Width: 80, Height: 30}); got != want {
		t.Errorf("Inset = %+v, want %+v", got, want)
	}
	// Over-insetting collapses to the center instead of going negative.
	got := r.Inset(60, 30)
	if got.Width != 0 || got.Height != 0 || got.Center() != r.Center() {
		t.Errorf("over-inset = %+v", got)
	}
}
