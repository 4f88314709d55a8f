// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gesture

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

type step struct {
	a    Action
	x, y float64
	ms   int
}

func run(d *Detector, steps []step) Gesture {
	var g Gesture
	for _, s := range steps {
		g = d.Feed(Sample{Action: s.a, X: s.x, Y: s.y, Time: at(s.ms)})
	}
	return g
}

func TestDetector(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
		kind  Kind
		dir   Direction
	}{
		{
			name:  "fling right",
			steps: []step{{Down, 10, 10, 0}, {Move, 60, 12, 40}, {Up, 90, 12, 60}},
			kind:  Fling,
			dir:   DirRight,
		},
		{
			name:  "fling left",
			steps: []step{{Down, 200, 50, 0}, {Move, 150, 55, 30}, {Up, 100, 55, 50}},
			kind:  Fling,
			dir:   DirLeft,
		},
		{
			name:  "fling up",
			steps: []step{{Down, 50, 300, 0}, {Move, 52, 200, 40}, {Up, 53, 120, 80}},
			kind:  Fling,
			dir:   DirUp,
		},
		{
			name:  "fling down",
			steps: []step{{Down, 50, 10, 0}, {Up, 40, 90, 50}},
			kind:  Fling,
			dir:   DirDown,
		},
		{
			name:  "tap",
			steps: []step{{Down, 10, 10, 0}, {Move, 12, 11, 30}, {Up, 13, 11, 90}},
			kind:  Tap,
		},
		{
			// Long drag that stops before release.
			name:  "slow release",
			steps: []step{{Down, 0, 0, 0}, {Move, 100, 0, 200}, {Move, 100, 0, 400}, {Up, 101, 0, 450}},
			kind:  None,
		},
		{
			name:  "up without down",
			steps: []step{{Up, 10, 10, 0}},
			kind:  None,
		},
		{
			name:  "cancelled",
			steps: []step{{Down, 0, 0, 0}, {Move, 100, 0, 20}, {Cancel, 100, 0, 25}, {Up, 200, 0, 30}},
			kind:  None,
		},
		{
			name:  "zero duration",
			steps: []step{{Down, 0, 0, 5}, {Up, 100, 0, 5}},
			kind:  None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := run(NewDetector(), tt.steps)
			if g.Kind != tt.kind || g.Direction != tt.dir {
				t.Errorf("got %v/%v, want %v/%v (v=%.1f,%.1f)", g.Kind, g.Direction, tt.kind, tt.dir, g.VelocityX, g.VelocityY)
			}
		})
	}
}

func TestDetectorVelocityUsesTrailingWindow(t *testing.T) {
	d := NewDetector()
	g := run(d, []step{
		{Down, 0, 0, 0},
		{Move, 10, 0, 500},
		{Move, 20, 0, 950},
		{Up, 70, 0, 1000},
	})
	if g.Kind != Fling {
		t.Fatalf("kind = %v, want Fling", g.Kind)
	}
	// Reference is the sample at 950ms: 50px in 50ms.
	if g.VelocityX < 999 || g.VelocityX > 1001 {
		t.Errorf("VelocityX = %v, want 1000", g.VelocityX)
	}
	if g.DX != 70 || g.DY != 0 {
		t.Errorf("travel = %v,%v, want 70,0", g.DX, g.DY)
	}
}

func TestDetectorThresholdOptions(t *testing.T) {
	steps := []step{{Down, 0, 0, 0}, {Up, 30, 0, 100}} // 300 px/s over 30px

	if g := run(NewDetector(WithMinVelocity(500)), steps); g.Kind != None {
		t.Errorf("MinVelocity 500: kind = %v, want None", g.Kind)
	}
	if g := run(NewDetector(WithMinDistance(40)), steps); g.Kind != Tap {
		t.Errorf("MinDistance 40: kind = %v, want Tap", g.Kind)
	}
	if g := run(NewDetector(WithMinVelocity(-1), WithMinDistance(-1)), steps); g.Kind != Fling {
		t.Errorf("negative options should be ignored: kind = %v", g.Kind)
	}
}

func TestDetectorReusable(t *testing.T) {
	d := NewDetector()
	fling := []step{{Down, 0, 0, 0}, {Up, 100, 0, 50}}
	for i := 0; i < 3; i++ {
		if g := run(d, fling); g.Kind != Fling {
			t.Fatalf("stroke %d: kind = %v", i, g.Kind)
		}
	}
}

func TestStrings(t *testing.T) {
	if Fling.String() != "Fling" || Kind(9).String() != "Unknown" {
		t.Error("Kind.String")
	}
	if DirUp.String() != "Up" || Up.String() != "Up" || Action(9).String() != "Unknown" {
		t.Error("Direction/Action String")
	}
}
