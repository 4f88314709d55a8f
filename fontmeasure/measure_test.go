// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmeasure

import (
	"errors"
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/cardface"
)

func newTestMeasurer(t *testing.T) *Measurer {
	t.Helper()
	m, err := New(goregular.TTF)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewEmptyData(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("New(nil) = %v, want ErrEmptyFontData", err)
	}
	if _, err := New([]byte("not a font")); err == nil {
		t.Error("New(garbage) succeeded")
	}
}

func TestSuitGlyphsPresent(t *testing.T) {
	m := newTestMeasurer(t)
	for _, s := range cardface.Suits() {
		for _, r := range s.String() {
			if !m.HasGlyph(r) {
				t.Errorf("Go Regular lacks %q", r)
			}
		}
	}
}

func TestBoundsPositiveAndScaling(t *testing.T) {
	m := newTestMeasurer(t)
	for _, s := range cardface.Suits() {
		w1, h1 := m.Bounds(s.String(), 20)
		w2, h2 := m.Bounds(s.String(), 40)
		if w1 <= 0 || h1 <= 0 {
			t.Fatalf("Bounds(%s, 20) = %v x %v, want positive", s, w1, h1)
		}
		// Unhinted outlines scale linearly, up to 26.6 rounding.
		if math.Abs(w2-2*w1) > 1 || math.Abs(h2-2*h1) > 1 {
			t.Errorf("Bounds(%s) 20→40: %vx%v → %vx%v, want roughly doubled", s, w1, h1, w2, h2)
		}
		if h1 > 20 {
			t.Errorf("Bounds(%s, 20) height %v exceeds the em size", s, h1)
		}
	}
}

func TestZeroInputs(t *testing.T) {
	m := newTestMeasurer(t)
	if w, h := m.Bounds("", 12); w != 0 || h != 0 {
		t.Errorf("Bounds(\"\") = %v, %v", w, h)
	}
	if w, h := m.Bounds("♥", 0); w != 0 || h != 0 {
		t.Errorf("Bounds size 0 = %v, %v", w, h)
	}
	if a := m.Advance("10", -1); a != 0 {
		t.Errorf("Advance negative size = %v", a)
	}
	if lh := m.LineHeight(0); lh != 0 {
		t.Errorf("LineHeight(0) = %v", lh)
	}
}

func TestAdvanceAndLineHeight(t *testing.T) {
	m := newTestMeasurer(t)
	one := m.Advance("1", 14)
	ten := m.Advance("10", 14)
	if one <= 0 || ten <= one {
		t.Errorf("Advance: 1=%v 10=%v", one, ten)
	}
	if lh := m.LineHeight(14); lh < 14 || lh > 28 {
		t.Errorf("LineHeight(14) = %v, want between 14 and 28", lh)
	}
}

func TestFacesCached(t *testing.T) {
	m, err := New(goregular.TTF, WithMaxFaces(2))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		m.Bounds("♠", 10)
	}
	if st := m.faces.Stats(); st.Misses != 1 || st.Len != 1 {
		t.Errorf("face cache stats = %+v, want a single face", st)
	}
	m.Bounds("♠", 11)
	m.Bounds("♠", 12)
	m.Bounds("♠", 13)
	if n := m.faces.Len(); n > 2 {
		t.Errorf("face cache holds %d faces, limit 2", n)
	}
}

func TestConcurrentMeasure(t *testing.T) {
	m := newTestMeasurer(t)
	want, _ := m.Bounds("♦", 18)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, _ := m.Bounds("♦", 18); got != want {
				t.Errorf("concurrent Bounds = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestEngineWithFontMeasurer(t *testing.T) {
	m, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	e := cardface.NewEngine(cardface.WithMeasurer(m))
	vp := cardface.Viewport{Width: 200, Height: 300}
	l := e.Layout(cardface.NewCard(cardface.Ace, cardface.Hearts), vp)

	pips := l.Pips()
	if len(pips) != 1 {
		t.Fatalf("pips = %d, want 1", len(pips))
	}
	bw, bh := m.Bounds("♥", pips[0].FontSize)
	if math.Abs(pips[0].Origin.X-(100-bw/2)) > 1e-9 || math.Abs(pips[0].Origin.Y-(150+bh/2)) > 1e-9 {
		t.Errorf("ace pip origin = %+v, want centered on (100,150) with bounds %vx%v", pips[0].Origin, bw, bh)
	}
}
