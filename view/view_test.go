// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/config"
	"github.com/gogpu/cardface/gesture"
)

func newCountingView(t *testing.T, c cardface.Card) (*View, *atomic.Int32) {
	t.Helper()
	v := New(c, WithViewport(cardface.Viewport{Width: 200, Height: 300}))
	var n atomic.Int32
	v.OnInvalidate(func() { n.Add(1) })
	return v, &n
}

func TestSettersInvalidate(t *testing.T) {
	v, n := newCountingView(t, cardface.NewCard(cardface.Two, cardface.Clubs))

	if !v.SetRank(cardface.King) {
		t.Fatal("SetRank(King) rejected")
	}
	if !v.SetSuit(cardface.Hearts) {
		t.Fatal("SetSuit(Hearts) rejected")
	}
	v.SetFaceUp(false)
	v.Resize(cardface.Viewport{Width: 100, Height: 150})
	if got := n.Load(); got != 4 {
		t.Errorf("invalidations = %d, want 4", got)
	}
	if c := v.Card(); c.Key() != "K♥" || c.FaceUp() {
		t.Errorf("card = %v", c)
	}
	if vp := v.Viewport(); vp.Width != 100 {
		t.Errorf("viewport = %+v", vp)
	}
}

func TestInvalidValuesRejected(t *testing.T) {
	v, n := newCountingView(t, cardface.NewCard(cardface.Five, cardface.Diamonds))
	if v.SetRank(cardface.Rank(99)) || v.SetSuit(cardface.NoSuit) {
		t.Error("invalid value accepted")
	}
	if n.Load() != 0 {
		t.Errorf("invalidations = %d after rejected sets", n.Load())
	}
	if v.Card().Key() != "5♦" {
		t.Errorf("card = %v, want unchanged 5♦", v.Card())
	}
}

func TestNoOpChangesDoNotInvalidate(t *testing.T) {
	v, n := newCountingView(t, cardface.NewCard(cardface.Ace, cardface.Spades))
	v.SetRank(cardface.Ace)
	v.SetFaceUp(true)
	v.Resize(cardface.Viewport{Width: 200, Height: 300})
	v.SetCard(cardface.NewCard(cardface.Ace, cardface.Spades))
	if n.Load() != 0 {
		t.Errorf("invalidations = %d, want 0", n.Load())
	}
}

func TestHandleGesture(t *testing.T) {
	tests := []struct {
		g        gesture.Gesture
		consumed bool
		faceUp   bool
	}{
		{gesture.Gesture{Kind: gesture.Fling, Direction: gesture.DirLeft}, true, false},
		{gesture.Gesture{Kind: gesture.Tap}, false, true},
		{gesture.Gesture{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.g.Kind.String(), func(t *testing.T) {
			v, n := newCountingView(t, cardface.NewCard(cardface.Queen, cardface.Hearts))
			if got := v.HandleGesture(tt.g); got != tt.consumed {
				t.Errorf("HandleGesture = %v, want %v", got, tt.consumed)
			}
			if v.Card().FaceUp() != tt.faceUp {
				t.Errorf("faceUp = %v, want %v", v.Card().FaceUp(), tt.faceUp)
			}
			if tt.consumed && n.Load() != 1 {
				t.Errorf("invalidations = %d, want 1", n.Load())
			}
		})
	}
}

func TestPointerFlingFlipsTwice(t *testing.T) {
	v, _ := newCountingView(t, cardface.NewCard(cardface.Nine, cardface.Clubs))
	t0 := time.Unix(0, 0)
	fling := func(start time.Time) {
		v.Pointer(gesture.Sample{Action: gesture.Down, X: 10, Y: 100, Time: start})
		v.Pointer(gesture.Sample{Action: gesture.Move, X: 80, Y: 100, Time: start.Add(30 * time.Millisecond)})
		v.Pointer(gesture.Sample{Action: gesture.Up, X: 150, Y: 102, Time: start.Add(60 * time.Millisecond)})
	}

	fling(t0)
	if v.Card().FaceUp() {
		t.Fatal("first fling did not flip to face down")
	}
	if imgs := v.Layout().Images(); len(imgs) != 1 || imgs[0].Key != cardface.BackKey {
		t.Errorf("face-down layout images = %+v", imgs)
	}
	fling(t0.Add(time.Second))
	if !v.Card().FaceUp() {
		t.Error("second fling did not flip back")
	}
	if pips := v.Layout().Pips(); len(pips) != 9 {
		t.Errorf("pips = %d, want 9", len(pips))
	}
}

func TestApplyAttributes(t *testing.T) {
	v, n := newCountingView(t, cardface.DefaultCard())
	if got := v.Apply(config.Attributes{"rank": "10", "suit": "spades"}); got != 2 {
		t.Errorf("Apply = %d, want 2", got)
	}
	if v.Card().Key() != "10♠" || n.Load() != 1 {
		t.Errorf("card = %v after %d invalidations", v.Card(), n.Load())
	}
}

func TestLayoutUsesEngine(t *testing.T) {
	e := cardface.NewEngine(cardface.WithCatalog(cardface.CatalogFunc(func(string) bool { return false })))
	v := New(cardface.NewCard(cardface.Jack, cardface.Diamonds),
		WithEngine(e), WithViewport(cardface.Viewport{Width: 200, Height: 300}))
	l := v.Layout()
	if len(l.Images()) != 0 || len(l.Pips()) != 0 {
		t.Errorf("J♦ without art: images=%d pips=%d, want 0/0", len(l.Images()), len(l.Pips()))
	}
	if len(l.Corners()) != 2 {
		t.Errorf("corners = %d, want 2", len(l.Corners()))
	}
}

func TestConcurrentAccess(t *testing.T) {
	v, n := newCountingView(t, cardface.NewCard(cardface.Ace, cardface.Hearts))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v.Flip()
				_ = v.Layout()
			}
		}()
	}
	wg.Wait()
	if n.Load() != 400 {
		t.Errorf("invalidations = %d, want 400", n.Load())
	}
	if !v.Card().FaceUp() {
		t.Error("an even number of flips should leave the card face up")
	}
}
