// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view is a host-side view model for a single card.
//
// A View owns the card state and the viewport, recomputes the layout on
// demand and tells listeners when the card needs to be redrawn. Pointer input
// goes through a gesture.Detector; a fling turns the card over.
//
//	v := view.New(cardface.NewCard(cardface.Queen, cardface.Spades))
//	v.OnInvalidate(func() { redraw(v.Layout()) })
//	v.Resize(cardface.Viewport{Width: 200, Height: 300})
//	v.Pointer(sample) // from the host's input loop
package view

import (
	"sync"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/config"
	"github.com/gogpu/cardface/gesture"
)

// Option configures a View.
type Option func(*View)

// WithEngine sets the layout engine. Default is an engine with the default
// options.
func WithEngine(e *cardface.Engine) Option {
	return func(v *View) {
		if e != nil {
			v.engine = e
		}
	}
}

// WithDetector sets the gesture detector used by Pointer.
func WithDetector(d *gesture.Detector) Option {
	return func(v *View) {
		if d != nil {
			v.detector = d
		}
	}
}

// WithViewport sets the initial viewport.
func WithViewport(vp cardface.Viewport) Option {
	return func(v *View) { v.viewport = vp }
}

// View is safe for concurrent use. Listeners are called without the lock
// held, on the goroutine that made the change.
type View struct {
	mu        sync.Mutex
	card      cardface.Card
	viewport  cardface.Viewport
	engine    *cardface.Engine
	detector  *gesture.Detector
	listeners []func()
}

// New creates a View showing card.
func New(card cardface.Card, opts ...Option) *View {
	v := &View{
		card:     card,
		engine:   cardface.NewEngine(),
		detector: gesture.NewDetector(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// OnInvalidate registers fn to be called after every state change that
// affects the layout.
func (v *View) OnInvalidate(fn func()) {
	if fn == nil {
		return
	}
	v.mu.Lock()
	v.listeners = append(v.listeners, fn)
	v.mu.Unlock()
}

// update runs mutate under the lock and notifies listeners if it reports a
// change.
func (v *View) update(mutate func() bool) bool {
	v.mu.Lock()
	changed := mutate()
	listeners := v.listeners
	v.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn()
		}
	}
	return changed
}

// Card returns the current card state.
func (v *View) Card() cardface.Card {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.card
}

// Viewport returns the current viewport.
func (v *View) Viewport() cardface.Viewport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.viewport
}

// SetRank sets the rank. It returns false, leaving the card unchanged, for
// an invalid rank.
func (v *View) SetRank(r cardface.Rank) bool {
	ok := true
	v.update(func() bool {
		prev := v.card.Rank()
		ok = v.card.SetRank(r)
		return ok && prev != r
	})
	return ok
}

// SetSuit sets the suit. It returns false, leaving the card unchanged, for
// an invalid suit.
func (v *View) SetSuit(s cardface.Suit) bool {
	ok := true
	v.update(func() bool {
		prev := v.card.Suit()
		ok = v.card.SetSuit(s)
		return ok && prev != s
	})
	return ok
}

// SetFaceUp shows the front or the back of the card.
func (v *View) SetFaceUp(up bool) {
	v.update(func() bool {
		if v.card.FaceUp() == up {
			return false
		}
		v.card.SetFaceUp(up)
		return true
	})
}

// SetCard replaces the whole card state.
func (v *View) SetCard(c cardface.Card) {
	v.update(func() bool {
		if v.card == c {
			return false
		}
		v.card = c
		return true
	})
}

// Flip turns the card over.
func (v *View) Flip() {
	v.update(func() bool {
		v.card.Flip()
		return true
	})
}

// Apply applies declarative attributes and returns how many were accepted.
func (v *View) Apply(attrs config.Attributes) int {
	n := 0
	v.update(func() bool {
		prev := v.card
		n = attrs.Apply(&v.card)
		return v.card != prev
	})
	return n
}

// Resize changes the viewport.
func (v *View) Resize(vp cardface.Viewport) {
	v.update(func() bool {
		if v.viewport == vp {
			return false
		}
		v.viewport = vp
		return true
	})
}

// HandleGesture reacts to a completed gesture. A fling in any direction
// flips the card; every other gesture is ignored. It reports whether the
// gesture was consumed.
func (v *View) HandleGesture(g gesture.Gesture) bool {
	if g.Kind != gesture.Fling {
		return false
	}
	v.Flip()
	cardface.Logger().Debug("view: fling", "direction", g.Direction.String(), "speed", g.Speed())
	return true
}

// Pointer feeds a raw pointer sample through the view's detector and
// handles the resulting gesture.
func (v *View) Pointer(s gesture.Sample) bool {
	v.mu.Lock()
	g := v.detector.Feed(s)
	v.mu.Unlock()
	return v.HandleGesture(g)
}

// Layout computes the layout for the current state.
func (v *View) Layout() cardface.Layout {
	v.mu.Lock()
	card, vp, e := v.card, v.viewport, v.engine
	v.mu.Unlock()
	return e.Layout(card, vp)
}

// Render lays the card out and plays it back into b.
func (v *View) Render(b cardface.Backend) error {
	return v.Layout().Playback(b)
}
