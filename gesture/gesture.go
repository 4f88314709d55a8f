// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gesture turns raw pointer samples into high-level gestures.
//
// A Detector is fed Down, Move and Up samples in order. When the pointer is
// released it reports what the stroke was: a Fling if the pointer travelled
// far enough and was still moving fast at release, a Tap if it barely moved,
// or None otherwise.
//
//	d := gesture.NewDetector()
//	d.Feed(gesture.Sample{Action: gesture.Down, X: 10, Y: 10, Time: t0})
//	d.Feed(gesture.Sample{Action: gesture.Move, X: 60, Y: 12, Time: t0.Add(40 * time.Millisecond)})
//	g := d.Feed(gesture.Sample{Action: gesture.Up, X: 90, Y: 12, Time: t0.Add(60 * time.Millisecond)})
//	// g.Kind == gesture.Fling, g.Direction == gesture.DirRight
package gesture

import (
	"math"
	"time"
)

// Default thresholds. Distances are in pixels.
const (
	DefaultMinVelocity    = 50.0 // px/s
	DefaultMinDistance    = 8.0
	DefaultVelocityWindow = 100 * time.Millisecond
)

// Action is the pointer action carried by a Sample.
type Action uint8

const (
	Down Action = iota
	Move
	Up
	Cancel
)

var actionNames = [...]string{"Down", "Move", "Up", "Cancel"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Sample is a single pointer event.
type Sample struct {
	Action Action
	X, Y   float64
	Time   time.Time
}

// Kind classifies a finished stroke.
type Kind uint8

const (
	None Kind = iota
	Tap
	Fling
)

var kindNames = [...]string{"None", "Tap", "Fling"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Direction is the dominant axis direction of a fling.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

var directionNames = [...]string{"None", "Left", "Right", "Up", "Down"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Unknown"
}

// Gesture is the result of a completed stroke.
type Gesture struct {
	Kind      Kind
	Direction Direction

	// Velocity at release in px/s, along each axis.
	VelocityX, VelocityY float64

	// Travel from the Down sample to the Up sample.
	DX, DY float64
}

// Speed returns the release speed in px/s.
func (g Gesture) Speed() float64 { return math.Hypot(g.VelocityX, g.VelocityY) }

// Option configures a Detector.
type Option func(*Detector)

// WithMinVelocity sets the release speed a fling must reach.
func WithMinVelocity(v float64) Option {
	return func(d *Detector) {
		if v >= 0 {
			d.minVelocity = v
		}
	}
}

// WithMinDistance sets how far the pointer must travel before a stroke can
// be a fling. Shorter strokes are taps.
func WithMinDistance(px float64) Option {
	return func(d *Detector) {
		if px >= 0 {
			d.minDistance = px
		}
	}
}

// WithVelocityWindow sets how much trailing history is used to estimate the
// release velocity.
func WithVelocityWindow(w time.Duration) Option {
	return func(d *Detector) {
		if w > 0 {
			d.window = w
		}
	}
}

// Detector recognises taps and flings. It is not safe for concurrent use;
// feed it from the goroutine that receives input.
type Detector struct {
	minVelocity float64
	minDistance float64
	window      time.Duration

	down    bool
	history []Sample
}

// NewDetector creates a Detector with the default thresholds.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		minVelocity: DefaultMinVelocity,
		minDistance: DefaultMinDistance,
		window:      DefaultVelocityWindow,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Feed processes one sample. It returns a Gesture with Kind None except on
// the Up sample that ends a stroke.
func (d *Detector) Feed(s Sample) Gesture {
	switch s.Action {
	case Down:
		d.down = true
		d.history = append(d.history[:0], s)
	case Move:
		if d.down {
			d.push(s)
		}
	case Up:
		if !d.down {
			return Gesture{}
		}
		d.push(s)
		g := d.classify()
		d.Reset()
		return g
	case Cancel:
		d.Reset()
	}
	return Gesture{}
}

// Reset discards any stroke in progress.
func (d *Detector) Reset() {
	d.down = false
	d.history = d.history[:0]
}

// push appends s and drops Move samples older than the velocity window.
// The first sample is the Down and is always kept.
func (d *Detector) push(s Sample) {
	d.history = append(d.history, s)
	cut := 1
	for cut < len(d.history)-1 && s.Time.Sub(d.history[cut].Time) > d.window {
		cut++
	}
	if cut > 1 {
		d.history = append(d.history[:1], d.history[cut:]...)
	}
}

func (d *Detector) classify() Gesture {
	first := d.history[0]
	last := d.history[len(d.history)-1]
	g := Gesture{DX: last.X - first.X, DY: last.Y - first.Y}

	if math.Hypot(g.DX, g.DY) < d.minDistance {
		g.Kind = Tap
		return g
	}

	// Oldest sample inside the window. The Down sample is used when the
	// stroke is shorter than the window or no Move falls inside it.
	ref := first
	if last.Time.Sub(first.Time) > d.window {
		for _, s := range d.history[1 : len(d.history)-1] {
			if last.Time.Sub(s.Time) <= d.window {
				ref = s
				break
			}
		}
	}
	dt := last.Time.Sub(ref.Time).Seconds()
	if dt <= 0 {
		return g
	}
	g.VelocityX = (last.X - ref.X) / dt
	g.VelocityY = (last.Y - ref.Y) / dt

	if g.Speed() >= d.minVelocity {
		g.Kind = Fling
		g.Direction = direction(g.VelocityX, g.VelocityY)
	}
	return g
}

// direction returns the dominant direction. Screen Y grows downwards.
func direction(vx, vy float64) Direction {
	if math.Abs(vx) >= math.Abs(vy) {
		if vx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if vy < 0 {
		return DirUp
	}
	return DirDown
}
