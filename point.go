// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks the rectangle by dx on the left and right edges and by dy
// on the top and bottom edges. The result never has a negative size.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
	if out.Width < 0 {
		out.X = r.X + r.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = r.Y + r.Height/2
		out.Height = 0
	}
	return out
}

// Scaled returns a rectangle with the same center whose width and height
// are multiplied by factor.
func (r Rect) Scaled(factor float64) Rect {
	return r.Inset(r.Width*(1-factor)/2, r.Height*(1-factor)/2)
}

// Viewport is the size of the area a card is laid out in.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// normalized returns the viewport with negative, NaN and infinite sizes
// replaced by 0.
func (v Viewport) normalized() Viewport {
	return Viewport{Width: nonNegative(v.Width), Height: nonNegative(v.Height)}
}

// Bounds returns the full viewport rectangle anchored at the origin.
func (v Viewport) Bounds() Rect {
	n := v.normalized()
	return Rect{Width: n.Width, Height: n.Height}
}

// Center returns the viewport center.
func (v Viewport) Center() Point {
	return v.Bounds().Center()
}

func nonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
