// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import "unicode/utf8"

// Measurer reports text metrics needed to position glyphs.
// Implementations must be safe for concurrent use.
//
// The fontmeasure package provides a font-backed implementation; the engine
// falls back to [EstimateMeasurer] when none is configured.
type Measurer interface {
	// Bounds returns the size of the tight ink bounds of s at size.
	Bounds(s string, size float64) (width, height float64)

	// Advance returns the horizontal advance of s at size.
	Advance(s string, size float64) float64
}

// EstimateMeasurer approximates metrics from the em size alone.
// It keeps layouts deterministic without loading a font.
type EstimateMeasurer struct{}

// Em ratios used by EstimateMeasurer.
const (
	estimateAdvance = 0.6
	estimateInk     = 0.55
	estimateCap     = 0.7
)

// Bounds implements Measurer.
func (EstimateMeasurer) Bounds(s string, size float64) (width, height float64) {
	n := utf8.RuneCountInString(s)
	if n == 0 || size <= 0 {
		return 0, 0
	}
	return float64(n) * estimateInk * size, estimateCap * size
}

// Advance implements Measurer.
func (EstimateMeasurer) Advance(s string, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(s)) * estimateAdvance * size
}

var _ Measurer = EstimateMeasurer{}

// Catalog reports which image assets the host can resolve.
// The engine asks it before emitting a face image so that a missing face
// falls back to pips.
type Catalog interface {
	Has(key string) bool
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func(key string) bool

// Has implements Catalog.
func (f CatalogFunc) Has(key string) bool { return f(key) }

// faceKeys lists the twelve court card keys.
var faceKeys = func() map[string]struct{} {
	m := make(map[string]struct{}, 12)
	for _, r := range []Rank{Jack, Queen, King} {
		for _, s := range Suits() {
			m[r.String()+s.String()] = struct{}{}
		}
	}
	return m
}()

// IsFaceKey reports whether key names one of the twelve court card images
// ("J♥" through "K♣").
func IsFaceKey(key string) bool {
	_, ok := faceKeys[key]
	return ok
}

// StandardCatalog assumes every face image and the card back are present.
type StandardCatalog struct{}

// Has implements Catalog.
func (StandardCatalog) Has(key string) bool {
	return key == BackKey || IsFaceKey(key)
}

var _ Catalog = StandardCatalog{}
