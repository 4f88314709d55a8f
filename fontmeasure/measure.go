// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fontmeasure measures text with a real font, for use as a
// [cardface.Measurer].
//
// Bounds are tight ink bounds, which is what centering a suit glyph on its
// pip position needs; the engine's built-in estimate only approximates them.
//
//	m, err := fontmeasure.New(ttfBytes)
//	engine := cardface.NewEngine(cardface.WithMeasurer(m))
//
// Default returns a measurer over the Go Regular font, which covers the four
// suit glyphs.
package fontmeasure

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/internal/cache"
)

// ErrEmptyFontData is returned when New is given no font bytes.
var ErrEmptyFontData = errors.New("fontmeasure: empty font data")

// DefaultMaxFaces is the default number of sized faces kept in memory.
const DefaultMaxFaces = 32

// Measurer measures strings with an OpenType font. Faces are created per
// size on demand and cached. Measurer is safe for concurrent use.
type Measurer struct {
	font    *opentype.Font
	hinting font.Hinting
	faces   *cache.Cache[fixed.Int26_6, *lockedFace]
}

// lockedFace guards a font.Face, which is not safe for concurrent use.
type lockedFace struct {
	mu   sync.Mutex
	face font.Face
}

var _ cardface.Measurer = (*Measurer)(nil)

// Option configures a Measurer.
type Option func(*options)

type options struct {
	hinting  font.Hinting
	maxFaces int
}

// WithHinting sets the hinting used for measurement. Default is font.HintingNone,
// which keeps measurements proportional to size.
func WithHinting(h font.Hinting) Option {
	return func(o *options) { o.hinting = h }
}

// WithMaxFaces limits how many sized faces are cached.
func WithMaxFaces(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFaces = n
		}
	}
}

// New parses a TrueType or OpenType font.
func New(data []byte, opts ...Option) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	o := options{hinting: font.HintingNone, maxFaces: DefaultMaxFaces}
	for _, opt := range opts {
		opt(&o)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontmeasure: parse font: %w", err)
	}
	return &Measurer{
		font:    f,
		hinting: o.hinting,
		faces:   cache.New[fixed.Int26_6, *lockedFace](o.maxFaces),
	}, nil
}

var defaultMeasurer = sync.OnceValues(func() (*Measurer, error) {
	return New(goregular.TTF)
})

// Default returns the shared measurer for Go Regular.
func Default() (*Measurer, error) {
	return defaultMeasurer()
}

// face returns the cached face for size, creating it on first use.
func (m *Measurer) face(size float64) (*lockedFace, error) {
	key := fixed.Int26_6(math.Round(size * 64))
	return m.faces.GetOrLoad(key, func() (*lockedFace, error) {
		f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
			Size:    float64(key) / 64,
			DPI:     72,
			Hinting: m.hinting,
		})
		if err != nil {
			return nil, fmt.Errorf("fontmeasure: face at %.2f: %w", size, err)
		}
		return &lockedFace{face: f}, nil
	})
}

// Bounds implements cardface.Measurer. It returns the size of the tight ink
// bounds of s. Sizes ≤ 0 and empty strings measure as zero.
func (m *Measurer) Bounds(s string, size float64) (width, height float64) {
	if s == "" || size <= 0 {
		return 0, 0
	}
	lf, err := m.face(size)
	if err != nil {
		cardface.Logger().Warn("fontmeasure: bounds", "size", size, "err", err)
		return 0, 0
	}
	lf.mu.Lock()
	b, _ := font.BoundString(lf.face, s)
	lf.mu.Unlock()
	return toFloat(b.Max.X - b.Min.X), toFloat(b.Max.Y - b.Min.Y)
}

// Advance implements cardface.Measurer.
func (m *Measurer) Advance(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	lf, err := m.face(size)
	if err != nil {
		cardface.Logger().Warn("fontmeasure: advance", "size", size, "err", err)
		return 0
	}
	lf.mu.Lock()
	adv := font.MeasureString(lf.face, s)
	lf.mu.Unlock()
	return toFloat(adv)
}

// LineHeight returns the recommended baseline-to-baseline distance at size.
func (m *Measurer) LineHeight(size float64) float64 {
	if size <= 0 {
		return 0
	}
	lf, err := m.face(size)
	if err != nil {
		return 0
	}
	lf.mu.Lock()
	h := lf.face.Metrics().Height
	lf.mu.Unlock()
	return toFloat(h)
}

// HasGlyph reports whether the font has a glyph for r.
func (m *Measurer) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := m.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

func toFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
