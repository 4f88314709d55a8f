// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a pixel backend for card layouts.
// It renders layouts to images using gg.Context.
//
// # Supported Features
//
//   - Rounded rectangles with fill, stroke and clip
//   - Multi-line text blocks with alignment, line spacing and any rotation
//   - Face and back images resolved through an [ImageSource]
//   - PNG output
//
// Text and images are composited through an offscreen layer that is masked
// by the active clip, because gg draws glyphs and images straight into its
// pixmap without consulting the clip stack.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/cardface/render/raster"
//
//	// Create via registry
//	backend, _ := cardface.NewBackend("raster")
//
//	// Or create directly, with card art
//	backend := raster.NewBackend(raster.WithImageSource(store))
//
//	layout.Playback(backend)
//	backend.SavePNG("card.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/cardface"
)

func init() {
	cardface.Register("raster", func() cardface.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("raster: Begin not called")

// ImageSource resolves image keys. *assets.Store implements it.
type ImageSource = cardface.ImageSource

// glyphPad is the margin around offscreen text so anti-aliased edges and
// overhanging glyphs are not cut off.
const glyphPad = 2

var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Option configures a Backend.
type Option func(*Backend)

// WithImageSource sets where image commands are resolved.
func WithImageSource(src ImageSource) Option {
	return func(b *Backend) { b.SetImageSource(src) }
}

// WithFontSource sets the font used for text. Default is Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(b *Backend) { b.SetFontSource(src) }
}

// WithInterpolator sets the scaler used for images and rotated text.
// Default is draw.CatmullRom.
func WithInterpolator(in draw.Interpolator) Option {
	return func(b *Backend) {
		if in != nil {
			b.interp = in
		}
	}
}

// Backend renders layouts to a pixel image using gg.Context. It is not safe
// for concurrent use.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	images ImageSource
	font   *text.FontSource
	faces  map[float64]text.Face
	interp draw.Interpolator

	// layer collects text and images until the next flush.
	layer *image.RGBA
	dirty bool
	// clip is the coverage of the active clip outline, nil when unclipped.
	clip image.Image
}

// Ensure Backend implements all required interfaces.
var (
	_ cardface.Backend       = (*Backend)(nil)
	_ cardface.WriterBackend = (*Backend)(nil)
	_ cardface.FileBackend   = (*Backend)(nil)
	_ cardface.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{interp: draw.CatmullRom}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetImageSource implements cardface.ImageBackend.
func (b *Backend) SetImageSource(src ImageSource) {
	b.images = src
}

// SetFontSource sets the font used for text. nil keeps the current font.
// It takes effect at the next Begin.
func (b *Backend) SetFontSource(src *text.FontSource) {
	if src != nil {
		b.font = src
	}
}

// Begin starts a new image of the given size, rounded up to whole pixels.
// Degenerate sizes, infinities included, produce a 1x1 image.
func (b *Backend) Begin(width, height float64) error {
	if b.font == nil {
		src, err := defaultFont()
		if err != nil {
			return fmt.Errorf("raster: load default font: %w", err)
		}
		b.font = src
	}
	b.width = pixels(width)
	b.height = pixels(height)
	b.ctx = gg.NewContext(b.width, b.height)
	b.layer = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	b.faces = make(map[float64]text.Face)
	b.dirty = false
	b.clip = nil
	return nil
}

func pixels(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 1 {
		return 1
	}
	return int(math.Ceil(v))
}

// End composites any pending text and images.
func (b *Backend) End() error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	b.flush()
	return nil
}

// DrawRoundedRect fills and strokes the outline, then installs it as the
// clip if rr.Clip is set.
func (b *Backend) DrawRoundedRect(rr cardface.RoundedRect) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	b.flush()

	r := rr.Rect
	b.ctx.ClearPath()
	b.ctx.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, rr.Radius)
	if rr.Style.Has(cardface.StyleFill) {
		b.ctx.SetColor(rr.Fill.Color())
		if err := b.ctx.FillPreserve(); err != nil {
			return fmt.Errorf("raster: fill: %w", err)
		}
	}
	if rr.Style.Has(cardface.StyleStroke) && rr.StrokeWidth > 0 {
		b.ctx.SetColor(rr.Stroke.Color())
		b.ctx.SetLineWidth(rr.StrokeWidth)
		if err := b.ctx.StrokePreserve(); err != nil {
			return fmt.Errorf("raster: stroke: %w", err)
		}
	}
	b.ctx.ClearPath()

	if rr.Clip {
		mask := gg.NewContext(b.width, b.height)
		mask.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, rr.Radius)
		mask.SetColor(color.White)
		if err := mask.Fill(); err != nil {
			return fmt.Errorf("raster: clip: %w", err)
		}
		b.clip = mask.Image()
	}
	return nil
}

// DrawText draws a text block into the pending layer.
func (b *Backend) DrawText(t cardface.TextBlock) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	lines := t.Lines()
	if len(lines) == 0 || t.FontSize <= 0 {
		return nil
	}
	face := b.face(t.FontSize)
	bl := blockLayout(t, lines, face)

	if rot := math.Mod(t.Rotation, 360); rot == 0 {
		for i, line := range lines {
			text.Draw(b.layer, line, face, t.Origin.X+bl.x[i], t.Origin.Y+bl.baseline[i], t.Color.Color())
		}
		b.dirty = true
		return nil
	}

	// Lay the block out upright offscreen, then map it into place.
	w := int(math.Ceil(bl.max.X - bl.min.X))
	h := int(math.Ceil(bl.max.Y - bl.min.Y))
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, line := range lines {
		text.Draw(tmp, line, face, bl.x[i]-bl.min.X, bl.baseline[i]-bl.min.Y, t.Color.Color())
	}

	m := cardface.Translate(t.Origin.X, t.Origin.Y).
		Multiply(cardface.RotateDegrees(t.Rotation)).
		Multiply(cardface.Translate(bl.min.X, bl.min.Y))
	b.interp.Transform(b.layer, aff3(m), tmp, tmp.Bounds(), draw.Over, nil)
	b.dirty = true
	return nil
}

// DrawImage scales the resolved image into img.Dest. Keys that cannot be
// resolved are skipped with a warning.
func (b *Backend) DrawImage(img cardface.Image) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	if b.images == nil {
		cardface.Logger().Warn("raster: no image source", "key", img.Key)
		return nil
	}
	src, err := b.images.Image(img.Key)
	if err != nil {
		cardface.Logger().Warn("raster: image unavailable", "key", img.Key, "err", err)
		return nil
	}
	d := img.Dest
	dst := image.Rect(
		int(math.Round(d.X)), int(math.Round(d.Y)),
		int(math.Round(d.X+d.Width)), int(math.Round(d.Y+d.Height)),
	)
	if dst.Empty() {
		return nil
	}
	b.interp.Scale(b.layer, dst, src, src.Bounds(), draw.Over, nil)
	b.dirty = true
	return nil
}

// flush composites the pending layer onto the canvas through the clip.
func (b *Backend) flush() {
	if !b.dirty {
		return
	}
	var src image.Image = b.layer
	if b.clip != nil {
		masked := image.NewRGBA(b.layer.Bounds())
		draw.DrawMask(masked, masked.Bounds(), b.layer, image.Point{}, b.clip, image.Point{}, draw.Over)
		src = masked
	}
	b.ctx.DrawImage(gg.ImageBufFromImage(src), 0, 0)
	clear(b.layer.Pix)
	b.dirty = false
}

func (b *Backend) face(size float64) text.Face {
	if f, ok := b.faces[size]; ok {
		return f
	}
	f := b.font.Face(size)
	b.faces[size] = f
	return f
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return ErrNotStarted
	}
	return b.ctx.SavePNG(path)
}

// SavePNG is a convenience alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the image width in pixels.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Backend) Height() int {
	return b.height
}

// aff3 converts a layout matrix to the x/image affine form.
func aff3(m cardface.Matrix) f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
