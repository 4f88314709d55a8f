// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

import (
	"errors"
	"image"
	"io"
)

// ErrNilBackend is returned by Playback when no backend is given.
var ErrNilBackend = errors.New("cardface: nil backend")

// UnknownCommandError is returned by Playback for a Command implementation
// the backend interface has no method for.
type UnknownCommandError struct {
	Index int
	Kind  CommandKind
}

func (e *UnknownCommandError) Error() string {
	return "cardface: unknown command kind " + e.Kind.String()
}

// Backend is the interface that all rendering backends must implement.
// Backends receive layout commands and translate them to their output
// format (raster pixels, terminal cells, ...).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using cardface.Register()
//  2. Reset its output in Begin so it can be reused for another layout
//  3. Honor RoundedRect.Clip for every command that follows it
//  4. Treat an unresolvable image key as a no-op, not an error
type Backend interface {
	// Begin initializes the backend for a viewport of the given size.
	Begin(width, height float64) error

	// End finalizes the output.
	End() error

	// DrawRoundedRect paints a rounded rectangle.
	DrawRoundedRect(rr RoundedRect) error

	// DrawText draws a text block.
	DrawText(t TextBlock) error

	// DrawImage draws the asset named by img.Key into img.Dest.
	DrawImage(img Image) error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// ImageSource resolves image asset keys to decoded images.
type ImageSource interface {
	Image(key string) (image.Image, error)
}

// ImageBackend is implemented by backends that draw image assets. Hosts
// that create backends through the registry use it to attach card art.
type ImageBackend interface {
	Backend

	// SetImageSource sets where Image commands are resolved.
	SetImageSource(src ImageSource)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}
