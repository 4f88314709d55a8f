// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package assets resolves layout image keys to decoded images.
//
// A Store reads card art from an fs.FS. Face keys map to file names built
// from the rank and suit name ("K♥" -> "k_heart"), the card back maps to
// "cardback". PNG, WebP and BMP files are recognised, in that order.
//
//	store := assets.NewStore(os.DirFS("art"))
//	engine := cardface.NewEngine(cardface.WithCatalog(store))
//
// Passing the Store as the engine's catalog makes a missing face image fall
// back to pips instead of producing a dangling image command.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/internal/cache"
)

// ErrNotFound is returned when no file exists for a key.
var ErrNotFound = errors.New("assets: not found")

// Extensions are the file extensions tried for every key, in order.
var Extensions = []string{".png", ".webp", ".bmp"}

// DefaultCacheSize is the default number of decoded images kept in memory.
const DefaultCacheSize = 64

// Store resolves asset keys against a file system. It is safe for
// concurrent use.
type Store struct {
	fsys   fs.FS
	dir    string
	images *cache.Cache[string, image.Image]
}

var _ cardface.Catalog = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithDir sets the directory inside the file system that holds the art.
func WithDir(dir string) Option {
	return func(s *Store) { s.dir = dir }
}

// WithCacheSize sets how many decoded images are kept. 0 means unlimited.
func WithCacheSize(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.images = cache.New[string, image.Image](n)
		}
	}
}

// NewStore creates a Store reading from fsys.
func NewStore(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys:   fsys,
		dir:    ".",
		images: cache.New[string, image.Image](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileBase returns the file name, without extension, for an asset key.
// ok is false for keys that are neither a face key nor the card back.
func FileBase(key string) (base string, ok bool) {
	if key == cardface.BackKey {
		return "cardback", true
	}
	if !cardface.IsFaceKey(key) {
		return "", false
	}
	glyph, size := utf8.DecodeLastRuneInString(key)
	suit, err := cardface.ParseSuit(string(glyph))
	if err != nil {
		return "", false
	}
	rank := key[:len(key)-size]
	return strings.ToLower(rank) + "_" + suit.Name(), true
}

// find returns the path of the first existing file for key.
func (s *Store) find(key string) (string, error) {
	base, ok := FileBase(key)
	if !ok {
		return "", fmt.Errorf("%w: unknown key %q", ErrNotFound, key)
	}
	for _, ext := range Extensions {
		p := path.Join(s.dir, base+ext)
		if _, err := fs.Stat(s.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (%s.*)", ErrNotFound, key, base)
}

// Has implements cardface.Catalog. It reports whether a file exists for key;
// it does not decode it.
func (s *Store) Has(key string) bool {
	if _, ok := s.images.Get(key); ok {
		return true
	}
	_, err := s.find(key)
	return err == nil
}

// Image returns the decoded image for key. Decoded images are cached.
func (s *Store) Image(key string) (image.Image, error) {
	return s.images.GetOrLoad(key, func() (image.Image, error) {
		p, err := s.find(key)
		if err != nil {
			return nil, err
		}
		f, err := s.fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("assets: open %s: %w", p, err)
		}
		defer f.Close()

		img, format, err := image.Decode(f)
		if err != nil {
			cardface.Logger().Warn("assets: decode failed", "key", key, "path", p, "err", err)
			return nil, fmt.Errorf("assets: decode %s: %w", p, err)
		}
		cardface.Logger().Debug("assets: decoded", "key", key, "path", p, "format", format)
		return img, nil
	})
}

// Keys returns every key the store can resolve: the face keys with a file
// present, then the card back if present.
func (s *Store) Keys() []string {
	var keys []string
	for _, r := range []cardface.Rank{cardface.Jack, cardface.Queen, cardface.King} {
		for _, suit := range cardface.Suits() {
			if k := r.String() + suit.String(); s.Has(k) {
				keys = append(keys, k)
			}
		}
	}
	if s.Has(cardface.BackKey) {
		keys = append(keys, cardface.BackKey)
	}
	return keys
}
