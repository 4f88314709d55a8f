// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package httpapi serves card layouts and renders over HTTP.
//
// Routes:
//
//	GET /healthz                         liveness and registered backends
//	GET /v1/cards/{rank}/{suit}/layout   layout commands as JSON
//	GET /v1/cards/{rank}/{suit}.png      raster render
//	GET /v1/cards/{rank}/{suit}.txt      terminal preview
//
// Query parameters w and h set the viewport (default 200x300) and faceUp
// selects the side shown. Ranks and suits accept the spellings understood by
// the config package ("K", "king", "hearts", "♥").
package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/config"
	"github.com/gogpu/cardface/internal/cache"
	"github.com/gogpu/cardface/render/raster"
	"github.com/gogpu/cardface/render/term"
)

// Defaults for query parameters and limits.
const (
	DefaultWidth     = 200
	DefaultHeight    = 300
	DefaultMaxSize   = 2000
	DefaultCacheSize = 256
)

var errBadSize = errors.New("w and h must be positive numbers")

// Server holds the handler dependencies.
type Server struct {
	engine  *cardface.Engine
	images  raster.ImageSource
	origins []string
	maxSize float64
	pngs    *cache.Cache[renderKey, []byte]
}

// renderKey identifies a rendered PNG.
type renderKey struct {
	card cardface.Card
	w, h float64
}

// Option configures a Server.
type Option func(*Server)

// WithEngine sets the layout engine.
func WithEngine(e *cardface.Engine) Option {
	return func(s *Server) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithImageSource sets where the PNG renderer resolves card art.
func WithImageSource(src raster.ImageSource) Option {
	return func(s *Server) { s.images = src }
}

// WithAllowedOrigins sets the CORS origins. Default is any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// WithMaxSize caps the viewport width and height in pixels.
func WithMaxSize(px float64) Option {
	return func(s *Server) {
		if px > 0 {
			s.maxSize = px
		}
	}
}

// WithCacheSize sets how many rendered PNGs are kept. 0 disables the limit.
func WithCacheSize(n int) Option {
	return func(s *Server) {
		if n >= 0 {
			s.pngs = cache.New[renderKey, []byte](n)
		}
	}
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		engine:  cardface.NewEngine(),
		origins: []string{"*"},
		maxSize: DefaultMaxSize,
		pngs:    cache.New[renderKey, []byte](DefaultCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/cards/{rank}", func(r chi.Router) {
		r.Get("/{suit}/layout", s.handleLayout)
		r.Get("/{suit}.png", s.handlePNG)
		r.Get("/{suit}.txt", s.handleText)
	})
	return r
}

type (
	healthResponse struct {
		Status   string   `json:"status"`
		Backends []string `json:"backends"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{Status: "ok", Backends: cardface.Backends()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	card, vp, ok := s.request(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, s.engine.Layout(card, vp))
}

func (s *Server) handlePNG(w http.ResponseWriter, r *http.Request) {
	card, vp, ok := s.request(w, r)
	if !ok {
		return
	}
	data, err := s.pngs.GetOrLoad(renderKey{card, vp.Width, vp.Height}, func() ([]byte, error) {
		b := raster.NewBackend(raster.WithImageSource(s.images))
		if err := s.engine.Layout(card, vp).Playback(b); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if _, err := b.WriteTo(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		cardface.Logger().Error("httpapi: render failed", "card", card.String(), "err", err)
		fail(w, r, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	card, vp, ok := s.request(w, r)
	if !ok {
		return
	}
	b := term.NewBackend()
	if err := s.engine.Layout(card, vp).Playback(b); err != nil {
		fail(w, r, http.StatusInternalServerError, "render failed")
		return
	}
	render.PlainText(w, r, b.String()+"\n")
}

// request parses the card and viewport, writing a 400 response on failure.
func (s *Server) request(w http.ResponseWriter, r *http.Request) (cardface.Card, cardface.Viewport, bool) {
	card, err := parseCard(chi.URLParam(r, "rank"), chi.URLParam(r, "suit"))
	if err != nil {
		fail(w, r, http.StatusBadRequest, err.Error())
		return card, cardface.Viewport{}, false
	}
	q := r.URL.Query()
	if v := q.Get("faceUp"); v != "" {
		up, err := config.ParseFaceUp(v)
		if err != nil {
			fail(w, r, http.StatusBadRequest, err.Error())
			return card, cardface.Viewport{}, false
		}
		card.SetFaceUp(up)
	}
	vp, err := s.viewport(q)
	if err != nil {
		fail(w, r, http.StatusBadRequest, err.Error())
		return card, cardface.Viewport{}, false
	}
	return card, vp, true
}

func parseCard(rankParam, suitParam string) (cardface.Card, error) {
	rankStr, err := url.PathUnescape(rankParam)
	if err != nil {
		return cardface.Card{}, err
	}
	suitStr, err := url.PathUnescape(suitParam)
	if err != nil {
		return cardface.Card{}, err
	}
	rank, err := config.ParseRank(rankStr)
	if err != nil {
		return cardface.Card{}, err
	}
	suit, err := config.ParseSuit(suitStr)
	if err != nil {
		return cardface.Card{}, err
	}
	return cardface.NewCard(rank, suit), nil
}

func (s *Server) viewport(q url.Values) (cardface.Viewport, error) {
	vp := cardface.Viewport{Width: DefaultWidth, Height: DefaultHeight}
	for _, p := range []struct {
		name string
		dst  *float64
	}{{"w", &vp.Width}, {"h", &vp.Height}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !(f > 0) {
			return vp, errBadSize
		}
		if f > s.maxSize {
			return vp, fmt.Errorf("%s exceeds the %.0fpx limit", p.name, s.maxSize)
		}
		*p.dst = f
	}
	return vp, nil
}

func fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

// requestLogger logs each request through the package logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		cardface.Logger().Info("httpapi: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
