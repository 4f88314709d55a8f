// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command cardserver serves card layouts and renderings over HTTP.
//
//	cardserver -listen :8080 -assets art/
//
// Routes:
//
//	GET /healthz
//	GET /v1/cards/{rank}/{suit}/layout
//	GET /v1/cards/{rank}/{suit}.png?w=200&h=300&faceUp=false
//	GET /v1/cards/{rank}/{suit}.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/assets"
	"github.com/gogpu/cardface/fontmeasure"
	"github.com/gogpu/cardface/internal/httpapi"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	listen   string
	assetDir string
	level    slog.Level
	origins  string
	maxSize  float64
	json     bool
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	logger := newLogger(o)
	cardface.SetLogger(logger)

	srv, err := newServer(o)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("cardserver", flag.ContinueOnError)
	fs.StringVar(&o.listen, "listen", ":8080", "listen address")
	fs.StringVar(&o.assetDir, "assets", "", "directory with face and back images")
	fs.TextVar(&o.level, "loglevel", slog.LevelInfo, "log level (debug, info, warn, error)")
	fs.StringVar(&o.origins, "origins", "*", "comma separated CORS origins")
	fs.Float64Var(&o.maxSize, "max-size", httpapi.DefaultMaxSize, "largest accepted viewport side")
	fs.BoolVar(&o.json, "json", false, "log as JSON")
	err := fs.Parse(args)
	return o, err
}

func newLogger(o options) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: o.level}
	if o.json {
		return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, hopts))
}

func newServer(o options) (*http.Server, error) {
	m, err := fontmeasure.Default()
	if err != nil {
		return nil, err
	}
	engineOpts := []cardface.EngineOption{cardface.WithMeasurer(m)}
	apiOpts := []httpapi.Option{
		httpapi.WithMaxSize(o.maxSize),
		httpapi.WithAllowedOrigins(splitList(o.origins)...),
	}

	if o.assetDir != "" {
		info, err := os.Stat(o.assetDir)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", o.assetDir)
		}
		store := assets.NewStore(os.DirFS(o.assetDir))
		engineOpts = append(engineOpts, cardface.WithCatalog(store))
		apiOpts = append(apiOpts, httpapi.WithImageSource(store))
	}
	apiOpts = append(apiOpts, httpapi.WithEngine(cardface.NewEngine(engineOpts...)))

	return &http.Server{
		Addr:              o.listen,
		Handler:           httpapi.New(apiOpts...).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}, nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
