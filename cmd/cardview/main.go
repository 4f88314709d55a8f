// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command cardview shows a card in the terminal. Drag across it quickly with
// the mouse to flip it over.
//
//	cardview -rank Q -suit hearts
//
// Keys: space or f flips, left/right change rank, up/down change suit, q quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/config"
	"github.com/gogpu/cardface/view"
)

func main() {
	var (
		rank    = flag.String("rank", "A", "card rank")
		suit    = flag.String("suit", "spades", "card suit")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("cardview: %v", err)
		}
		defer f.Close()
		cardface.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	c := config.Attributes{config.AttrRank: *rank, config.AttrSuit: *suit}.Card()
	v := view.New(c, view.WithViewport(cardface.Viewport{Width: config.DefaultWidth, Height: config.DefaultHeight}))

	p := tea.NewProgram(newModel(v), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
