// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/cardface"
	"github.com/gogpu/cardface/gesture"
	"github.com/gogpu/cardface/render/term"
)

const (
	minColumns = 8
	maxColumns = 60
	// frameCells is the border drawn around the grid on each side.
	frameCells = 1
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

// cardView is the part of view.View the model drives.
type cardView interface {
	Card() cardface.Card
	Viewport() cardface.Viewport
	SetRank(cardface.Rank) bool
	SetSuit(cardface.Suit) bool
	Flip()
	Pointer(gesture.Sample) bool
	Render(cardface.Backend) error
}

type model struct {
	view    cardView
	columns int
	flips   int
	now     func() time.Time
}

func newModel(v cardView) model {
	return model{view: v, columns: term.DefaultColumns, now: time.Now}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.columns = fitColumns(msg.Width, msg.Height, m.view.Viewport())
		return m, nil

	case tea.MouseMsg:
		if s, ok := m.sample(msg); ok && m.view.Pointer(s) {
			m.flips++
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.view.Card()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "f":
		m.view.Flip()
		m.flips++
	case "right", "l":
		m.view.SetRank(cycleRank(c.Rank(), 1))
	case "left", "h":
		m.view.SetRank(cycleRank(c.Rank(), -1))
	case "down", "j":
		m.view.SetSuit(cycleSuit(c.Suit(), 1))
	case "up", "k":
		m.view.SetSuit(cycleSuit(c.Suit(), -1))
	}
	return m, nil
}

// sample converts a mouse event in cell coordinates to a pointer sample in
// viewport coordinates.
func (m model) sample(msg tea.MouseMsg) (gesture.Sample, bool) {
	var action gesture.Action
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return gesture.Sample{}, false
		}
		action = gesture.Down
	case tea.MouseActionMotion:
		action = gesture.Move
	case tea.MouseActionRelease:
		action = gesture.Up
	default:
		return gesture.Sample{}, false
	}
	vp := m.view.Viewport()
	cols, rows := m.grid()
	x := (float64(msg.X-frameCells) + 0.5) * vp.Width / float64(cols)
	y := (float64(msg.Y-frameCells) + 0.5) * vp.Height / float64(rows)
	return gesture.Sample{Action: action, X: x, Y: y, Time: m.now()}, true
}

// grid returns the card grid size for the current column count.
func (m model) grid() (cols, rows int) {
	vp := m.view.Viewport()
	rows = max(1, int(float64(m.columns)*vp.Height/vp.Width*term.CellAspect+0.5))
	return m.columns, rows
}

func (m model) View() string {
	b := term.NewBackend(term.WithColumns(m.columns))
	if err := m.view.Render(b); err != nil {
		return "render: " + err.Error()
	}
	var sb strings.Builder
	sb.WriteString(b.String())
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf("%s  flips: %d  ·  fling or space: flip  ←/→ rank  ↑/↓ suit  q: quit",
		m.view.Card(), m.flips)))
	return sb.String()
}

// fitColumns picks the widest grid that fits the window, leaving room for
// the frame and the help line.
func fitColumns(width, height int, vp cardface.Viewport) int {
	if vp.Width <= 0 || vp.Height <= 0 {
		return term.DefaultColumns
	}
	byWidth := width - 2*frameCells
	byHeight := int(float64(height-2*frameCells-1) / (vp.Height / vp.Width * term.CellAspect))
	return min(maxColumns, max(minColumns, min(byWidth, byHeight)))
}

func cycleRank(r cardface.Rank, step int) cardface.Rank {
	ranks := cardface.Ranks()
	i := int(r) - int(cardface.Ace)
	if !r.Valid() {
		i = 0
	}
	return ranks[((i+step)%len(ranks)+len(ranks))%len(ranks)]
}

func cycleSuit(s cardface.Suit, step int) cardface.Suit {
	suits := cardface.Suits()
	i := int(s) - int(cardface.Hearts)
	if !s.Valid() {
		i = 0
	}
	return suits[((i+step)%len(suits)+len(suits))%len(suits)]
}
