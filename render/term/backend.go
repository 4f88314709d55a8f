// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term renders card layouts as styled text for terminals.
//
// The viewport is projected onto a character grid: each text block is
// centred on the cell under its visual centre, images fill the cells they
// cover, and the card outline becomes a lipgloss rounded border. Terminal
// cells cannot rotate, so a block turned upside down keeps its glyphs
// upright and only reverses its line order.
//
//	import _ "github.com/gogpu/cardface/render/term"
//
//	b, _ := cardface.NewBackend("term")
//	layout.Playback(b)
//	fmt.Println(b.(*term.Backend).String())
package term

import (
	"errors"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/cardface"
)

func init() {
	cardface.Register("term", func() cardface.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("term: Begin not called")

// Grid defaults.
const (
	DefaultColumns = 22
	// CellAspect is the width of a terminal cell divided by its height.
	CellAspect = 0.5
)

// Styles holds the lipgloss styles used for each kind of cell.
type Styles struct {
	Frame lipgloss.Style
	Ink   lipgloss.Style
	Back  lipgloss.Style
	Face  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()),
		Ink: lipgloss.NewStyle().
			Bold(true),
		Back: lipgloss.NewStyle().
			Foreground(lipgloss.Color("25")), // Deep blue
		Face: lipgloss.NewStyle().
			Foreground(lipgloss.Color("136")). // Gold
			Bold(true),
	}
}

// Option configures a Backend.
type Option func(*Backend)

// WithColumns sets the grid width in cells. Rows follow from the viewport
// aspect ratio.
func WithColumns(n int) Option {
	return func(b *Backend) {
		if n > 0 {
			b.columns = n
		}
	}
}

// WithStyles replaces the default styles.
func WithStyles(s Styles) Option {
	return func(b *Backend) { b.styles = s }
}

type cellKind uint8

const (
	cellBlank cellKind = iota
	cellInk
	cellBack
	cellFace
)

type cell struct {
	r    rune
	kind cellKind
	fg   cardface.RGBA
}

// Backend renders layouts to a character grid. It is not safe for
// concurrent use.
type Backend struct {
	columns int
	styles  Styles

	width, height float64
	cols, rows    int
	grid          [][]cell

	started bool
	frame   *cardface.RoundedRect
	out     string
}

var (
	_ cardface.Backend       = (*Backend)(nil)
	_ cardface.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a terminal backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{columns: DefaultColumns, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin sizes the grid for the viewport.
func (b *Backend) Begin(width, height float64) error {
	b.width, b.height = width, height
	b.cols, b.rows = 0, 0
	if width > 0 && height > 0 {
		b.cols = b.columns
		b.rows = max(1, int(math.Round(float64(b.cols)*height/width*CellAspect)))
	}
	b.grid = make([][]cell, b.rows)
	for i := range b.grid {
		b.grid[i] = make([]cell, b.cols)
	}
	b.frame = nil
	b.out = ""
	b.started = true
	return nil
}

// End renders the grid.
func (b *Backend) End() error {
	if !b.started {
		return ErrNotStarted
	}
	b.out = b.render()
	return nil
}

// DrawRoundedRect records the first outline as the frame. Later outlines
// are ignored; a grid has no room for nested borders.
func (b *Backend) DrawRoundedRect(rr cardface.RoundedRect) error {
	if !b.started {
		return ErrNotStarted
	}
	if b.frame == nil {
		b.frame = &rr
	}
	return nil
}

// DrawText writes the block's lines centred on its visual centre.
func (b *Backend) DrawText(t cardface.TextBlock) error {
	if !b.started {
		return ErrNotStarted
	}
	lines := t.Lines()
	if len(lines) == 0 || b.cols == 0 {
		return nil
	}
	center := blockCenter(t, lines)
	if upsideDown(t.Rotation) {
		lines = slices.Clone(lines)
		slices.Reverse(lines)
	}

	row := b.row(center.Y) - (len(lines)-1)/2
	col := b.col(center.X)
	for i, line := range lines {
		runes := []rune(line)
		start := col - (len(runes)-1)/2
		for j, r := range runes {
			b.set(row+i, start+j, cell{r: r, kind: cellInk, fg: t.Color})
		}
	}
	return nil
}

// DrawImage fills the covered cells. The back gets a shaded pattern, face
// art a blank panel labelled with its key.
func (b *Backend) DrawImage(img cardface.Image) error {
	if !b.started {
		return ErrNotStarted
	}
	if b.cols == 0 {
		return nil
	}
	d := img.Dest
	c0, c1 := b.col(d.X), b.col(d.X+d.Width)
	r0, r1 := b.row(d.Y), b.row(d.Y+d.Height)

	fill := cell{r: '░', kind: cellBack}
	if img.Role == cardface.RoleFace {
		fill = cell{r: ' ', kind: cellFace}
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			b.set(r, c, fill)
		}
	}
	if img.Role == cardface.RoleFace {
		label := []rune(img.Key)
		start := (c0+c1)/2 - (len(label)-1)/2
		for j, r := range label {
			b.set((r0+r1)/2, start+j, cell{r: r, kind: cellFace})
		}
	}
	return nil
}

// blockCenter estimates the centre of a text block in viewport coordinates.
func blockCenter(t cardface.TextBlock, lines []string) cardface.Point {
	spacing := t.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	width := t.Width
	if width <= 0 {
		for _, l := range lines {
			width = math.Max(width, float64(len([]rune(l)))*t.FontSize*0.6)
		}
	}
	n := float64(len(lines))
	lh := t.FontSize * spacing
	local := cardface.Pt(width/2, n*lh/2)
	if t.Anchor == cardface.AnchorBaseline {
		local.Y = -0.35*t.FontSize + (n-1)*lh/2
	}
	return cardface.RotateDegrees(t.Rotation).TransformPoint(local).Add(t.Origin)
}

func upsideDown(deg float64) bool {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d > 90 && d < 270
}

func (b *Backend) col(x float64) int { return int(math.Floor(x / b.width * float64(b.cols))) }
func (b *Backend) row(y float64) int { return int(math.Floor(y / b.height * float64(b.rows))) }

func (b *Backend) set(r, c int, v cell) {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return
	}
	b.grid[r][c] = v
}

func (b *Backend) style(c cell) lipgloss.Style {
	var s lipgloss.Style
	switch c.kind {
	case cellInk:
		s = b.styles.Ink.Foreground(lipgloss.Color(c.fg.Hex()))
	case cellBack:
		s = b.styles.Back
	case cellFace:
		s = b.styles.Face
	default:
		s = lipgloss.NewStyle()
	}
	if b.frame != nil && b.frame.Style.Has(cardface.StyleFill) {
		s = s.Background(lipgloss.Color(b.frame.Fill.Hex()))
	}
	return s
}

// render styles runs of equal cells and wraps the result in the frame.
func (b *Backend) render() string {
	rows := make([]string, b.rows)
	for i, line := range b.grid {
		var sb strings.Builder
		for j := 0; j < len(line); {
			k := j
			var run strings.Builder
			for k < len(line) && line[k].kind == line[j].kind && line[k].fg == line[j].fg {
				run.WriteRune(orSpace(line[k].r))
				k++
			}
			sb.WriteString(b.style(line[j]).Render(run.String()))
			j = k
		}
		rows[i] = sb.String()
	}
	body := strings.Join(rows, "\n")
	if b.frame == nil {
		return body
	}
	frame := b.styles.Frame
	if b.frame.Style.Has(cardface.StyleStroke) {
		frame = frame.BorderForeground(lipgloss.Color(b.frame.Stroke.Hex()))
	}
	return frame.Render(body)
}

func orSpace(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}

// Lines returns the grid as plain text rows, without the frame or styling.
func (b *Backend) Lines() []string {
	out := make([]string, len(b.grid))
	for i, line := range b.grid {
		rs := make([]rune, len(line))
		for j, c := range line {
			rs[j] = orSpace(c.r)
		}
		out[i] = string(rs)
	}
	return out
}

// Size returns the grid size in cells.
func (b *Backend) Size() (cols, rows int) { return b.cols, b.rows }

// String returns the rendered output. It is empty before End.
func (b *Backend) String() string { return b.out }

// WriteTo writes the rendered output followed by a newline.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.started {
		return 0, ErrNotStarted
	}
	n, err := io.WriteString(w, b.out+"\n")
	return int64(n), err
}
