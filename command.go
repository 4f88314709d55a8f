// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cardface

// CommandKind identifies the type of a draw command.
type CommandKind uint8

const (
	CmdRoundedRect CommandKind = iota // Filled and/or stroked rounded rectangle
	CmdText                           // Positioned text run
	CmdImage                          // Image placed in a destination rectangle
)

// commandKindNames maps CommandKind values to their string representation.
var commandKindNames = [...]string{
	CmdRoundedRect: "RoundedRect",
	CmdText:        "Text",
	CmdImage:       "Image",
}

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// MarshalText encodes the kind by name.
func (k CommandKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Command is the interface implemented by all draw commands.
// The concrete types are [RoundedRect], [TextBlock] and [Image].
type Command interface {
	// Kind returns the CommandKind for this command.
	Kind() CommandKind
}

// --------------------------------------------------------------------------
// Rounded rectangle
// --------------------------------------------------------------------------

// PaintStyle selects how a shape is painted. Fill and stroke may be combined;
// fill is always painted before stroke.
type PaintStyle uint8

const (
	StyleFill   PaintStyle = 1 << iota // Paint the interior
	StyleStroke                        // Paint the outline
)

// Has reports whether all bits of f are set in s.
func (s PaintStyle) Has(f PaintStyle) bool {
	return s&f == f
}

// String returns "fill", "stroke", "fill+stroke" or "none".
func (s PaintStyle) String() string {
	switch s {
	case StyleFill:
		return "fill"
	case StyleStroke:
		return "stroke"
	case StyleFill | StyleStroke:
		return "fill+stroke"
	}
	return "none"
}

// MarshalText encodes the style by name.
func (s PaintStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RoundedRect paints a rectangle with rounded corners.
type RoundedRect struct {
	Rect   Rect       `json:"rect"`
	Radius float64    `json:"radius"`
	Style  PaintStyle `json:"style"`

	// Fill is used when Style has StyleFill.
	Fill RGBA `json:"fill"`

	// Stroke and StrokeWidth are used when Style has StyleStroke.
	Stroke      RGBA    `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`

	// Clip restricts every following command to the inside of this shape.
	Clip bool `json:"clip"`
}

// Kind implements Command.
func (RoundedRect) Kind() CommandKind { return CmdRoundedRect }

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// Alignment is the horizontal alignment of lines inside a text block.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = [...]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if int(a) < len(alignmentNames) {
		return alignmentNames[a]
	}
	return "unknown"
}

// MarshalText encodes the alignment by name.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Anchor tells a backend which point of the text block Origin refers to.
type Anchor uint8

const (
	// AnchorTop places the top-left corner of the block's layout box at Origin.
	AnchorTop Anchor = iota
	// AnchorBaseline places the left end of the first baseline at Origin.
	AnchorBaseline
)

// String returns "top" or "baseline".
func (a Anchor) String() string {
	if a == AnchorBaseline {
		return "baseline"
	}
	return "top"
}

// MarshalText encodes the anchor by name.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// TextRole distinguishes corner indices from pips.
type TextRole uint8

const (
	RoleCorner TextRole = iota
	RolePip
)

// String returns "corner" or "pip".
func (r TextRole) String() string {
	if r == RolePip {
		return "pip"
	}
	return "corner"
}

// MarshalText encodes the role by name.
func (r TextRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// TextBlock draws one or more lines of text.
//
// The block is laid out in its own frame with Origin at the anchor point,
// then rotated by Rotation degrees about Origin.
type TextBlock struct {
	// Text holds the lines separated by '\n'.
	Text     string  `json:"text"`
	Origin   Point   `json:"origin"`
	Rotation float64 `json:"rotation"`
	FontSize float64 `json:"fontSize"`
	Color    RGBA    `json:"color"`

	Align  Alignment `json:"align"`
	Anchor Anchor    `json:"anchor"`
	Role   TextRole  `json:"role"`

	// LineSpacing multiplies the natural line height between baselines.
	LineSpacing float64 `json:"lineSpacing"`

	// Width is the layout box width lines are aligned within.
	Width float64 `json:"width"`
}

// Kind implements Command.
func (TextBlock) Kind() CommandKind { return CmdText }

// Lines returns the text split into lines.
func (t TextBlock) Lines() []string {
	return splitLines(t.Text)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, 2)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

// --------------------------------------------------------------------------
// Image
// --------------------------------------------------------------------------

// ImageRole distinguishes face art from the card back.
type ImageRole uint8

const (
	RoleFace ImageRole = iota
	RoleBack
)

// String returns "face" or "back".
func (r ImageRole) String() string {
	if r == RoleBack {
		return "back"
	}
	return "face"
}

// MarshalText encodes the role by name.
func (r ImageRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// BackKey is the asset key of the card-back art.
const BackKey = "card-back"

// Image places the asset identified by Key into Dest, scaling to fit.
// Key is resolved by the host's asset collaborator.
type Image struct {
	Key  string    `json:"key"`
	Dest Rect      `json:"dest"`
	Role ImageRole `json:"role"`
}

// Kind implements Command.
func (Image) Kind() CommandKind { return CmdImage }
