package model

import "github.com/kelvinrow/screenline/internal/width"

// Cell is a single displayed codepoint with its style and precomputed
// display width. A Cell with Rune == 0 and no Escape is a continuation
// cell: the trailing half of a wide character occupying the previous
// column. A Cell with Escape set carries an escape sequence embedded in a
// prompt string: it occupies zero display columns and is written verbatim
// by the diff pass instead of being compared cell-by-cell against an
// incoming rune.
type Cell struct {
	Rune   rune
	Style  Style
	Escape string
	width  int
}

// NewCell builds a Cell, computing its display width from r.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, width: width.CharWidth(r)}
}

// EscapeCell wraps a raw escape sequence so it rides along in the grid at
// zero width and is re-emitted byte-for-byte by the diff pass.
func EscapeCell(seq string) Cell {
	return Cell{Escape: seq}
}

// ContinuationCell returns the filler cell placed in the column following a
// wide character.
func ContinuationCell(style Style) Cell {
	return Cell{Rune: 0, Style: style, width: 0}
}

// Width returns the cell's display width (0, 1, or 2).
func (c Cell) Width() int { return c.width }

// IsContinuation reports whether c is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool { return c.Rune == 0 && c.Escape == "" }

// IsEscape reports whether c carries a raw escape sequence rather than a
// displayed codepoint.
func (c Cell) IsEscape() bool { return c.Escape != "" }

// Equals compares rune, escape payload and style; width is derived from
// Rune so it never needs separate comparison.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Escape == other.Escape && c.Style.Equals(other.Style)
}
