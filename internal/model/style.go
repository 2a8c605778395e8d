package model

import (
	"fmt"
	"strings"
)

// Style is the highlight token attached to a Cell. The layout and diff
// passes treat Style as opaque: they compare styles with Equals, and the
// diff pass also asks IsEmpty to decide on a final attribute reset. Only
// the ANSI writer reads the individual attributes, to build the
// attribute-set sequence.
type Style struct {
	fg        *Color
	bg        *Color
	bold      bool
	underline bool
	reverse   bool
}

// NewStyle returns the empty (default-rendition) style.
func NewStyle() Style { return Style{} }

// NewStyleWithFg returns a style with only a foreground color set.
func NewStyleWithFg(fg Color) Style { return Style{fg: &fg} }

// NewStyleWithBg returns a style with only a background color set.
func NewStyleWithBg(bg Color) Style { return Style{bg: &bg} }

// WithFg returns a copy of s with the foreground color replaced.
func (s Style) WithFg(fg Color) Style { s.fg = &fg; return s }

// WithBg returns a copy of s with the background color replaced.
func (s Style) WithBg(bg Color) Style { s.bg = &bg; return s }

// WithBold returns a copy of s with bold set.
func (s Style) WithBold(bold bool) Style { s.bold = bold; return s }

// WithUnderline returns a copy of s with underline set.
func (s Style) WithUnderline(underline bool) Style { s.underline = underline; return s }

// WithReverse returns a copy of s with reverse video set.
func (s Style) WithReverse(reverse bool) Style { s.reverse = reverse; return s }

// Foreground returns the foreground color, or nil if unset.
func (s Style) Foreground() *Color { return s.fg }

// Background returns the background color, or nil if unset.
func (s Style) Background() *Color { return s.bg }

// Bold reports whether bold is set.
func (s Style) Bold() bool { return s.bold }

// Underline reports whether underline is set.
func (s Style) Underline() bool { return s.underline }

// Reverse reports whether reverse video is set.
func (s Style) Reverse() bool { return s.reverse }

// IsEmpty reports whether s carries no attributes (the default rendition).
func (s Style) IsEmpty() bool {
	return s.fg == nil && s.bg == nil && !s.bold && !s.underline && !s.reverse
}

// Equals is how the diff and layout passes compare styles: two cells are
// considered identically rendered iff their styles are Equal.
func (s Style) Equals(other Style) bool {
	if (s.fg == nil) != (other.fg == nil) {
		return false
	}
	if s.fg != nil && !s.fg.Equals(*other.fg) {
		return false
	}
	if (s.bg == nil) != (other.bg == nil) {
		return false
	}
	if s.bg != nil && !s.bg.Equals(*other.bg) {
		return false
	}
	return s.bold == other.bold && s.underline == other.underline && s.reverse == other.reverse
}

func (s Style) String() string {
	if s.IsEmpty() {
		return "Style(default)"
	}
	var parts []string
	if s.fg != nil {
		parts = append(parts, fmt.Sprintf("fg:%s", s.fg))
	}
	if s.bg != nil {
		parts = append(parts, fmt.Sprintf("bg:%s", s.bg))
	}
	if s.bold {
		parts = append(parts, "bold")
	}
	if s.underline {
		parts = append(parts, "underline")
	}
	if s.reverse {
		parts = append(parts, "reverse")
	}
	return "Style(" + strings.Join(parts, ",") + ")"
}
