package screen

import "github.com/kelvinrow/screenline/internal/width"

// EscapeCodeLength exposes the escape-sequence length recognizer on the
// public facade, so a host can probe the same recognition logic the layout
// and diff passes use without reaching into internal/width directly.
func (s *Screen) EscapeCodeLength(seq string) int {
	return width.EscapeLength(seq, s.cache, s.caps.KnownSequences())
}
