// Package promptlayout measures how a prompt string will occupy screen
// lines once escape sequences are stripped out, caching the result in the
// shared layoutcache singleton keyed on the prompt string alone
// (capability changes invalidate the whole cache, so the prompt string is
// a valid key on its own).
package promptlayout

import (
	"unicode/utf8"

	"github.com/kelvinrow/screenline/internal/layoutcache"
	"github.com/kelvinrow/screenline/internal/termcap"
	"github.com/kelvinrow/screenline/internal/width"
)

const tabStop = 8

// Measure returns prompt's layout, consulting cache first and populating it
// on a miss. caps supplies the capability-string fallback EscapeLength
// needs to recognize sequences the cache hasn't registered yet.
func Measure(prompt string, cache *layoutcache.Cache, caps termcap.Capabilities) layoutcache.Layout {
	if layout, ok := cache.FindPromptLayout(prompt); ok {
		return layout
	}
	layout := measure(prompt, cache, caps.KnownSequences())
	cache.AddPromptLayout(prompt, layout)
	return layout
}

// measure walks prompt left to right: escape sequences are skipped
// without advancing the column, newline
// commits the current line and resets the column, carriage return resets
// the column without committing, tab advances to the next stop-of-8, and
// any other codepoint adds its display width.
func measure(prompt string, cache *layoutcache.Cache, capFallback []string) layoutcache.Layout {
	lineCount := 1
	col := 0
	maxWidth := 0

	rest := prompt
	for len(rest) > 0 {
		if n := width.EscapeLength(rest, cache, capFallback); n > 0 {
			rest = rest[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '\n':
			if col > maxWidth {
				maxWidth = col
			}
			lineCount++
			col = 0
		case '\r':
			col = 0
		case '\t':
			col += tabStop - (col % tabStop)
		default:
			col += width.CharWidth(r)
		}
		rest = rest[size:]
	}
	if col > maxWidth {
		maxWidth = col
	}
	return layoutcache.Layout{LineCount: lineCount, MaxLineWidth: maxWidth, LastLineWidth: col}
}
