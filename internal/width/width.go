// Package width provides per-codepoint display width and terminal
// escape-sequence length recognition.
package width

import (
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// CharWidth returns the display width of r: 0 for combining/control
// codepoints, 1 or 2 for printable ones (2 for East-Asian wide / full-width
// and a fixed set of emoji).
//
// The fast path delegates to uniwidth's O(1)/O(log n) lookup tables, which
// cover ASCII, CJK and simple emoji directly. Codepoints that require
// grapheme-cluster context to classify correctly (zero-width joiners,
// variation selectors, combining marks) fall back to uniseg, the same
// two-tier strategy a unicode service uses for whole strings.
func CharWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if needsClusterContext(r) {
		return clusterWidth(r)
	}
	return uniwidth.RuneWidth(r)
}

// needsClusterContext reports whether r can only be classified correctly
// as part of a grapheme cluster rather than in isolation.
func needsClusterContext(r rune) bool {
	switch {
	case r == 0x200D: // zero-width joiner
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin-tone modifiers
		return true
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc): // combining marks
		return true
	}
	return false
}

func clusterWidth(r rune) int {
	s := string(r)
	state := -1
	width := 0
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += uniseg.StringWidth(cluster)
	}
	return width
}
