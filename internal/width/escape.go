package width

import "github.com/kelvinrow/screenline/internal/layoutcache"

// EscapeLength returns the number of leading bytes of s that form a
// terminal escape sequence, or 0 if s does not begin with one. It checks,
// in this order:
//
//  1. A known sequence registered in cache (fast path, binary search).
//  2. A CSI sequence: ESC '[' params (0x30-0x3F) intermediates (0x20-0x2F)
//     final (0x40-0x7E).
//  3. An OSC sequence: ESC ']' up to BEL or ST (ESC '\').
//  4. A conservative fallback: any string in capFallback that is a prefix
//     of s.
//  5. A two-byte ESC sequence (ESC + single byte in 0x20-0x7E not itself
//     starting a CSI/OSC), the last resort for bare cursor-save/restore
//     style codes the capability table doesn't list.
//
// capFallback is typically the set of raw capability strings reported by
// the terminal-capability database (cursor_address, clr_eol, ...) for
// sequences the cache has not yet observed via AddEscapeCode.
func EscapeLength(s string, cache *layoutcache.Cache, capFallback []string) int {
	if len(s) == 0 || s[0] != 0x1b {
		return 0
	}

	if cache != nil {
		if n := cache.FindEscapeCode(s); n > 0 {
			return n
		}
	}

	if n := csiLength(s); n > 0 {
		return n
	}
	if n := oscLength(s); n > 0 {
		return n
	}

	// Known capability strings are checked before the generic two-byte
	// heuristic below: a capability like a multi-byte DCS sequence would
	// otherwise be mistaken for a plain two-byte ESC code.
	for _, cap := range capFallback {
		if cap != "" && len(cap) <= len(s) && s[:len(cap)] == cap {
			return len(cap)
		}
	}

	if n := twoByteLength(s); n > 0 {
		return n
	}
	return 0
}

// csiLength recognizes ESC '[' params intermediates final, per the CSI
// byte-range grammar common to the pack's terminal emulators (e.g. the
// vt10x csiEscape.put final-byte test: b >= 0x40 && b <= 0x7E terminates).
func csiLength(s string) int {
	if len(s) < 2 || s[1] != '[' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 0x30 && b <= 0x3F: // parameter bytes
		case b >= 0x20 && b <= 0x2F: // intermediate bytes
		case b >= 0x40 && b <= 0x7E: // final byte
			return i + 1
		default:
			return 0
		}
	}
	return 0
}

// oscLength recognizes ESC ']' ... (BEL | ESC '\').
func oscLength(s string) int {
	if len(s) < 2 || s[1] != ']' {
		return 0
	}
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case 0x07: // BEL
			return i + 1
		case 0x1b:
			if i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
	}
	return 0
}

// twoByteLength recognizes ESC followed by a single byte in 0x20-0x7E that
// does not itself start a CSI or OSC sequence.
func twoByteLength(s string) int {
	if len(s) < 2 {
		return 0
	}
	b := s[1]
	if b == '[' || b == ']' {
		return 0
	}
	if b >= 0x20 && b <= 0x7E {
		return 2
	}
	return 0
}
