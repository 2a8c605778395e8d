// Package termcap models the terminal-capability database as an external
// collaborator: boolean capability bits and the raw control-sequence
// strings that drive the diff pass's ANSI writer.
package termcap

// Capabilities is the narrow contract the diff and layout passes consume.
// Every field maps directly onto a terminfo capability name; a zero-value
// Capabilities disables every optimization that depends on it rather than
// crashing: a missing capability just forces a slower fallback path.
type Capabilities struct {
	AutoRightMargin  bool // terminfo "am"
	EatNewlineGlitch bool // terminfo "xenl"

	CursorAddress string // terminfo "cup" — absolute cursor move
	CursorUp      string // terminfo "cuu1"
	CursorDown    string // terminfo "cud1"
	CursorLeft    string // terminfo "cub1"
	CursorRight   string // terminfo "cuf1"
	ClrEOL        string // terminfo "el"
	ClrEOS        string // terminfo "ed"

	EnterBoldMode     string // terminfo "bold"
	ExitAttributeMode string // terminfo "sgr0"
	SetAForeground    string // terminfo "setaf"
	SetABackground    string // terminfo "setab"
	CarriageReturn    string // terminfo "cr", conventionally "\r"
}

// KnownSequences returns every non-empty control-sequence string in c, the
// set internal/width.EscapeLength consults as its capability-driven
// fallback. These strings are not added to the layoutcache prefix index.
func (c Capabilities) KnownSequences() []string {
	all := []string{
		c.CursorAddress, c.CursorUp, c.CursorDown, c.CursorLeft, c.CursorRight,
		c.ClrEOL, c.ClrEOS, c.EnterBoldMode, c.ExitAttributeMode,
		c.SetAForeground, c.SetABackground, c.CarriageReturn,
	}
	out := make([]string, 0, len(all))
	for _, s := range all {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SupportsSoftWrapTrick reports whether both capability bits the
// soft-wrap-without-newline optimization depends on are set. The two bits
// are never consulted independently elsewhere in the core.
func (c Capabilities) SupportsSoftWrapTrick() bool {
	return c.AutoRightMargin && c.EatNewlineGlitch
}

// Snapshot is a comparable value used to detect capability changes —
// cleared whenever the underlying terminal variables change. Two
// Capabilities with equal snapshots are treated as identical for
// cache-invalidation purposes.
type Snapshot struct {
	termVariant string
	caps        Capabilities
}

// Snapshot captures c together with the raw $TERM value used to detect it.
func (c Capabilities) Snapshot(termVariant string) Snapshot {
	return Snapshot{termVariant: termVariant, caps: c}
}

// Equal reports whether two snapshots represent the same capability state.
func (s Snapshot) Equal(other Snapshot) bool {
	return s.termVariant == other.termVariant && s.caps == other.caps
}
