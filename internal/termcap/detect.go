package termcap

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/xo/terminfo"
	"golang.org/x/term"
)

// Detect builds Capabilities for the current process from the terminfo
// entry named by $TERM ("dumb" when unset), falling back to a minimal
// contract if that entry cannot be loaded. NO_COLOR then clears the
// color-setting strings unless FORCE_COLOR is also set. No other
// environment variable is consulted, and whether stdout is a terminal is
// not checked. A nil logger argument is treated as a discard logger.
func Detect(logger *log.Logger) Capabilities {
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel + 1) // effectively discard
	}

	term := os.Getenv("TERM")
	if term == "" {
		term = "dumb"
	}

	ti, err := terminfo.Load(term)
	if err != nil {
		logger.Warn("terminal capability detection failed, falling back to a minimal contract", "TERM", term, "err", err)
		return minimalCapabilities()
	}

	caps := Capabilities{
		AutoRightMargin:  ti.Bools[terminfo.AutoRightMargin],
		EatNewlineGlitch: ti.Bools[terminfo.EatNewlineGlitch],

		CursorAddress: ti.Strings[terminfo.CursorAddress],
		CursorUp:      ti.Strings[terminfo.CursorUp],
		CursorDown:    ti.Strings[terminfo.CursorDown],
		CursorLeft:    ti.Strings[terminfo.CursorLeft],
		CursorRight:   ti.Strings[terminfo.CursorRight],
		ClrEOL:        ti.Strings[terminfo.ClrEol],
		ClrEOS:        ti.Strings[terminfo.ClrEos],

		EnterBoldMode:     ti.Strings[terminfo.EnterBoldMode],
		ExitAttributeMode: ti.Strings[terminfo.ExitAttributeMode],
		SetAForeground:    ti.Strings[terminfo.SetAForeground],
		SetABackground:    ti.Strings[terminfo.SetABackground],
		CarriageReturn:    "\r",
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		if _, force := os.LookupEnv("FORCE_COLOR"); !force {
			caps.SetAForeground = ""
			caps.SetABackground = ""
		}
	}

	return caps
}

func minimalCapabilities() Capabilities {
	return Capabilities{CarriageReturn: "\r"}
}

// WindowWidth returns the terminal column count for fd, falling back to
// fallback when the ioctl fails (not a tty, or a terminfo entry with no
// resize notifications yet wired up).
func WindowWidth(fd int, fallback int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
