// Package ansi provides the buffered output sink the diff pass writes
// through, and the small set of control-sequence builders a writer needs:
// cursor motion, clear-to-end-of-line/screen, and attribute sets.
// Cursor motion, clears, bold and attribute reset are written as the
// capability strings the terminal-capability database supplies; colors are
// written as 256-color SGR sequences, emitted only when the matching
// set_a_foreground/set_a_background capability is present. A terminal
// lacking a capability simply leaves it empty and the writer silently
// skips the corresponding output.
package ansi

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/termcap"
)

// Writer batches bytes for a single render in a default-size bufio.Writer;
// output that fits the buffer reaches the underlying writer in one write
// on Flush, larger output is written each time the buffer fills.
type Writer struct {
	out  *bufio.Writer
	caps termcap.Capabilities
}

// NewWriter wraps out with the capability set used to render control
// sequences.
func NewWriter(out io.Writer, caps termcap.Capabilities) *Writer {
	return &Writer{out: bufio.NewWriter(out), caps: caps}
}

// WriteRune writes a single display rune.
func (w *Writer) WriteRune(r rune) error {
	_, err := w.out.WriteRune(r)
	return err
}

// WriteString writes a raw string verbatim (used for escape-sequence
// passthrough cells emitted by the layout pass).
func (w *Writer) WriteString(s string) error {
	_, err := w.out.WriteString(s)
	return err
}

// MoveUp emits the cursor-up capability n times (no-op if n <= 0 or the
// capability is absent). Grid rows are relative to wherever a render
// started, never an absolute screen coordinate, so the diff pass only
// ever asks for relative motion like this.
func (w *Writer) MoveUp(n int) error {
	return w.repeatCapability(w.caps.CursorUp, n)
}

// MoveDown emits the cursor-down capability n times.
func (w *Writer) MoveDown(n int) error {
	return w.repeatCapability(w.caps.CursorDown, n)
}

// MoveLeft emits the cursor-left capability n times.
func (w *Writer) MoveLeft(n int) error {
	return w.repeatCapability(w.caps.CursorLeft, n)
}

// MoveRight emits the cursor-right capability n times.
func (w *Writer) MoveRight(n int) error {
	return w.repeatCapability(w.caps.CursorRight, n)
}

func (w *Writer) repeatCapability(seq string, n int) error {
	if seq == "" || n <= 0 {
		return nil
	}
	return w.WriteString(strings.Repeat(seq, n))
}

// CarriageReturn emits the capability's carriage-return string, or "\r" if
// none was detected.
func (w *Writer) CarriageReturn() error {
	cr := w.caps.CarriageReturn
	if cr == "" {
		cr = "\r"
	}
	return w.WriteString(cr)
}

// ClrEOL clears from the cursor to the end of the current line.
func (w *Writer) ClrEOL() error {
	if w.caps.ClrEOL == "" {
		return nil
	}
	return w.WriteString(w.caps.ClrEOL)
}

// ClrEOS clears from the cursor to the end of the screen.
func (w *Writer) ClrEOS() error {
	if w.caps.ClrEOS == "" {
		return nil
	}
	return w.WriteString(w.caps.ClrEOS)
}

// SetStyle emits the attribute-set sequence for s: a reset followed by
// bold/foreground/background as needed. The diff pass only calls this when
// the outgoing style differs from the last emitted one.
func (w *Writer) SetStyle(s model.Style) error {
	if s.IsEmpty() {
		return w.ResetAttributes()
	}
	if err := w.ResetAttributes(); err != nil {
		return err
	}
	if s.Bold() && w.caps.EnterBoldMode != "" {
		if err := w.WriteString(w.caps.EnterBoldMode); err != nil {
			return err
		}
	}
	if fg := s.Foreground(); fg != nil && w.caps.SetAForeground != "" {
		if err := w.WriteString(fmt.Sprintf("\x1b[38;5;%dm", fg.ToANSI256())); err != nil {
			return err
		}
	}
	if bg := s.Background(); bg != nil && w.caps.SetABackground != "" {
		if err := w.WriteString(fmt.Sprintf("\x1b[48;5;%dm", bg.ToANSI256())); err != nil {
			return err
		}
	}
	return nil
}

// ResetAttributes emits exit_attribute_mode, restoring the default
// rendition.
func (w *Writer) ResetAttributes() error {
	if w.caps.ExitAttributeMode == "" {
		return nil
	}
	return w.WriteString(w.caps.ExitAttributeMode)
}

// Flush delivers all buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}
