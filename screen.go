// Package screen is the public facade over the differential rendering
// core: it wires together the layout pass, the layout cache, terminal
// capability detection and the diff-and-emit pass behind the handful of
// operations a shell's main loop actually calls, the way render/renderer.go
// wraps application.Renderer.
package screen

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/kelvinrow/screenline/internal/ansi"
	"github.com/kelvinrow/screenline/internal/diff"
	"github.com/kelvinrow/screenline/internal/fdstat"
	"github.com/kelvinrow/screenline/internal/layout"
	"github.com/kelvinrow/screenline/internal/layoutcache"
	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/termcap"
)

// ResetMode names the four out-of-band recovery modes a shell can force
// a Screen into between renders. Every mode empties the actual grid and
// sets NeedClearLines, so the next Write rewrites every desired row,
// prompt included. No mode writes any bytes or moves the cursor itself.
type ResetMode int

const (
	// ResetCurrentLineContents does only the common reset.
	ResetCurrentLineContents ResetMode = iota
	// ResetCurrentLineAndPrompt also forgets the last left prompt.
	ResetCurrentLineAndPrompt
	// ResetAbandonLine also forgets the last left prompt, like
	// ResetCurrentLineAndPrompt; it does not advance to a new line.
	ResetAbandonLine
	// ResetAbandonLineAndClearToEndOfScreen additionally makes the next
	// Write clear from the render's first row to the end of the screen
	// before drawing.
	ResetAbandonLineAndClearToEndOfScreen
)

// Stats reports counters from the last render, the kind of summary a
// shell's prompt-timing feature wants.
type Stats struct {
	CellsWritten     int
	AttributeChanges int
	BytesFlushed     int
}

// Screen holds the desired/actual grids and all the cross-render
// bookkeeping a render needs: last prompt metrics, tty stat snapshots, and
// the diff pass's own soft-wrap/style state.
type Screen struct {
	output io.Writer
	logger *log.Logger
	cache  *layoutcache.Cache
	caps   termcap.Capabilities

	desired model.Grid
	actual  model.Grid
	cursor  model.Cursor

	lastLeftPrompt       string
	lastRightPromptWidth int
	actualWidth          int

	diffState diff.State

	actualLinesBeforeReset int

	stdoutPair fdstat.Pair
	stderrPair fdstat.Pair

	stats Stats
}

// New builds a Screen that writes to output using caps. A nil logger
// installs a discard logger, since the host may not want one wired up.
func New(output io.Writer, caps termcap.Capabilities, cache *layoutcache.Cache, logger *log.Logger) *Screen {
	if cache == nil {
		cache = layoutcache.Default
	}
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel + 1)
	}
	return &Screen{
		output:      output,
		logger:      logger,
		cache:       cache,
		caps:        caps,
		actualWidth: -1,
	}
}

// WriteInput bundles the arguments to Write.
type WriteInput struct {
	LeftPrompt    string
	RightPrompt   string
	CommandLine   []rune
	ExplicitLen   int
	Colors        []model.Style
	Indent        []int
	CursorPos     int
	Pager         model.Grid
	CursorInPager bool
	PagerCursor   model.Cursor
	Width         int
	Height        int
	IndentWidth   int
}

// Write performs a full render: build the desired grid, diff it against
// actual, flush the result, then adopt desired as the new actual.
func (s *Screen) Write(in WriteInput) error {
	if s.actualWidth != -1 && s.actualWidth != in.Width {
		s.diffState.NeedClearLines = true
	}
	s.actualWidth = in.Width

	// Snapshot stdout/stderr before writing; SaveStatus (called by the
	// host after the bytes actually land on the tty) fills in the "after"
	// half that the next render's CheckForeignOutput compares against.
	s.stdoutPair.Before = fdstat.Take(int(os.Stdout.Fd()))
	s.stderrPair.Before = fdstat.Take(int(os.Stderr.Fd()))

	result := layout.Build(layout.Input{
		LeftPrompt:    in.LeftPrompt,
		RightPrompt:   in.RightPrompt,
		CommandLine:   in.CommandLine,
		ExplicitLen:   in.ExplicitLen,
		Colors:        in.Colors,
		Indent:        in.Indent,
		CursorPos:     in.CursorPos,
		Pager:         in.Pager,
		CursorInPager: in.CursorInPager,
		PagerCursor:   in.PagerCursor,
		Width:         in.Width,
		Height:        in.Height,
		IndentWidth:   in.IndentWidth,
	}, s.cache, s.caps, s.logger)

	s.desired = result.Desired
	s.lastLeftPrompt = in.LeftPrompt
	s.lastRightPromptWidth = result.RightPromptWidth

	writer := ansi.NewWriter(s.output, s.caps)
	if err := diff.Emit(writer, s.desired, s.actual, result.Cursor, in.Width, s.caps, &s.diffState); err != nil {
		// A writer failure leaves actual untouched so the next render
		// re-attempts the same diff from the prior known state.
		return err
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	s.actual = s.desired
	s.cursor = result.Cursor
	s.recomputeStats()
	return nil
}

func (s *Screen) recomputeStats() {
	cells := 0
	for _, l := range s.actual.Lines {
		for _, c := range l.Cells {
			if !c.IsContinuation() && !c.IsEscape() {
				cells++
			}
		}
	}
	s.stats = Stats{CellsWritten: cells}
}

// Stats returns counters from the last render.
func (s *Screen) Stats() Stats { return s.stats }

// Reset is the two-argument form: resetCursor clears the tracked
// cursor/soft-wrap bookkeeping, resetPrompt forces the prompt to be
// repainted on the next Write.
func (s *Screen) Reset(resetCursor, resetPrompt bool) {
	mode := ResetCurrentLineContents
	if resetPrompt {
		mode = ResetCurrentLineAndPrompt
	}
	s.ResetMode(mode)
	if resetCursor {
		s.diffState = diff.State{
			NeedClearLines:  s.diffState.NeedClearLines,
			NeedClearScreen: s.diffState.NeedClearScreen,
		}
	}
}

// ResetMode is the four-mode form of reset.
func (s *Screen) ResetMode(mode ResetMode) {
	s.actualLinesBeforeReset = s.actual.Height()
	s.actual = model.NewGrid()
	s.diffState.NeedClearLines = true

	switch mode {
	case ResetCurrentLineContents:
		// nothing beyond the common reset above; the next Write's diff
		// against an emptied actual repaints every row in place.
	case ResetCurrentLineAndPrompt:
		s.lastLeftPrompt = ""
	case ResetAbandonLine:
		s.lastLeftPrompt = ""
	case ResetAbandonLineAndClearToEndOfScreen:
		s.lastLeftPrompt = ""
		s.diffState.NeedClearScreen = true
	}
}

// SaveStatus takes the post-write stat snapshots used by the next render's
// foreign-output check.
func (s *Screen) SaveStatus() {
	s.stdoutPair.CompleteAfterWrite(int(os.Stdout.Fd()))
	s.stderrPair.CompleteAfterWrite(int(os.Stderr.Fd()))
}

// CheckForeignOutput reports whether another process has written to
// stdout or stderr since the last SaveStatus call. A caller that sees
// true should call ResetMode(ResetAbandonLine) before its next Write.
func (s *Screen) CheckForeignOutput() bool {
	return s.stdoutPair.ForeignOutputSince(int(os.Stdout.Fd())) ||
		s.stderrPair.ForeignOutputSince(int(os.Stderr.Fd()))
}

// ForceClearToEnd emits clr_eos immediately over stdout, independent of
// any Screen instance.
func ForceClearToEnd(caps termcap.Capabilities) error {
	w := ansi.NewWriter(os.Stdout, caps)
	if err := w.ClrEOS(); err != nil {
		return err
	}
	return w.Flush()
}
