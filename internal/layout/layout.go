// Package layout builds the desired screen grid from a prompt pair, a
// styled command line, and an optional pager. It is the
// largest pass in the core: placing the left prompt, wrapping the command
// line at the terminal width, truncating the autosuggestion tail to fit,
// placing the right prompt if it fits, and folding in pre-rendered pager
// lines.
package layout

import (
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/kelvinrow/screenline/internal/layoutcache"
	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/promptlayout"
	"github.com/kelvinrow/screenline/internal/termcap"
	"github.com/kelvinrow/screenline/internal/width"
)

// Input bundles everything the layout pass needs to build a desired grid.
type Input struct {
	LeftPrompt  string
	RightPrompt string

	// CommandLine is the full buffer, explicit user input followed by any
	// autosuggestion tail. ExplicitLen marks where the typed part ends.
	CommandLine []rune
	ExplicitLen int
	Colors      []model.Style // one per rune of CommandLine
	Indent      []int         // one per rune of CommandLine
	CursorPos   int           // index into CommandLine

	Pager         model.Grid
	CursorInPager bool
	PagerCursor   model.Cursor

	Width       int // W, current terminal column count
	Height      int // rows available for prompt + command line + pager
	IndentWidth int // K, columns per indentation level
}

// Result is the product of a layout pass.
type Result struct {
	Desired                 model.Grid
	Cursor                  model.Cursor
	AutosuggestionTruncated bool
	RightPromptWidth        int
}

// Build runs the layout pass. On malformed input (non-positive width, or
// a colors/indent vector whose length disagrees with CommandLine) it
// degrades to a minimal grid containing only the left prompt and logs a
// developer-visible warning instead of failing.
func Build(in Input, cache *layoutcache.Cache, caps termcap.Capabilities, logger *log.Logger) Result {
	if logger == nil {
		logger = log.New(os.Stderr)
		logger.SetLevel(log.FatalLevel + 1)
	}

	if in.Width <= 0 {
		logger.Warn("invalid terminal width, falling back to minimal prompt-only grid", "width", in.Width)
		return minimalResult(in, cache, caps)
	}
	if len(in.Colors) != len(in.CommandLine) || len(in.Indent) != len(in.CommandLine) {
		logger.Warn("colors/indent length disagrees with command line length, falling back to minimal prompt-only grid",
			"commandline_len", len(in.CommandLine), "colors_len", len(in.Colors), "indent_len", len(in.Indent))
		return minimalResult(in, cache, caps)
	}

	grid := model.NewGrid()
	startRow, startCol := emitPrompt(&grid, in.LeftPrompt, cache, caps)

	commandLine := in.CommandLine
	truncated := false
	pagerRows := len(in.Pager.Lines)
	available := in.Height - pagerRows
	if available < startRow+1 {
		available = startRow + 1 // always room for at least the prompt's own line
	}

	if in.ExplicitLen < len(commandLine) {
		rows := rowsUsed(startRow, startCol, commandLine, in.Indent, in.Width, in.IndentWidth)
		for rows > available && len(commandLine) > in.ExplicitLen {
			commandLine = commandLine[:len(commandLine)-1]
			truncated = true
			rows = rowsUsed(startRow, startCol, commandLine, in.Indent[:len(commandLine)], in.Width, in.IndentWidth)
		}
		if rows > available {
			// Not even one autosuggestion character fits; hide it entirely.
			commandLine = commandLine[:in.ExplicitLen]
			truncated = in.ExplicitLen < len(in.CommandLine)
		}
	}

	colors := in.Colors[:len(commandLine)]
	indent := in.Indent[:len(commandLine)]
	cursor, cursorFound := emitCommandLine(&grid, startRow, startCol, commandLine, colors, indent, in.Width, in.IndentWidth, in.CursorPos)
	if !cursorFound {
		cursor = model.NewCursor(startCol, startRow)
	}

	rightWidth := placeRightPrompt(&grid, in.RightPrompt, in.Width, cache, caps)

	pagerTop := len(grid.Lines)
	for _, l := range in.Pager.Lines {
		grid.AppendLine(l)
	}
	if in.CursorInPager {
		if pagerRows > 0 {
			cursor = model.NewCursor(in.PagerCursor.X(), pagerTop+in.PagerCursor.Y())
		} else {
			logger.Warn("cursor_in_pager set on an empty pager, ignoring and keeping the command-line cursor")
		}
	}

	return Result{
		Desired:                 grid,
		Cursor:                  cursor,
		AutosuggestionTruncated: truncated,
		RightPromptWidth:        rightWidth,
	}
}

func minimalResult(in Input, cache *layoutcache.Cache, caps termcap.Capabilities) Result {
	grid := model.NewGrid()
	_, startCol := emitPrompt(&grid, in.LeftPrompt, cache, caps)
	lastRow := len(grid.Lines) - 1
	if lastRow < 0 {
		lastRow = 0
	}
	return Result{Desired: grid, Cursor: model.NewCursor(startCol, lastRow)}
}

// emitPrompt writes prompt's visible characters (and embedded escape
// sequences, preserved as zero-width marker cells) into grid starting at
// line 0, growing the grid as needed. It returns the row and column where
// the prompt's content ends, i.e. where the command line begins.
func emitPrompt(grid *model.Grid, prompt string, cache *layoutcache.Cache, caps termcap.Capabilities) (row, col int) {
	if len(grid.Lines) == 0 {
		grid.AppendLine(model.NewLine())
	}
	row = 0
	fallback := caps.KnownSequences()
	rest := prompt
	for len(rest) > 0 {
		if n := width.EscapeLength(rest, cache, fallback); n > 0 {
			grid.Lines[row].Append(model.EscapeCell(rest[:n]))
			rest = rest[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '\n':
			row++
			col = 0
			if row >= len(grid.Lines) {
				grid.AppendLine(model.NewLine())
			}
		case '\r':
			col = 0
		default:
			grid.Lines[row].Append(model.NewCell(r, model.NewStyle()))
			col += width.CharWidth(r)
		}
		rest = rest[size:]
	}
	return row, col
}

// rowsUsed reports how many grid rows, starting at (startRow, startCol),
// emitting runes with the given per-rune indentation would occupy. Used to
// search for the longest autosuggestion tail that fits.
func rowsUsed(startRow, startCol int, runes []rune, indent []int, w, indentWidth int) int {
	scratch := model.NewGrid()
	for i := 0; i <= startRow; i++ {
		scratch.AppendLine(model.NewLine())
	}
	colors := make([]model.Style, len(runes))
	_, _ = emitCommandLine(&scratch, startRow, startCol, runes, colors, indent, w, indentWidth, -1)
	return len(scratch.Lines) - startRow
}

// emitCommandLine appends runes to grid starting at (startRow, startCol),
// wrapping at width w and starting a fresh line on '\n'. It reports the
// grid position reached when i == cursorPos, if cursorPos is in range.
func emitCommandLine(grid *model.Grid, startRow, startCol int, runes []rune, colors []model.Style, indent []int, w, indentWidth, cursorPos int) (model.Cursor, bool) {
	for len(grid.Lines) <= startRow {
		grid.AppendLine(model.NewLine())
	}
	row := startRow
	col := startCol
	var cursor model.Cursor
	found := false

	for i, r := range runes {
		if i == cursorPos {
			cursor = model.NewCursor(col, row)
			found = true
		}
		ind := 0
		if i < len(indent) {
			ind = indent[i]
		}
		sty := model.NewStyle()
		if i < len(colors) {
			sty = colors[i]
		}

		if r == '\n' {
			row++
			col = ind * indentWidth
			for len(grid.Lines) <= row {
				grid.AppendLine(model.NewLine())
			}
			grid.Lines[row].Indentation = ind
			continue
		}

		cw := width.CharWidth(r)
		if col+cw > w {
			for col < w {
				grid.Lines[row].Append(model.NewCell(' ', model.NewStyle()))
				col++
			}
			grid.Lines[row].SoftWrapped = true
			row++
			col = 0
			for len(grid.Lines) <= row {
				grid.AppendLine(model.NewLine())
			}
			grid.Lines[row].Indentation = ind
		}
		grid.Lines[row].Append(model.NewCell(r, sty))
		col += cw
	}

	if len(runes) == cursorPos {
		cursor = model.NewCursor(col, row)
		found = true
	}
	return cursor, found
}

// placeRightPrompt appends the right prompt to the end of line 0 if it
// fits alongside whatever the left prompt and command line already used,
// leaving at least one column of gap. It returns the prompt's measured
// width regardless of whether it was placed, so the caller (and the diff
// pass) can detect a prompt that used to be there.
func placeRightPrompt(grid *model.Grid, rightPrompt string, w int, cache *layoutcache.Cache, caps termcap.Capabilities) int {
	if rightPrompt == "" {
		return 0
	}
	layout := promptlayout.Measure(rightPrompt, cache, caps)
	if len(grid.Lines) == 0 {
		grid.AppendLine(model.NewLine())
	}
	line0Used := grid.Lines[0].Width()
	if line0Used+layout.LastLineWidth+1 > w {
		return layout.LastLineWidth
	}

	gap := w - line0Used - layout.LastLineWidth
	for i := 0; i < gap; i++ {
		grid.Lines[0].Append(model.NewCell(' ', model.NewStyle()))
	}
	fallback := caps.KnownSequences()
	rest := rightPrompt
	for len(rest) > 0 {
		if n := width.EscapeLength(rest, cache, fallback); n > 0 {
			grid.Lines[0].Append(model.EscapeCell(rest[:n]))
			rest = rest[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(rest)
		if r != '\n' && r != '\r' {
			grid.Lines[0].Append(model.NewCell(r, model.NewStyle()))
		}
		rest = rest[size:]
	}
	return layout.LastLineWidth
}
