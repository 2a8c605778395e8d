// Package diff implements the diff-and-emit pass: given a desired grid and
// the last known actual grid, it walks line by line and cell by cell,
// writing only the minimal cursor moves, attribute changes, and character
// writes needed to reconcile them.
package diff

import (
	"github.com/kelvinrow/screenline/internal/ansi"
	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/termcap"
)

// State carries the render-to-render bookkeeping the diff pass needs:
// whether a soft-wrap cursor trick left the terminal's real cursor one
// column past the end of a line, the last attribute set emitted, and the
// two "everything is dirty" flags a resize or full-screen clear raises.
// Callers own a single State per screen and pass it to every Emit call.
type State struct {
	NeedClearLines  bool
	NeedClearScreen bool

	softWrapValid bool
	softWrapRow   int
	softWrapCol   int

	// curRow/curCol track where the diff pass believes the terminal's
	// real cursor sits, so moveCursor can skip a redundant move and compute
	// the relative row and column deltas it emits.
	curRow, curCol int

	lastStyleSet bool
	lastStyle    model.Style
}

// Emit writes the byte stream that takes actual to desired, given the
// current terminal width w and cursor target. It does not mutate desired
// or actual; the caller is responsible for assigning actual = desired
// once Emit returns without error.
func Emit(writer *ansi.Writer, desired, actual model.Grid, cursor model.Cursor, w int, caps termcap.Capabilities, state *State) error {
	effectiveActual := actual
	if state.NeedClearScreen {
		firstActualRow := 0
		if err := moveCursor(writer, state, firstActualRow, 0); err != nil {
			return err
		}
		if err := writer.ClrEOS(); err != nil {
			return err
		}
		effectiveActual = model.NewGrid()
		state.NeedClearScreen = false
		state.softWrapValid = false
	}

	rows := desired.Height()
	if effectiveActual.Height() > rows {
		rows = effectiveActual.Height()
	}

	for row := 0; row < rows; row++ {
		dLine, hasDesired := desired.LineAt(row)
		if !hasDesired {
			if err := moveCursor(writer, state, row, 0); err != nil {
				return err
			}
			if err := writer.ClrEOL(); err != nil {
				return err
			}
			if caps.ClrEOS != "" {
				if err := writer.ClrEOS(); err != nil {
					return err
				}
				break
			}
			continue
		}

		aLine, _ := effectiveActual.LineAt(row)
		if err := emitLine(writer, dLine, aLine, row, w, caps, state); err != nil {
			return err
		}
	}

	if err := moveCursor(writer, state, cursor.Y(), cursor.X()); err != nil {
		return err
	}
	if state.lastStyleSet && !state.lastStyle.IsEmpty() {
		if err := writer.ResetAttributes(); err != nil {
			return err
		}
		state.lastStyleSet = false
		state.lastStyle = model.NewStyle()
	}

	state.NeedClearLines = false
	return nil
}

func emitLine(writer *ansi.Writer, desired, actual model.Line, row, w int, caps termcap.Capabilities, state *State) error {
	skip := 0
	for skip < len(desired.Cells) && skip < len(actual.Cells) && desired.Cells[skip].Equals(actual.Cells[skip]) {
		skip++
	}

	needsWrite := skip < len(desired.Cells) || actual.Width() > desired.Width()
	if needsWrite {
		col := columnOf(desired.Cells, skip)
		if err := moveCursor(writer, state, row, col); err != nil {
			return err
		}
		for i := skip; i < len(desired.Cells); i++ {
			cell := desired.Cells[i]
			switch {
			case cell.IsContinuation():
				continue
			case cell.IsEscape():
				if err := writer.WriteString(cell.Escape); err != nil {
					return err
				}
			default:
				if !state.lastStyleSet || !state.lastStyle.Equals(cell.Style) {
					if err := writer.SetStyle(cell.Style); err != nil {
						return err
					}
					state.lastStyle = cell.Style
					state.lastStyleSet = true
				}
				if err := writer.WriteRune(cell.Rune); err != nil {
					return err
				}
			}
		}
		state.curRow = row
		state.curCol = desired.Width()

		if actual.Width() > desired.Width() || state.NeedClearLines {
			if err := writer.ClrEOL(); err != nil {
				return err
			}
		}
		// Any explicit write invalidates a previously recorded soft-wrap
		// position for this row.
		if state.softWrapValid && state.softWrapRow == row {
			state.softWrapValid = false
		}
	}

	if desired.SoftWrapped && caps.SupportsSoftWrapTrick() {
		state.softWrapValid = true
		state.softWrapRow = row
		state.softWrapCol = w
	}
	return nil
}

// columnOf returns the display column reached after writing cells[:idx].
func columnOf(cells []model.Cell, idx int) int {
	col := 0
	for _, c := range cells[:idx] {
		col += c.Width()
	}
	return col
}

// moveCursor positions the terminal cursor at (col, row), skipping the
// move entirely when a recorded soft-wrap already put it there implicitly.
// row is relative to wherever the render started, not an absolute screen
// coordinate — the diff pass never knows where on the physical screen that
// is, so the only sequences it can legitimately emit are relative ones:
// cursor-up/down for the row delta, a carriage return when the target
// column is 0, and cursor-left/right for the remaining column delta
// otherwise.
func moveCursor(writer *ansi.Writer, state *State, row, col int) error {
	if state.softWrapValid && state.softWrapRow == row-1 && col == 0 {
		state.softWrapValid = false
		state.curRow, state.curCol = row, 0
		return nil
	}
	state.softWrapValid = false

	if state.curRow == row && state.curCol == col {
		return nil
	}

	if delta := row - state.curRow; delta > 0 {
		if err := writer.MoveDown(delta); err != nil {
			return err
		}
	} else if delta < 0 {
		if err := writer.MoveUp(-delta); err != nil {
			return err
		}
	}

	if col == 0 {
		if err := writer.CarriageReturn(); err != nil {
			return err
		}
	} else if delta := col - state.curCol; delta > 0 {
		if err := writer.MoveRight(delta); err != nil {
			return err
		}
	} else if delta < 0 {
		if err := writer.MoveLeft(-delta); err != nil {
			return err
		}
	}

	state.curRow, state.curCol = row, col
	return nil
}
