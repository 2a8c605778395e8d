package model

// Line is one row of a Grid. Cells holds only the columns actually written;
// a Grid consumer treats any column past len(Cells) as unwritten (the
// terminal's own background), which is what lets the diff pass skip
// trailing blank columns entirely rather than materializing a full-width
// row (see the package doc on Grid for why this is a deliberate departure
// from a fixed width x height matrix).
type Line struct {
	Cells []Cell

	// SoftWrapped reports whether this line continues onto the next line
	// because its content overflowed the terminal width, as opposed to
	// ending because of an explicit newline.
	SoftWrapped bool

	// Indentation is the indent level of this line's command-line content,
	// as taken from the per-character indent vector; the layout pass starts
	// a line after an explicit newline at Indentation times its indent
	// width in columns.
	Indentation int
}

// NewLine returns an empty, non-wrapped line.
func NewLine() Line {
	return Line{}
}

// Width returns the total display width of the cells actually present on
// the line.
func (l Line) Width() int {
	w := 0
	for _, c := range l.Cells {
		w += c.Width()
	}
	return w
}

// Append adds a cell to the end of the line, including a continuation cell
// automatically if c is wide.
func (l *Line) Append(c Cell) {
	l.Cells = append(l.Cells, c)
	if c.Width() == 2 {
		l.Cells = append(l.Cells, ContinuationCell(c.Style))
	}
}

// CellAt returns the cell at index x of Cells and whether that index
// exists. The index equals the display column only on a line without
// zero-width escape cells.
func (l Line) CellAt(x int) (Cell, bool) {
	if x < 0 || x >= len(l.Cells) {
		return Cell{}, false
	}
	return l.Cells[x], true
}
