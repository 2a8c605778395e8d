// Package model defines the grid data model: Cursor, Color, Style, Cell,
// Line and Grid.
package model

// Grid is deliberately a growable slice of variable-length Lines, not a
// fixed width x height matrix of cells. A shell prompt rarely fills the
// terminal width, and most lines never change between renders; a sparse
// representation lets the diff pass compare only the cells a line actually
// holds instead of a full terminal width's worth, and lets a Line simply
// omit its trailing blank columns instead of padding them out.

// Grid is an ordered sequence of Lines representing either the screen's
// desired state or its last-known actual state.
type Grid struct {
	Lines []Line
}

// NewGrid returns an empty grid.
func NewGrid() Grid {
	return Grid{}
}

// AppendLine adds l as the new last line and returns its index.
func (g *Grid) AppendLine(l Line) int {
	g.Lines = append(g.Lines, l)
	return len(g.Lines) - 1
}

// LineAt returns the line at row y and whether that row exists.
func (g Grid) LineAt(y int) (Line, bool) {
	if y < 0 || y >= len(g.Lines) {
		return Line{}, false
	}
	return g.Lines[y], true
}

// Height returns the number of lines in the grid.
func (g Grid) Height() int {
	return len(g.Lines)
}

// Clone returns a deep copy, safe to mutate independently of g.
func (g Grid) Clone() Grid {
	out := Grid{Lines: make([]Line, len(g.Lines))}
	for i, l := range g.Lines {
		cells := make([]Cell, len(l.Cells))
		copy(cells, l.Cells)
		out.Lines[i] = Line{Cells: cells, SoftWrapped: l.SoftWrapped, Indentation: l.Indentation}
	}
	return out
}
