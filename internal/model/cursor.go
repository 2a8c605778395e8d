package model

// Cursor is a 0-indexed (x, y) coordinate in grid space: a display column
// and a row, not a character index. It's the type both the tracked
// terminal cursor and the pager's own cursor offset are expressed in.
type Cursor struct {
	x, y int
}

// NewCursor creates a Cursor at (x, y).
func NewCursor(x, y int) Cursor {
	return Cursor{x: x, y: y}
}

// X returns the column.
func (c Cursor) X() int { return c.x }

// Y returns the row.
func (c Cursor) Y() int { return c.y }

// Equals reports whether two cursors refer to the same cell.
func (c Cursor) Equals(other Cursor) bool {
	return c.x == other.x && c.y == other.y
}

// WithX returns a copy of c with the column replaced.
func (c Cursor) WithX(x int) Cursor { return Cursor{x: x, y: c.y} }

// WithY returns a copy of c with the row replaced.
func (c Cursor) WithY(y int) Cursor { return Cursor{x: c.x, y: y} }
