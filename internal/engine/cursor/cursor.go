package cursor

import "fmt"

// Cursor is the edit position within a document: a column (byte offset
// within the line) and a row (0-indexed line number).
//
// Cursor is a plain value type. It owns no text and does not validate
// itself; the editing engine keeps it inside the document bounds.
type Cursor struct {
	Column int
	Row    int
}

// New creates a cursor at the given column and row.
func New(column, row int) Cursor {
	return Cursor{Column: column, Row: row}
}

// MoveTo returns a cursor at the given column and row.
func (c Cursor) MoveTo(column, row int) Cursor {
	return Cursor{Column: column, Row: row}
}

// WithColumn returns a copy with the column replaced.
func (c Cursor) WithColumn(column int) Cursor {
	c.Column = column
	return c
}

// WithRow returns a copy with the row replaced.
func (c Cursor) WithRow(row int) Cursor {
	c.Row = row
	return c
}

// IsOrigin returns true at the start of the document (0,0).
func (c Cursor) IsOrigin() bool {
	return c.Column == 0 && c.Row == 0
}

// String returns a string representation of the cursor as (column,row).
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Column, c.Row)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c == other
}
