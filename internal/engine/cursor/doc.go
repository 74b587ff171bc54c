// Package cursor provides the cursor position type for text editing.
//
// A Cursor is a (column, row) pair indexing into a line store. Column is
// a byte offset within the line and may equal the line length, which is
// the append position just past the last character.
//
// Cursors carry no behavior beyond equality and copying. Validity is
// an invariant restored by the editing engine after each operation.
package cursor
