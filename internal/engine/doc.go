// Package engine provides the editing engine for a single plain-text
// document.
//
// The engine combines the line store (buffer) and the cursor (cursor)
// and exposes the editing operations that mutate both together:
//
//   - InsertText / InsertTab: insert at the cursor and advance it
//   - DeleteBackward: delete before the cursor, joining lines at column 0
//   - SplitLine: break the line at the cursor (Enter)
//   - Paste: insert multi-line text, one line split per sub-line
//   - MoveCursor: one step left, right, up or down with clamping
//
// # Basic Usage
//
//	e := engine.New()
//	e.InsertText("Hello")     // ["Hello"], cursor (5,0)
//	e.MoveCursor(engine.DirLeft)
//	e.MoveCursor(engine.DirLeft)
//	e.MoveCursor(engine.DirLeft)
//	e.SplitLine()             // ["He", "llo"], cursor (0,1)
//	e.DeleteBackward()        // ["Hello"], cursor (2,0)
//
// # Invariants
//
// The document always has at least one line and the cursor always lies
// inside it. Each operation checks the invariants on entry and on exit;
// a breach is reported as ErrInconsistentState, which signals a defect
// in the caller rather than a user-facing condition.
//
// Malformed input is rejected without side effects: InsertText with a
// '\n' returns ErrLineBreak and leaves the document as it was.
//
// # Thread Safety
//
// All Engine operations are thread-safe. Editing is expected to happen
// on one goroutine; the lock lets renderers and config reloads read and
// reconfigure safely from others.
package engine
