// Package renderer provides the display layer for the fluffy editor.
//
// The renderer draws a snapshot of the document: a line-number gutter,
// the visible lines, a cursor, and a status line with the document name,
// the last command message and the cursor position. It scrolls to keep
// the cursor in view and never changes the document.
//
// Display holds the state that the toggle-colors and font-size commands
// change. Colors are inverted channel by channel; the font size never
// drops below its minimum. A terminal has no font of its own, so the
// size is reported in the status line.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│    Renderer  (Frame → cells)            │
//	│    Display   (Theme, font size)         │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.NewDisplay(), renderer.DefaultOptions())
//	lines, cur, _ := eng.Snapshot()
//	r.Render(renderer.Frame{Lines: lines, Cursor: cur})
package renderer
