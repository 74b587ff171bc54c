package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/fluffy/internal/engine/buffer"
	"github.com/dshills/fluffy/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Cursor is the (column, row) edit position.
	Cursor = cursor.Cursor

	// LineEnding specifies the line ending style.
	LineEnding = buffer.LineEnding
)

// Re-export constants.
const (
	LineEndingLF   = buffer.LineEndingLF
	LineEndingCRLF = buffer.LineEndingCRLF
)

// Direction is a cursor movement direction.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Engine is the editing engine for one document. It owns the line store
// and the cursor, and every mutating operation updates both together
// under one lock, so the cursor never refers to a row or column that an
// edit has invalidated.
//
// Invariants after every operation:
//
//	LineCount() >= 1
//	0 <= Cursor().Row < LineCount()
//	0 <= Cursor().Column <= LineLen(Cursor().Row)
//
// All operations are thread-safe.
type Engine struct {
	mu sync.RWMutex

	buf *buffer.Buffer
	cur cursor.Cursor

	// Configuration
	tabWidth          int
	lineEnding        buffer.LineEnding
	pasteJoinLastLine bool

	// revision counts content mutations; cursor moves do not count.
	revision uint64

	// Initialization
	initContent string
}

// New creates a new Engine with the given options. Without WithContent
// the document is a single empty line.
func New(opts ...Option) *Engine {
	e := &Engine{
		tabWidth:   DefaultTabWidth,
		lineEnding: buffer.LineEndingLF,
	}

	for _, opt := range opts {
		opt(e)
	}

	bufOpts := []buffer.Option{buffer.WithLineEnding(e.lineEnding)}
	if e.initContent != "" {
		e.buf = buffer.NewBufferFromString(e.initContent, bufOpts...)
	} else {
		e.buf = buffer.NewBuffer(bufOpts...)
	}

	return e
}

// NewFromLines creates an Engine holding the given lines.
func NewFromLines(lines []string, opts ...Option) (*Engine, error) {
	e := New(opts...)
	if err := e.buf.Replace(lines); err != nil {
		return nil, err
	}
	return e, nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Cursor returns the current cursor position.
func (e *Engine) Cursor() Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// LineText returns the text of a row.
func (e *Engine) LineText(row int) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineText(row)
}

// LineLen returns the byte length of a row.
func (e *Engine) LineLen(row int) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineLen(row)
}

// Lines returns a copy of all lines in row order.
func (e *Engine) Lines() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Lines()
}

// Text returns the document with lines joined by '\n'.
func (e *Engine) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// Revision returns a counter that changes on every content mutation.
func (e *Engine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision
}

// Snapshot returns the lines, cursor and revision read under one lock.
func (e *Engine) Snapshot() (lines []string, c Cursor, revision uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Lines(), e.cur, e.revision
}

// ============================================================================
// Edit Operations
// ============================================================================

// InsertText inserts s at the cursor and advances the column by len(s).
// s must not contain '\n' or '\r'; multi-line text goes through Paste.
func (e *Engine) InsertText(s string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkInvariants(); err != nil {
		return err
	}
	if err := e.insertText(s); err != nil {
		return err
	}
	return e.checkInvariants()
}

// InsertTab inserts tab-width spaces at the cursor.
func (e *Engine) InsertTab() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkInvariants(); err != nil {
		return err
	}
	if err := e.insertText(strings.Repeat(" ", e.tabWidth)); err != nil {
		return err
	}
	return e.checkInvariants()
}

// DeleteBackward removes the character before the cursor. At the start
// of a line other than the first, the line is joined onto the previous
// one and the cursor lands on the join point. At (0,0) it does nothing.
func (e *Engine) DeleteBackward() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkInvariants(); err != nil {
		return err
	}

	if e.cur.IsOrigin() {
		return nil
	}

	row, col := e.cur.Row, e.cur.Column
	switch {
	case col > 0:
		line, err := e.buf.LineText(row)
		if err != nil {
			return inconsistent(err)
		}
		if err := e.buf.SetLineText(row, line[:col-1]+line[col:]); err != nil {
			return inconsistent(err)
		}
		e.cur = e.cur.WithColumn(col - 1)

	default:
		prev, err := e.buf.LineText(row - 1)
		if err != nil {
			return inconsistent(err)
		}
		line, err := e.buf.LineText(row)
		if err != nil {
			return inconsistent(err)
		}
		if err := e.buf.SetLineText(row-1, prev+line); err != nil {
			return inconsistent(err)
		}
		if err := e.buf.RemoveLine(row); err != nil {
			return inconsistent(err)
		}
		e.cur = e.cur.MoveTo(len(prev), row-1)
	}

	e.revision++
	return e.checkInvariants()
}

// SplitLine breaks the current line at the cursor. Text from the cursor
// onward moves to a new line below, and the cursor moves to its start.
func (e *Engine) SplitLine() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkInvariants(); err != nil {
		return err
	}
	if err := e.splitLine(); err != nil {
		return err
	}
	return e.checkInvariants()
}

// Paste inserts multi-line text at the cursor. The text is cut into
// sub-lines the way a line reader would: "\r\n", '\n' and a lone '\r'
// terminate a sub-line and a final terminator does not start another
// one. Each sub-line is inserted and followed by a line split, so k
// sub-lines pasted at (c,r) leave the cursor at (0,r+k).
//
// With WithPasteJoinLastLine the split after the last sub-line is
// omitted and the cursor stays at the end of the pasted text.
func (e *Engine) Paste(text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	subs := splitSubLines(text)
	if len(subs) == 0 {
		return nil
	}
	if err := e.checkInvariants(); err != nil {
		return err
	}

	for i, sub := range subs {
		if err := e.insertText(sub); err != nil {
			return inconsistent(err)
		}
		if i == len(subs)-1 && e.pasteJoinLastLine {
			break
		}
		if err := e.splitLine(); err != nil {
			return err
		}
	}

	return e.checkInvariants()
}

// MoveCursor moves the cursor one step in direction d and reports
// whether it moved. Horizontal moves stop at the line ends. Vertical
// moves stop at the first and last rows and clamp the column to the
// target line length; no preferred column is remembered.
func (e *Engine) MoveCursor(d Direction) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.checkInvariants(); err != nil {
		return false, err
	}

	next := e.cur
	switch d {
	case DirLeft:
		if next.Column > 0 {
			next = next.WithColumn(next.Column - 1)
		}
	case DirRight:
		n, err := e.buf.LineLen(next.Row)
		if err != nil {
			return false, inconsistent(err)
		}
		if next.Column < n {
			next = next.WithColumn(next.Column + 1)
		}
	case DirUp:
		if next.Row > 0 {
			next = next.WithRow(next.Row - 1)
		}
	case DirDown:
		if next.Row < e.buf.LineCount()-1 {
			next = next.WithRow(next.Row + 1)
		}
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownDirection, d)
	}

	if next.Row != e.cur.Row {
		n, err := e.buf.LineLen(next.Row)
		if err != nil {
			return false, inconsistent(err)
		}
		next = next.WithColumn(min(next.Column, n))
	}

	moved := !next.Equals(e.cur)
	e.cur = next
	return moved, e.checkInvariants()
}

// SetCursor places the cursor at c. Positions outside the document are
// rejected with ErrOutOfRange and leave the cursor unchanged.
func (e *Engine) SetCursor(c Cursor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.validPosition(c); err != nil {
		return err
	}
	e.cur = c
	return nil
}

// Reset replaces the whole document with lines and moves the cursor to
// (0,0). An empty slice leaves a single empty line. On error nothing
// changes.
func (e *Engine) Reset(lines []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.buf.Replace(lines); err != nil {
		return err
	}
	e.cur = cursor.Cursor{}
	e.revision++
	return e.checkInvariants()
}

// ============================================================================
// Configuration
// ============================================================================

// TabWidth returns the number of spaces inserted by InsertTab.
func (e *Engine) TabWidth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tabWidth
}

// SetTabWidth sets the tab width. Non-positive widths are ignored.
func (e *Engine) SetTabWidth(width int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if width > 0 {
		e.tabWidth = width
	}
}

// SetPasteJoinLastLine controls whether Paste splits after its last
// sub-line.
func (e *Engine) SetPasteJoinLastLine(join bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pasteJoinLastLine = join
}

// LineEnding returns the line ending used when the document is saved.
func (e *Engine) LineEnding() LineEnding {
	return e.buf.LineEnding()
}

// SetLineEnding sets the line ending used when the document is saved.
func (e *Engine) SetLineEnding(le LineEnding) {
	e.buf.SetLineEnding(le)
}

// CheckInvariants reports ErrInconsistentState if the document is empty
// or the cursor lies outside it.
func (e *Engine) CheckInvariants() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.checkInvariants()
}

// ============================================================================
// Internal helpers (caller holds e.mu)
// ============================================================================

func (e *Engine) insertText(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return ErrLineBreak
	}
	if s == "" {
		return nil
	}

	line, err := e.buf.LineText(e.cur.Row)
	if err != nil {
		return inconsistent(err)
	}
	col := e.cur.Column
	if err := e.buf.SetLineText(e.cur.Row, line[:col]+s+line[col:]); err != nil {
		return inconsistent(err)
	}

	e.cur = e.cur.WithColumn(col + len(s))
	e.revision++
	return nil
}

func (e *Engine) splitLine() error {
	line, err := e.buf.LineText(e.cur.Row)
	if err != nil {
		return inconsistent(err)
	}
	keep, move := line[:e.cur.Column], line[e.cur.Column:]

	if err := e.buf.SetLineText(e.cur.Row, keep); err != nil {
		return inconsistent(err)
	}
	if err := e.buf.InsertLine(e.cur.Row+1, move); err != nil {
		return inconsistent(err)
	}

	e.cur = e.cur.MoveTo(0, e.cur.Row+1)
	e.revision++
	return nil
}

func (e *Engine) validPosition(c Cursor) error {
	n, err := e.buf.LineLen(c.Row)
	if err != nil {
		return err
	}
	if c.Column < 0 || c.Column > n {
		return fmt.Errorf("%w: column %d (line %d has length %d)", ErrOutOfRange, c.Column, c.Row, n)
	}
	return nil
}

func (e *Engine) checkInvariants() error {
	if e.buf.LineCount() < 1 {
		return fmt.Errorf("%w: document has no lines", ErrInconsistentState)
	}
	if err := e.validPosition(e.cur); err != nil {
		return fmt.Errorf("%w: cursor %s: %w", ErrInconsistentState, e.cur, err)
	}
	return nil
}

func inconsistent(err error) error {
	return fmt.Errorf("%w: %w", ErrInconsistentState, err)
}

// splitSubLines cuts text into lines the way a line reader does: a final
// terminator does not start another line.
func splitSubLines(text string) []string {
	if text == "" {
		return nil
	}
	subs := buffer.SplitLines(text)
	if len(subs) > 1 && subs[len(subs)-1] == "" {
		subs = subs[:len(subs)-1]
	}
	return subs
}
