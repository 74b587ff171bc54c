package buffer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfRange indicates a row or column outside the buffer.
	ErrOutOfRange = errors.New("position out of range")

	// ErrLastLine indicates an attempt to remove the only remaining line.
	ErrLastLine = errors.New("cannot remove the last line")

	// ErrLineBreak indicates line content that contains '\n' or '\r'.
	ErrLineBreak = errors.New("line content contains a line break")
)

// Buffer is the line store of a document: an ordered, never-empty
// sequence of lines. Rows are 0-indexed and contiguous.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	lineEnding LineEnding
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromLines creates a buffer from the given lines.
// An empty slice yields a buffer with one empty line.
func NewBufferFromLines(lines []string, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)
	if err := b.Replace(lines); err != nil {
		return nil, err
	}
	return b, nil
}

// NewBufferFromString creates a buffer by splitting s with SplitLines.
// Unlike a file read, a trailing terminator produces a final empty line.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = SplitLines(s)
	return b
}

// SplitLines cuts text into lines at "\r\n", '\n' and a lone '\r', so no
// returned line holds a line break. A trailing terminator yields a final
// empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of the given row.
func (b *Buffer) LineText(row int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRow(row, len(b.lines)-1); err != nil {
		return "", err
	}
	return b.lines[row], nil
}

// LineLen returns the length of the given row in bytes.
func (b *Buffer) LineLen(row int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRow(row, len(b.lines)-1); err != nil {
		return 0, err
	}
	return len(b.lines[row]), nil
}

// Lines returns a copy of all lines in row order.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Text returns the buffer content with lines joined by '\n'.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, "\n")
}

// Write Operations

// InsertLine inserts a new line with the given content at row, shifting
// the rows at and after it down by one. row may equal LineCount() to
// append.
func (b *Buffer) InsertLine(row int, content string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRow(row, len(b.lines)); err != nil {
		return err
	}
	if err := checkContent(content); err != nil {
		return err
	}

	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = content
	return nil
}

// RemoveLine removes the line at row. The last remaining line cannot be
// removed.
func (b *Buffer) RemoveLine(row int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRow(row, len(b.lines)-1); err != nil {
		return err
	}
	if len(b.lines) == 1 {
		return ErrLastLine
	}

	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	return nil
}

// SetLineText replaces the content of the line at row.
func (b *Buffer) SetLineText(row int, content string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRow(row, len(b.lines)-1); err != nil {
		return err
	}
	if err := checkContent(content); err != nil {
		return err
	}

	b.lines[row] = content
	return nil
}

// Replace swaps the whole content for lines. An empty slice leaves a
// single empty line. On error the buffer is unchanged.
func (b *Buffer) Replace(lines []string) error {
	for i, l := range lines {
		if err := checkContent(l); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}

	next := make([]string, len(lines))
	copy(next, lines)
	if len(next) == 0 {
		next = []string{""}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = next
	return nil
}

// Buffer State

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the line ending used when the buffer is serialized.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// checkRow validates 0 <= row <= last. Caller must hold the lock.
func (b *Buffer) checkRow(row, last int) error {
	if row < 0 || row > last {
		return fmt.Errorf("%w: row %d (line count %d)", ErrOutOfRange, row, len(b.lines))
	}
	return nil
}

func checkContent(content string) error {
	if strings.ContainsAny(content, "\r\n") {
		return ErrLineBreak
	}
	return nil
}
