package engine

import (
	"github.com/dshills/fluffy/internal/engine/buffer"
)

// Default configuration values.
const (
	DefaultTabWidth = 4
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine. The content is
// split on '\n'.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the number of spaces InsertTab inserts.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithLineEnding sets the line ending style for the engine.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.lineEnding = ending
	}
}

// WithPasteJoinLastLine makes Paste leave the cursor at the end of the
// last pasted sub-line instead of splitting after it.
func WithPasteJoinLastLine(join bool) Option {
	return func(e *Engine) {
		e.pasteJoinLastLine = join
	}
}
