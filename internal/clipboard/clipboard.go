// Package clipboard supplies paste text from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported indicates the platform has no usable clipboard utility.
var ErrUnsupported = errors.New("system clipboard unsupported")

// System reads the platform clipboard through xclip/xsel/wl-paste,
// pbpaste or the Windows API.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() System {
	return System{}
}

// Available reports whether a clipboard utility was found.
func (System) Available() bool {
	return !clipboard.Unsupported
}

// ReadText returns the clipboard contents with CRLF normalized to LF.
func (s System) ReadText() (string, error) {
	if !s.Available() {
		return "", ErrUnsupported
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return normalize(text), nil
}

// WriteText replaces the clipboard contents.
func (s System) WriteText(text string) error {
	if !s.Available() {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard, used when no system clipboard
// exists and in tests.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText returns the stored text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return normalize(m.text), nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

// Reader reads clipboard text.
type Reader interface {
	ReadText() (string, error)
}

// Default returns the system clipboard when available and a memory
// clipboard otherwise.
func Default() Reader {
	if sys := NewSystem(); sys.Available() {
		return sys
	}
	return NewMemory("")
}

func normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
