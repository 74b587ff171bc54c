package app

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/dshills/fluffy/internal/engine"
)

// UntitledName is the display name of a document without a path.
const UntitledName = "Untitled"

// Document is the open file: its path and the engine holding its text.
// The engine lives as long as the document; opening another file resets
// it in place.
type Document struct {
	// Engine is the text buffer and editing engine.
	Engine *engine.Engine

	mu            sync.RWMutex
	path          string
	name          string
	modTime       time.Time
	savedRevision uint64
}

// NewScratchDocument creates a document with one empty line and no path.
func NewScratchDocument(opts ...engine.Option) *Document {
	eng := engine.New(opts...)
	return &Document{
		Engine:        eng,
		name:          UntitledName,
		savedRevision: eng.Revision(),
	}
}

// Path returns the file path, or "" for a scratch document.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Name returns the display name (base name or "Untitled").
func (d *Document) Name() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.name
}

// ModTime returns the file modification time at the last load or save.
func (d *Document) ModTime() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modTime
}

// SetPath binds the document to path. An empty path makes it a scratch
// document again.
func (d *Document) SetPath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = path
	d.name = displayName(path)
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path() == ""
}

// IsModified returns true if the text changed since the last load or
// save.
func (d *Document) IsModified() bool {
	d.mu.RLock()
	saved := d.savedRevision
	d.mu.RUnlock()
	return d.Engine.Revision() != saved
}

// MarkSaved records revision as the saved state.
func (d *Document) MarkSaved(revision uint64, modTime time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.savedRevision = revision
	d.modTime = modTime
}

func displayName(path string) string {
	if path == "" {
		return UntitledName
	}
	return filepath.Base(path)
}
