package filestore

import (
	"bytes"
	"io/fs"
	"os"
	"time"

	"github.com/dshills/fluffy/internal/engine/buffer"
)

// DefaultMaxFileSize is the largest file Load accepts by default.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Content is the result of loading a file.
type Content struct {
	Lines      []string
	LineEnding buffer.LineEnding
	ModTime    time.Time
}

// Store loads and saves documents on the local file system.
type Store struct {
	maxFileSize int64       // 0 = unlimited
	perm        fs.FileMode // mode for newly created files; existing files keep theirs
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size Load accepts.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// NewStore creates a new Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		maxFileSize: DefaultMaxFileSize,
		perm:        0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the file at path into lines. On error nothing is returned
// and the caller's document stays as it was.
func (s *Store) Load(path string) (Content, error) {
	if path == "" {
		return Content{}, &PathError{Op: "load", Path: path, Err: ErrNoPath}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Content{}, unavailable("load", path, err)
	}
	if info.IsDir() {
		return Content{}, &PathError{Op: "load", Path: path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return Content{}, &PathError{Op: "load", Path: path, Err: ErrFileTooLarge}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, unavailable("load", path, err)
	}
	if isBinary(data) {
		return Content{}, &PathError{Op: "load", Path: path, Err: ErrBinaryFile}
	}

	text := string(data)
	le := buffer.DetectLineEnding(text)
	return Content{
		Lines:      splitLines(text),
		LineEnding: le,
		ModTime:    info.ModTime(),
	}, nil
}

// Save writes lines to path, each followed by the terminator for le, in
// row order. The previous file is replaced only if the whole write
// succeeds.
func (s *Store) Save(path string, lines []string, le buffer.LineEnding) error {
	if path == "" {
		return &PathError{Op: "save", Path: path, Err: ErrNoPath}
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &PathError{Op: "save", Path: path, Err: ErrIsDirectory}
	}

	if err := writeFile(path, Encode(lines, le), s.perm); err != nil {
		return unavailable("save", path, err)
	}
	return nil
}

// Encode serializes lines with one terminator after every line.
func Encode(lines []string, le buffer.LineEnding) []byte {
	sep := le.Sequence()

	n := 0
	for _, l := range lines {
		n += len(l) + len(sep)
	}

	var buf bytes.Buffer
	buf.Grow(n)
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteString(sep)
	}
	return buf.Bytes()
}

// splitLines cuts text into lines the way a line reader does: a final
// terminator does not start another line. Every "\r\n" and lone '\r' is
// a terminator too, whatever the detected line ending.
func splitLines(text string) []string {
	lines := buffer.SplitLines(text)
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isBinary reports whether the first 8KB of content hold a NUL byte.
// Other control characters are plain text.
func isBinary(content []byte) bool {
	sample := content[:min(len(content), 8192)]
	return bytes.IndexByte(sample, 0) >= 0
}
