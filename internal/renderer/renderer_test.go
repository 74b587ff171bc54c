package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/fluffy/internal/engine/cursor"
	"github.com/dshills/fluffy/internal/renderer/backend"
	"github.com/dshills/fluffy/internal/renderer/core"
)

func newTestRenderer(t *testing.T, width, height int) (*Renderer, *backend.NullBackend, *Display) {
	t.Helper()
	b := backend.NewNullBackend(width, height)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	d := NewDisplay()
	return New(b, d, DefaultOptions()), b, d
}

func TestRenderLinesWithGutter(t *testing.T) {
	r, b, _ := newTestRenderer(t, 20, 4)

	r.Render(Frame{
		Lines:  []string{"Hello", "World"},
		Cursor: cursor.New(2, 1),
	})

	if got := b.Row(0); !strings.HasPrefix(got, "1 Hello") {
		t.Errorf("expected row 0 %q, got %q", "1 Hello", got)
	}
	if got := b.Row(1); !strings.HasPrefix(got, "2 World") {
		t.Errorf("expected row 1 %q, got %q", "2 World", got)
	}
	if got := strings.TrimSpace(b.Row(2)); got != "" {
		t.Errorf("expected blank row 2, got %q", got)
	}

	x, y, visible := b.CursorPosition()
	if x != 4 || y != 1 || !visible {
		t.Errorf("expected cursor (4, 1, true), got (%d, %d, %v)", x, y, visible)
	}
	if b.CursorStyleValue() != backend.CursorBar {
		t.Errorf("expected bar cursor, got %v", b.CursorStyleValue())
	}
	if r.FrameCount() != 1 {
		t.Errorf("expected 1 frame, got %d", r.FrameCount())
	}
}

func TestRenderGutterWidth(t *testing.T) {
	r, b, _ := newTestRenderer(t, 20, 12)

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "x"
	}
	r.Render(Frame{Lines: lines})

	if got := b.Row(0); !strings.HasPrefix(got, " 1 x") {
		t.Errorf("expected right-aligned number, got %q", got)
	}
	if got := b.Row(9); !strings.HasPrefix(got, "10 x") {
		t.Errorf("expected %q, got %q", "10 x", got)
	}
}

func TestRenderStatusLine(t *testing.T) {
	r, b, _ := newTestRenderer(t, 40, 3)

	r.Render(Frame{
		Lines:    []string{"abc"},
		Cursor:   cursor.New(3, 0),
		Name:     "notes.txt",
		Modified: true,
		Message:  "Saved",
	})

	status := b.Row(2)
	if !strings.HasPrefix(status, " notes.txt [+]  Saved") {
		t.Errorf("unexpected status left side %q", status)
	}
	if !strings.HasSuffix(status, "Ln 1, Col 4  20pt ") {
		t.Errorf("unexpected status right side %q", status)
	}

	cell := b.GetCell(0, 2)
	if !cell.Style.Background.Equals(core.ColorBlack) {
		t.Errorf("status line should use reversed colors, got %+v", cell.Style)
	}
}

func TestRenderUntitled(t *testing.T) {
	r, b, _ := newTestRenderer(t, 40, 2)

	r.Render(Frame{Lines: []string{""}})

	if got := b.Row(1); !strings.HasPrefix(got, " Untitled") {
		t.Errorf("expected Untitled, got %q", got)
	}
}

func TestRenderInvertedColors(t *testing.T) {
	r, b, d := newTestRenderer(t, 20, 3)

	r.Render(Frame{Lines: []string{"a"}})
	if got := b.GetCell(2, 0).Style.Background; !got.Equals(core.ColorWhite) {
		t.Errorf("expected white background, got %s", got)
	}

	d.ToggleColors()
	r.Render(Frame{Lines: []string{"a"}})
	if got := b.GetCell(2, 0).Style.Background; !got.Equals(core.ColorBlack) {
		t.Errorf("expected black background after toggle, got %s", got)
	}
	if got := b.GetCell(2, 0).Style.Foreground; !got.Equals(core.ColorWhite) {
		t.Errorf("expected white text after toggle, got %s", got)
	}
}

func TestRenderScrollsToCursor(t *testing.T) {
	r, b, _ := newTestRenderer(t, 20, 6)

	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	r.Render(Frame{Lines: lines, Cursor: cursor.New(0, 40)})

	_, y, visible := b.CursorPosition()
	if !visible {
		t.Fatal("cursor should be visible after scrolling")
	}
	if y < 0 || y >= 5 {
		t.Errorf("cursor row %d outside text area", y)
	}
	if got := b.Row(y); !strings.HasPrefix(got, "41 line") {
		t.Errorf("expected cursor row to show line 41, got %q", got)
	}
}

func TestRenderHorizontalScroll(t *testing.T) {
	r, b, _ := newTestRenderer(t, 12, 3)

	line := strings.Repeat("abcdefghij", 5)
	r.Render(Frame{Lines: []string{line}, Cursor: cursor.New(len(line), 0)})

	x, _, visible := b.CursorPosition()
	if !visible || x >= 12 {
		t.Errorf("cursor should be on screen, got x=%d visible=%v", x, visible)
	}
}

func TestRenderTabsAndWideRunes(t *testing.T) {
	r, b, _ := newTestRenderer(t, 20, 3)
	r.SetTabWidth(4)

	r.Render(Frame{Lines: []string{"\tx"}, Cursor: cursor.New(1, 0)})

	if got := b.Row(0); !strings.HasPrefix(got, "1     x") {
		t.Errorf("expected tab expanded to 4 cells, got %q", got)
	}
	if x, _, _ := b.CursorPosition(); x != 6 {
		t.Errorf("expected cursor x 6, got %d", x)
	}
}

func TestRenderTinyScreen(t *testing.T) {
	r, b, _ := newTestRenderer(t, 1, 1)

	// Must not panic; with no room for a gutter the text takes the width.
	r.Render(Frame{Lines: []string{"abc"}, Cursor: cursor.New(3, 0)})

	if got := b.Row(0); len(got) != 1 {
		t.Errorf("expected one cell, got %q", got)
	}
}

func TestRenderEmptyFrame(t *testing.T) {
	r, b, _ := newTestRenderer(t, 10, 3)

	r.Render(Frame{Cursor: cursor.New(0, 5)})

	if got := b.Row(0); !strings.HasPrefix(got, "1 ") {
		t.Errorf("empty frame should draw one empty line, got %q", got)
	}
}
