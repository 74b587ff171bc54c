package renderer

import (
	"fmt"
	"sync"

	"github.com/dshills/fluffy/internal/engine/cursor"
	"github.com/dshills/fluffy/internal/renderer/backend"
	"github.com/dshills/fluffy/internal/renderer/core"
)

// Frame is a snapshot of the document to draw.
type Frame struct {
	Lines    []string
	Cursor   cursor.Cursor
	Name     string
	Modified bool
	// Message is shown in the status line until the next frame.
	Message string
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool
	ShowStatusLine  bool
	TabWidth        int

	// Lines and columns kept between the cursor and the edge.
	ScrollMarginV int
	ScrollMarginH int

	CursorStyle backend.CursorStyle
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		ShowStatusLine:  true,
		TabWidth:        4,
		ScrollMarginV:   2,
		ScrollMarginH:   8,
		CursorStyle:     backend.CursorBar,
	}
}

// Renderer draws frames to a backend.
type Renderer struct {
	mu sync.Mutex

	backend backend.Backend
	display *Display
	opts    Options
	vp      viewport

	frameCount uint64
}

// New creates a new renderer with the given backend, display state and
// options.
func New(b backend.Backend, display *Display, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	return &Renderer{
		backend: b,
		display: display,
		opts:    opts,
		vp: viewport{
			marginV: opts.ScrollMarginV,
			marginH: opts.ScrollMarginH,
		},
	}
}

// SetTabWidth changes the tab stop used to lay out tab characters.
func (r *Renderer) SetTabWidth(n int) {
	if n < 1 {
		return
	}
	r.mu.Lock()
	r.opts.TabWidth = n
	r.mu.Unlock()
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

// Render draws f and flushes it to the backend.
func (r *Renderer) Render(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := f.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	cur := f.Cursor
	if cur.Row >= len(lines) {
		cur.Row = len(lines) - 1
	}

	width, height := r.backend.Size()
	textHeight := height
	if r.opts.ShowStatusLine && height > 1 {
		textHeight--
	}

	gutterWidth := 0
	if r.opts.ShowLineNumbers {
		gutterWidth = digits(len(lines)) + 1
	}
	textWidth := width - gutterWidth
	if textWidth < 1 {
		gutterWidth, textWidth = 0, width
	}

	theme := r.display.Theme()
	textStyle := theme.Text()

	r.vp.width, r.vp.height = textWidth, textHeight
	r.vp.clampTop(len(lines))
	cursorCol := screenColumn(lines[cur.Row], cur.Column, r.opts.TabWidth)
	r.vp.reveal(cur.Row, cursorCol)

	r.backend.Fill(core.RectFromSize(0, 0, textHeight, width), core.NewStyledCell(' ', textStyle))

	for y := 0; y < textHeight; y++ {
		row := r.vp.top + y
		if row >= len(lines) {
			break
		}
		if gutterWidth > 0 {
			style := theme.Gutter()
			if row == cur.Row {
				style = textStyle.Bold()
			}
			r.drawString(0, y, lineNumber(row, gutterWidth-1), style)
		}
		r.drawLine(gutterWidth, y, textWidth, lines[row], textStyle)
	}

	if r.opts.ShowStatusLine && height > 1 {
		r.drawStatus(height-1, width, f, cur, theme.Status())
	}

	r.backend.SetCursorStyle(r.opts.CursorStyle)
	if y := cur.Row - r.vp.top; y >= 0 && y < textHeight {
		r.backend.ShowCursor(gutterWidth+cursorCol-r.vp.left, y)
	} else {
		r.backend.HideCursor()
	}

	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) drawLine(x0, y, width int, line string, style core.Style) {
	for _, g := range layoutLine(line, r.opts.TabWidth) {
		x := g.col - r.vp.left
		if x < 0 || x+g.width > width {
			continue
		}
		r.backend.SetCell(x0+x, y, core.Cell{Rune: g.r, Width: g.width, Style: style})
	}
}

func (r *Renderer) drawString(x, y int, s string, style core.Style) int {
	for _, ch := range s {
		cell := core.NewStyledCell(ch, style)
		if cell.Width == 0 {
			continue
		}
		r.backend.SetCell(x, y, cell)
		x += cell.Width
	}
	return x
}

func (r *Renderer) drawStatus(y, width int, f Frame, cur cursor.Cursor, style core.Style) {
	r.backend.Fill(core.RectFromSize(y, 0, 1, width), core.NewStyledCell(' ', style))

	name := f.Name
	if name == "" {
		name = "Untitled"
	}
	if f.Modified {
		name += " [+]"
	}
	left := " " + name
	if f.Message != "" {
		left += "  " + f.Message
	}

	right := fmt.Sprintf("Ln %d, Col %d  %dpt ", cur.Row+1, cur.Column+1, r.display.FontSize())

	end := r.drawString(0, y, left, style)
	if rw := core.StringWidth(right); width-rw > end {
		r.drawString(width-rw, y, right, style)
	}
}
