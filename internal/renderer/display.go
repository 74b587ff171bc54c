package renderer

import "sync"

// DefaultFontSize is the starting font size.
const DefaultFontSize = 20

// Display holds presentation state changed by commands: color
// inversion and font size. It is safe for concurrent use.
type Display struct {
	mu          sync.RWMutex
	theme       Theme
	inverted    bool
	fontSize    int
	minFontSize int
}

// DisplayOption configures a Display.
type DisplayOption func(*Display)

// WithTheme sets the base theme.
func WithTheme(t Theme) DisplayOption {
	return func(d *Display) {
		d.theme = t
	}
}

// WithFontSize sets the font size and its floor.
func WithFontSize(size, minSize int) DisplayOption {
	return func(d *Display) {
		d.minFontSize = max(1, minSize)
		d.fontSize = max(d.minFontSize, size)
	}
}

// WithInverted starts the display with inverted colors.
func WithInverted(inverted bool) DisplayOption {
	return func(d *Display) {
		d.inverted = inverted
	}
}

// NewDisplay creates a display state.
func NewDisplay(opts ...DisplayOption) *Display {
	d := &Display{
		theme:       DefaultTheme(),
		fontSize:    DefaultFontSize,
		minFontSize: 1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ToggleColors inverts foreground and background and reports whether
// the colors are now inverted.
func (d *Display) ToggleColors() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inverted = !d.inverted
	return d.inverted
}

// IncreaseFontSize grows the font by one and returns the new size.
func (d *Display) IncreaseFontSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fontSize++
	return d.fontSize
}

// DecreaseFontSize shrinks the font by one, not below the minimum, and
// returns the new size.
func (d *Display) DecreaseFontSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fontSize = max(d.minFontSize, d.fontSize-1)
	return d.fontSize
}

// FontSize returns the current font size.
func (d *Display) FontSize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fontSize
}

// Inverted reports whether colors are inverted.
func (d *Display) Inverted() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.inverted
}

// Theme returns the theme in effect, inverted if toggled.
func (d *Display) Theme() Theme {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.inverted {
		return d.theme.Inverted()
	}
	return d.theme
}

// Configure applies font settings and the inversion flag from
// configuration.
func (d *Display) Configure(size, minSize int, inverted bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.minFontSize = max(1, minSize)
	d.fontSize = max(d.minFontSize, size)
	d.inverted = inverted
}
