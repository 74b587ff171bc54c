package renderer

import "github.com/dshills/fluffy/internal/renderer/core"

// Theme holds the two document colors.
type Theme struct {
	Foreground core.Color
	Background core.Color
}

// DefaultTheme returns black text on a white background.
func DefaultTheme() Theme {
	return Theme{
		Foreground: core.ColorBlack,
		Background: core.ColorWhite,
	}
}

// ThemeFromHex builds a theme from two hex colors.
func ThemeFromHex(fg, bg string) (Theme, error) {
	f, err := core.ColorFromHex(fg)
	if err != nil {
		return Theme{}, err
	}
	b, err := core.ColorFromHex(bg)
	if err != nil {
		return Theme{}, err
	}
	return Theme{Foreground: f, Background: b}, nil
}

// Inverted returns the theme with each color replaced by its complement.
func (t Theme) Inverted() Theme {
	return Theme{
		Foreground: t.Foreground.Invert(),
		Background: t.Background.Invert(),
	}
}

// Text is the style of document text.
func (t Theme) Text() core.Style {
	return core.NewStyle(t.Foreground, t.Background)
}

// Gutter is the style of line numbers: the text color faded halfway
// into the background.
func (t Theme) Gutter() core.Style {
	return core.NewStyle(t.Foreground.Blend(t.Background, 0.5), t.Background)
}

// Status is the style of the status line.
func (t Theme) Status() core.Style {
	return t.Text().Invert()
}
