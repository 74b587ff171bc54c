package renderer

import (
	"testing"

	"github.com/dshills/fluffy/internal/renderer/core"
)

func TestThemeInverted(t *testing.T) {
	theme, err := ThemeFromHex("#102030", "#F0E0D0")
	if err != nil {
		t.Fatalf("ThemeFromHex failed: %v", err)
	}

	inv := theme.Inverted()
	if got := inv.Foreground.String(); got != "#EFDFCF" {
		t.Errorf("expected foreground #EFDFCF, got %s", got)
	}
	if got := inv.Background.String(); got != "#0F1F2F" {
		t.Errorf("expected background #0F1F2F, got %s", got)
	}
}

func TestThemeFromHexInvalid(t *testing.T) {
	if _, err := ThemeFromHex("#000", "nope"); err == nil {
		t.Error("expected error for invalid background")
	}
}

func TestThemeStyles(t *testing.T) {
	theme := DefaultTheme()

	text := theme.Text()
	if !text.Foreground.Equals(core.ColorBlack) || !text.Background.Equals(core.ColorWhite) {
		t.Errorf("unexpected text style %+v", text)
	}

	status := theme.Status()
	if !status.Foreground.Equals(core.ColorWhite) || !status.Background.Equals(core.ColorBlack) {
		t.Errorf("status line should be reversed, got %+v", status)
	}

	gutter := theme.Gutter()
	if gutter.Foreground.Equals(core.ColorBlack) || gutter.Foreground.Equals(core.ColorWhite) {
		t.Errorf("gutter should be between text and background, got %s", gutter.Foreground)
	}
}
