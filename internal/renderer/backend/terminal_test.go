package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/fluffy/internal/input"
	"github.com/dshills/fluffy/internal/input/key"
	"github.com/dshills/fluffy/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	sim.SetSize(20, 5)
	return term, sim
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{"rune", tcell.KeyRune, 'a', tcell.ModNone, "a"},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, "Space"},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, "Enter"},
		{"tab", tcell.KeyTab, 0, tcell.ModNone, "Tab"},
		{"backspace", tcell.KeyBackspace, 0, tcell.ModNone, "Backspace"},
		{"backspace2", tcell.KeyBackspace2, 0, tcell.ModNone, "Backspace"},
		{"ctrl s", tcell.KeyCtrlS, 0, tcell.ModCtrl, "Ctrl+s"},
		{"ctrl v without mod bit", tcell.KeyCtrlV, 0, tcell.ModNone, "Ctrl+v"},
		{"ctrl equals", tcell.KeyRune, '=', tcell.ModCtrl, "Ctrl+="},
		{"shift left", tcell.KeyLeft, 0, tcell.ModShift, "Shift+Left"},
		{"f5", tcell.KeyF5, 0, tcell.ModNone, "F5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := convertKey(tt.key, tt.r, tt.mod)
			if !ev.Matches(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, ev)
			}
		})
	}
}

func TestConvertKeyCtrlI(t *testing.T) {
	ev := convertKey(tcell.KeyCtrlI, 0, tcell.ModCtrl)
	if !ev.Matches("Ctrl+I") {
		t.Fatalf("expected Ctrl+I, got %s", ev)
	}

	router := input.NewRouter(nil)
	action, ok := router.Binding(ev)
	if !ok || action != input.ActionInvertColors {
		t.Errorf("expected %q, got %q (bound %v)", input.ActionInvertColors, action, ok)
	}
}

func TestConvertKeyTabStaysTab(t *testing.T) {
	ev := convertKey(tcell.KeyTab, 0, tcell.ModNone)
	if ev.Key != key.KeyTab || !ev.Modifiers.IsEmpty() {
		t.Errorf("expected Tab, got %s", ev)
	}

	router := input.NewRouter(nil)
	if action, ok := router.Binding(ev); ok {
		t.Errorf("expected Tab unbound, got %q", action)
	}
}

func TestConvertMod(t *testing.T) {
	got := convertMod(tcell.ModShift | tcell.ModAlt)
	if !got.HasShift() || !got.HasAlt() || got.HasCtrl() {
		t.Errorf("unexpected modifiers %s", got)
	}
}

func TestTerminalPollKey(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)

	for {
		ev := term.PollEvent()
		if ev.Type == EventResize {
			continue
		}
		if ev.Type != EventKey {
			t.Fatalf("expected key event, got %v", ev.Type)
		}
		if !ev.Key.Matches("Ctrl+S") {
			t.Errorf("expected Ctrl+S, got %s", ev.Key)
		}
		return
	}
}

func TestTerminalInterrupt(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.Interrupt()
	for {
		ev := term.PollEvent()
		if ev.Type == EventResize {
			continue
		}
		if ev.Type != EventInterrupt {
			t.Errorf("expected EventInterrupt, got %v", ev.Type)
		}
		return
	}
}

func TestTerminalDraw(t *testing.T) {
	term, sim := newSimTerminal(t)

	style := core.NewStyle(core.ColorBlack, core.ColorWhite)
	term.Fill(core.RectFromSize(0, 0, 1, 20), core.NewStyledCell(' ', style))
	term.SetCell(0, 0, core.NewStyledCell('h', style))
	term.SetCell(1, 0, core.NewStyledCell('i', style))
	term.ShowCursor(2, 0)
	term.Show()

	cells, width, _ := sim.GetContents()
	if got := string(cells[0].Runes) + string(cells[1].Runes); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}

	fg, bg, _ := cells[0].Style.Decompose()
	if fg != tcell.NewRGBColor(0, 0, 0) || bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("unexpected colors fg=%v bg=%v", fg, bg)
	}
	if width != 20 {
		t.Errorf("expected width 20, got %d", width)
	}

	x, y, visible := sim.GetCursor()
	if x != 2 || y != 0 || !visible {
		t.Errorf("expected cursor (2, 0, true), got (%d, %d, %v)", x, y, visible)
	}
}
