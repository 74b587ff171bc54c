package key

import "testing"

func TestEventIsPrintableASCII(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewRuneEvent(' ', ModNone), true},
		{NewRuneEvent('~', ModNone), true},
		{NewRuneEvent(0x7f, ModNone), false},
		{NewRuneEvent(0x1f, ModNone), false},
		{NewRuneEvent('é', ModNone), false},
		{NewSpecialEvent(KeyEnter, ModNone), false},
		{Event{Key: KeyRune}, false},
	}

	for _, tt := range tests {
		if got := tt.event.IsPrintableASCII(); got != tt.want {
			t.Errorf("%#v.IsPrintableASCII() = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestEventChord(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Event
	}{
		{
			name:  "ctrl lowercases and drops shift",
			event: NewRuneEvent('S', ModCtrl|ModShift),
			want:  Event{Key: KeyRune, Rune: 's', Modifiers: ModCtrl},
		},
		{
			name:  "shift kept without ctrl",
			event: NewRuneEvent('A', ModShift),
			want:  Event{Key: KeyRune, Rune: 'A', Modifiers: ModShift},
		},
		{
			name:  "space rune becomes space key",
			event: NewRuneEvent(' ', ModCtrl),
			want:  Event{Key: KeySpace, Modifiers: ModCtrl},
		},
		{
			name:  "special key unchanged",
			event: NewSpecialEvent(KeyLeft, ModAlt),
			want:  Event{Key: KeyLeft, Modifiers: ModAlt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.Chord()
			if got != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent('s', ModCtrl), "Ctrl+S"},
		{NewRuneEvent('=', ModCtrl), "Ctrl+="},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{NewSpecialEvent(KeyLeft, ModShift), "Shift+Left"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('x', ModCtrl)
	b := NewRuneEvent('x', ModCtrl)
	if !a.Equals(b) {
		t.Error("events differing only by timestamp should be equal")
	}
	if a.Equals(NewRuneEvent('x', ModAlt)) {
		t.Error("events with different modifiers should not be equal")
	}
}

func TestEventMatches(t *testing.T) {
	tests := []struct {
		event Event
		spec  string
		want  bool
	}{
		{NewRuneEvent('s', ModCtrl), "Ctrl+S", true},
		{NewRuneEvent('S', ModCtrl|ModShift), "Ctrl+S", true},
		{NewRuneEvent('s', ModNone), "Ctrl+S", false},
		{NewRuneEvent('-', ModCtrl), "Ctrl+-", true},
		{NewSpecialEvent(KeyEnter, ModNone), "Enter", true},
		{NewRuneEvent('a', ModNone), "not a spec", false},
	}

	for _, tt := range tests {
		if got := tt.event.Matches(tt.spec); got != tt.want {
			t.Errorf("%#v.Matches(%q) = %v, want %v", tt.event, tt.spec, got, tt.want)
		}
	}
}
