package input

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dshills/fluffy/internal/engine"
	"github.com/dshills/fluffy/internal/input/key"
	"github.com/dshills/fluffy/internal/input/shift"
)

// ErrNoCollaborator indicates a command whose collaborator was not
// configured on the router.
var ErrNoCollaborator = errors.New("no collaborator for command")

// Editor is the editing surface the router drives.
// *engine.Engine implements it.
type Editor interface {
	InsertText(s string) error
	InsertTab() error
	DeleteBackward() error
	SplitLine() error
	Paste(text string) error
	MoveCursor(d engine.Direction) (bool, error)
}

// Saver persists the current document.
type Saver interface {
	Save() error
}

// Clipboard supplies text for paste.
type Clipboard interface {
	ReadText() (string, error)
}

// Display receives the presentation commands.
type Display interface {
	// ToggleColors swaps foreground and background and reports whether
	// colors are now inverted.
	ToggleColors() bool
	// IncreaseFontSize grows the font by one and returns the new size.
	IncreaseFontSize() int
	// DecreaseFontSize shrinks the font by one, not below the minimum,
	// and returns the new size.
	DecreaseFontSize() int
}

// Router turns decoded key events into editor calls or commands.
// It holds no text state of its own.
type Router struct {
	editor    Editor
	saver     Saver
	clipboard Clipboard
	display   Display

	mu     sync.RWMutex
	chords map[key.Event]string
	shift  *shift.Table
}

// Option configures a Router.
type Option func(*Router)

// WithSaver sets the collaborator for the save command.
func WithSaver(s Saver) Option {
	return func(r *Router) {
		r.saver = s
	}
}

// WithClipboard sets the collaborator for the paste command.
func WithClipboard(c Clipboard) Option {
	return func(r *Router) {
		r.clipboard = c
	}
}

// WithDisplay sets the collaborator for color and font commands.
func WithDisplay(d Display) Option {
	return func(r *Router) {
		r.display = d
	}
}

// WithShiftTable sets the table used for shifted characters.
func WithShiftTable(t *shift.Table) Option {
	return func(r *Router) {
		r.shift = t
	}
}

// NewRouter creates a router over editor with the default keymap.
func NewRouter(editor Editor, opts ...Option) *Router {
	chords, err := DefaultKeymap().Compile()
	if err != nil {
		panic(fmt.Sprintf("default keymap: %v", err))
	}

	r := &Router{
		editor: editor,
		chords: chords,
		shift:  shift.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetKeymap replaces the command bindings. On error the current bindings
// are kept.
func (r *Router) SetKeymap(m Keymap) error {
	chords, err := m.Compile()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.chords = chords
	r.mu.Unlock()
	return nil
}

// SetShiftTable replaces the shift table.
func (r *Router) SetShiftTable(t *shift.Table) {
	if t == nil {
		return
	}
	r.mu.Lock()
	r.shift = t
	r.mu.Unlock()
}

// Binding returns the action bound to ev, if any.
func (r *Router) Binding(ev key.Event) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	action, ok := r.chords[ev.Chord()]
	return action, ok
}

// Route classifies ev and performs its action.
//
// Control chords are looked up in the keymap and never insert text,
// bound or not; Control wins over Shift. Special keys keep their meaning
// under Shift. Shifted characters go through the shift table and are
// dropped when they have no shifted form. Only printable ASCII is
// inserted.
func (r *Router) Route(ev key.Event) Result {
	if action, ok := r.Binding(ev); ok {
		return r.runCommand(action)
	}
	if ev.Modifiers.HasCtrl() {
		return NoOp("")
	}

	switch ev.Key {
	case key.KeyBackspace:
		return r.edit(ActionDeleteBackward, r.editor.DeleteBackward())
	case key.KeyEnter:
		return r.edit(ActionSplitLine, r.editor.SplitLine())
	case key.KeyTab:
		return r.edit(ActionInsertTab, r.editor.InsertTab())
	case key.KeySpace:
		return r.edit(ActionInsertText, r.editor.InsertText(" "))
	case key.KeyLeft:
		return r.move(ActionMoveLeft, engine.DirLeft)
	case key.KeyRight:
		return r.move(ActionMoveRight, engine.DirRight)
	case key.KeyUp:
		return r.move(ActionMoveUp, engine.DirUp)
	case key.KeyDown:
		return r.move(ActionMoveDown, engine.DirDown)
	case key.KeyRune:
		return r.typeRune(ev)
	default:
		return NoOp("")
	}
}

func (r *Router) typeRune(ev key.Event) Result {
	ch := ev.Rune
	if ch == ' ' {
		return r.edit(ActionInsertText, r.editor.InsertText(" "))
	}

	if ev.Modifiers.HasShift() {
		r.mu.RLock()
		table := r.shift
		r.mu.RUnlock()

		shifted, ok := table.Apply(ch)
		if !ok {
			return NoOp(ActionInsertText)
		}
		ch = shifted
	}

	if ch < 0x20 || ch > 0x7e {
		return NoOp(ActionInsertText)
	}
	return r.edit(ActionInsertText, r.editor.InsertText(string(ch)))
}

func (r *Router) runCommand(action string) Result {
	switch action {
	case ActionSave:
		if r.saver == nil {
			return Error(action, ErrNoCollaborator)
		}
		if err := r.saver.Save(); err != nil {
			return Error(action, err)
		}
		return Success(action)

	case ActionPaste:
		if r.clipboard == nil {
			return Error(action, ErrNoCollaborator)
		}
		text, err := r.clipboard.ReadText()
		if err != nil {
			return Error(action, err)
		}
		if text == "" {
			return NoOp(action)
		}
		return r.edit(action, r.editor.Paste(text))

	case ActionInvertColors:
		if r.display == nil {
			return Error(action, ErrNoCollaborator)
		}
		if r.display.ToggleColors() {
			return SuccessWithMessage(action, "Colors inverted")
		}
		return SuccessWithMessage(action, "Colors normal")

	case ActionFontIncrease:
		if r.display == nil {
			return Error(action, ErrNoCollaborator)
		}
		return SuccessWithMessage(action, fmt.Sprintf("Font size: %d", r.display.IncreaseFontSize()))

	case ActionFontDecrease:
		if r.display == nil {
			return Error(action, ErrNoCollaborator)
		}
		return SuccessWithMessage(action, fmt.Sprintf("Font size: %d", r.display.DecreaseFontSize()))
	}

	return Error(action, fmt.Errorf("%w: %q", ErrUnknownAction, action))
}

func (r *Router) edit(action string, err error) Result {
	if err != nil {
		return Error(action, err)
	}
	return Success(action)
}

func (r *Router) move(action string, d engine.Direction) Result {
	moved, err := r.editor.MoveCursor(d)
	if err != nil {
		return Error(action, err)
	}
	if !moved {
		return NoOp(action)
	}
	return Success(action)
}
