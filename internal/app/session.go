package app

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/fluffy/internal/config"
	"github.com/dshills/fluffy/internal/engine"
	"github.com/dshills/fluffy/internal/engine/buffer"
	"github.com/dshills/fluffy/internal/filestore"
	"github.com/dshills/fluffy/internal/input"
	"github.com/dshills/fluffy/internal/input/key"
	"github.com/dshills/fluffy/internal/input/shift"
	"github.com/dshills/fluffy/internal/renderer"
)

// Options configures a Session. Nil fields get defaults.
type Options struct {
	Config    *config.Config
	Logger    *Logger
	Store     *filestore.Store
	Clipboard input.Clipboard
	Display   *renderer.Display
}

// Session owns everything for one editing session: the document, its
// engine, the router, the configuration and the logger. Nothing is
// global.
type Session struct {
	id uuid.UUID

	mu      sync.RWMutex
	cfg     *config.Config
	message string

	doc     *Document
	router  *input.Router
	store   *filestore.Store
	display *renderer.Display
	logger  *Logger
}

// NewSession creates a session with an empty scratch document and
// applies opts.Config.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := opts.Store
	if store == nil {
		store = filestore.NewStore()
	}
	display := opts.Display
	if display == nil {
		display = renderer.NewDisplay(
			renderer.WithFontSize(cfg.Display.FontSize, cfg.Display.MinFontSize),
			renderer.WithInverted(cfg.Display.Inverted),
		)
	}

	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}
	logger = logger.WithFields(map[string]any{
		"session":   id.String(),
		"component": "session",
	})

	s := &Session{
		id:      id,
		doc:     NewScratchDocument(),
		store:   store,
		display: display,
		logger:  logger,
	}

	routerOpts := []input.Option{
		input.WithSaver(s),
		input.WithDisplay(display),
	}
	if opts.Clipboard != nil {
		routerOpts = append(routerOpts, input.WithClipboard(opts.Clipboard))
	}
	s.router = input.NewRouter(s.doc.Engine, routerOpts...)

	if err := s.applyConfig(cfg, true); err != nil {
		return nil, NewOperationError("configure", "", err)
	}
	logger.Debug("session started")
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns the open document.
func (s *Session) Document() *Document {
	return s.doc
}

// Display returns the display state driven by commands.
func (s *Session) Display() *renderer.Display {
	return s.display
}

// Config returns the configuration in effect.
func (s *Session) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Message returns the last status message.
func (s *Session) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

func (s *Session) setMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Open loads path into the document. On failure the text is left as it
// was and an *OperationError is returned. A missing file still becomes
// the save target, so saving creates it with the current text.
func (s *Session) Open(path string) error {
	content, err := s.store.Load(path)
	if err != nil {
		opErr := NewOperationError("open", path, err)
		if errors.Is(err, fs.ErrNotExist) {
			s.doc.SetPath(path)
			s.setMessage("New file: " + s.doc.Name())
			s.logger.Info("new file %s", path)
			return opErr.WithContext("new file")
		}
		s.logger.Error("open failed: %v", err)
		return opErr
	}

	if err := s.doc.Engine.Reset(content.Lines); err != nil {
		return NewOperationError("open", path, err)
	}
	s.doc.SetPath(path)
	s.doc.MarkSaved(s.doc.Engine.Revision(), content.ModTime)

	le := content.LineEnding
	if forced, ok := s.forcedLineEnding(); ok {
		le = forced
	}
	s.doc.Engine.SetLineEnding(le)

	s.setMessage(fmt.Sprintf("Opened: %s (%d lines)", s.doc.Name(), len(content.Lines)))
	s.logger.Info("opened %s: %d lines, %s", path, len(content.Lines), content.LineEnding)
	return nil
}

// Save writes the document to its path. It implements input.Saver.
func (s *Session) Save() error {
	path := s.doc.Path()
	if path == "" {
		s.logger.Warn("save rejected: no file path")
		return NewOperationError("save", s.doc.Name(), ErrNoSaveTarget)
	}

	lines, _, revision := s.doc.Engine.Snapshot()
	if err := s.store.Save(path, lines, s.doc.Engine.LineEnding()); err != nil {
		s.logger.Error("save failed: %v", err)
		return NewOperationError("save", path, err)
	}

	s.doc.MarkSaved(revision, time.Now())
	s.logger.Info("saved %s: %d lines", path, len(lines))
	return nil
}

// HandleKey routes one key event and records the outcome as the status
// message.
func (s *Session) HandleKey(ev key.Event) input.Result {
	res := s.router.Route(ev)

	switch {
	case res.IsError():
		s.setMessage("Error: " + res.Error.Error())
		s.logger.Warn("%s failed: %v", res.Action, res.Error)
	case res.IsOK() && res.Action == input.ActionSave:
		res = res.WithMessage("Saved: " + s.doc.Name())
		s.setMessage(res.Message)
	case res.Message != "":
		s.setMessage(res.Message)
	case res.IsOK() && !input.IsCommand(res.Action):
		s.setMessage("")
	}

	if res.Status != input.StatusNoOp {
		s.logger.Debug("key %s: %s", ev, res)
	}
	return res
}

// Frame returns a snapshot of the session for the renderer.
func (s *Session) Frame() renderer.Frame {
	lines, cur, _ := s.doc.Engine.Snapshot()
	return renderer.Frame{
		Lines:    lines,
		Cursor:   cur,
		Name:     s.doc.Name(),
		Modified: s.doc.IsModified(),
		Message:  s.Message(),
	}
}

// ApplyConfig applies a reloaded configuration. On error the previous
// settings stay in effect.
func (s *Session) ApplyConfig(cfg *config.Config) error {
	if err := s.applyConfig(cfg, false); err != nil {
		s.logger.Error("config rejected: %v", err)
		return NewOperationError("configure", "", err)
	}
	s.setMessage("Configuration reloaded")
	s.logger.Info("configuration reloaded")
	return nil
}

func (s *Session) applyConfig(cfg *config.Config, initial bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	table, err := shift.Default().WithOverrides(cfg.Shift)
	if err != nil {
		return err
	}
	if err := s.router.SetKeymap(keymapFromConfig(cfg.Keymap)); err != nil {
		return err
	}
	s.router.SetShiftTable(table)

	eng := s.doc.Engine
	eng.SetTabWidth(cfg.Editor.TabWidth)
	eng.SetPasteJoinLastLine(cfg.Editor.PasteJoinLastLine)

	s.mu.Lock()
	prev := s.cfg
	s.cfg = cfg.Clone()
	s.mu.Unlock()

	if le, ok := s.forcedLineEnding(); ok {
		eng.SetLineEnding(le)
	}
	if !initial && (prev == nil || prev.Display != cfg.Display) {
		s.display.Configure(cfg.Display.FontSize, cfg.Display.MinFontSize, cfg.Display.Inverted)
	}
	s.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	return nil
}

// forcedLineEnding returns the configured line ending unless it is
// "auto".
func (s *Session) forcedLineEnding() (engine.LineEnding, bool) {
	return buffer.ParseLineEnding(s.Config().Editor.LineEnding)
}

func keymapFromConfig(k config.KeymapConfig) input.Keymap {
	return input.DefaultKeymap().Merge(input.Keymap{
		input.ActionSave:         k.Save,
		input.ActionPaste:        k.Paste,
		input.ActionInvertColors: k.InvertColors,
		input.ActionFontIncrease: k.FontIncrease,
		input.ActionFontDecrease: k.FontDecrease,
	})
}
