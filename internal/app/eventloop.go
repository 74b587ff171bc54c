package app

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/dshills/fluffy/internal/input"
	"github.com/dshills/fluffy/internal/input/key"
	"github.com/dshills/fluffy/internal/renderer"
	"github.com/dshills/fluffy/internal/renderer/backend"
)

// QuitKey ends the event loop. It is handled before routing and cannot
// be rebound.
const QuitKey = "Ctrl+Q"

// Run draws the session and processes events from b, one at a time,
// redrawing after each. It returns ErrQuit when QuitKey is pressed,
// ctx.Err() when ctx is cancelled, and nil when the backend shuts down.
func (s *Session) Run(ctx context.Context, b backend.Backend, r *renderer.Renderer) error {
	stop := context.AfterFunc(ctx, b.Interrupt)
	defer stop()

	s.draw(r)
	for {
		ev := b.PollEvent()
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ev.Type {
		case backend.EventClosed:
			return nil
		case backend.EventNone:
			continue
		case backend.EventKey:
			if ev.Key.Matches(QuitKey) {
				s.logger.Info("quit")
				return ErrQuit
			}
			s.handleKeySafe(ev.Key)
		case backend.EventResize, backend.EventInterrupt:
			// redraw only
		}
		s.draw(r)
	}
}

func (s *Session) draw(r *renderer.Renderer) {
	r.SetTabWidth(s.Config().Editor.TabWidth)
	r.Render(s.Frame())
}

// handleKeySafe routes ev and turns a panic into an error result so one
// bad event does not take down the editor.
func (s *Session) handleKeySafe(ev key.Event) (res input.Result) {
	defer func() {
		if v := recover(); v != nil {
			err := NewRecoveredPanicError(v, string(debug.Stack()))
			s.logger.Error("%v", err)
			s.setMessage(fmt.Sprintf("Error: internal error handling %s", ev))
			res = input.Error("", err)
		}
	}()
	return s.HandleKey(ev)
}
