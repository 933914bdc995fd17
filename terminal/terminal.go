package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeview/game"
	"github.com/sheikhrachel/lifeview/view"
)

// ErrClosed is returned once the screen stops delivering events
var ErrClosed = errors.New("terminal event stream closed")

// Terminal owns a tcell screen in alternate-screen, raw, mouse-capturing mode
// and serves as both the event source and the drawing surface of a game
type Terminal struct {
	screen tcell.Screen
	mouse  *mouseTracker
	stop   func() bool
}

// Open takes over the controlling terminal. Close must be called to restore it.
func Open(ctx context.Context) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[Open] failed to create screen")
	}
	return New(ctx, screen)
}

// New initializes screen and wraps it. Cancelling ctx wakes a blocked
// PollEvent with an interrupt event.
func New(ctx context.Context, screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[New] failed to initialize screen")
	}
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{screen: screen, mouse: &mouseTracker{}}
	t.stop = context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	return t, nil
}

// Close leaves the alternate screen and restores mouse, cursor and line modes
func (t *Terminal) Close() {
	t.stop()
	t.screen.DisableMouse()
	t.screen.ShowCursor(0, 0)
	t.screen.Fini()
}

// Size returns the visible region in character cells
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Draw clears the screen and paints every non-blank rune of frame
func (t *Terminal) Draw(frame *view.Frame) error {
	t.screen.Clear()
	width, height := frame.Size()
	for y := range height {
		for x := range width {
			if r := frame.At(x, y); !view.Blank(r) {
				t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			}
		}
	}
	t.screen.Show()
	return nil
}

// PollEvent blocks until the next event
func (t *Terminal) PollEvent() (game.Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return game.Event{}, ErrClosed
	}
	return t.translate(ev), nil
}

// TryEvent returns an event only if one is already queued
func (t *Terminal) TryEvent() (game.Event, bool, error) {
	if !t.screen.HasPendingEvent() {
		return game.Event{}, false, nil
	}
	ev, err := t.PollEvent()
	return ev, err == nil, err
}

func (t *Terminal) translate(ev tcell.Event) game.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		return t.mouse.translate(ev.Buttons(), x, y)
	case *tcell.EventInterrupt:
		return game.Event{Kind: game.EventInterrupt}
	}
	return game.Event{Kind: game.EventNone}
}

func translateKey(ev *tcell.EventKey) game.Event {
	if ev.Key() != tcell.KeyRune {
		return game.Event{Kind: game.EventNone}
	}
	return game.KeyEvent(ev.Rune())
}
