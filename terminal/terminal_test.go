package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/lifeview/game"
	"github.com/sheikhrachel/lifeview/model"
	"github.com/sheikhrachel/lifeview/view"
)

func newSimTerminal(ctx context.Context, t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := New(ctx, sim)
	require.NoError(t, err)
	sim.SetSize(12, 4)
	t.Cleanup(term.Close)

	// drop resize notifications from setup
	for sim.HasPendingEvent() {
		sim.PollEvent()
	}
	return term, sim
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var b strings.Builder
	for x := range width {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(runes[0])
	}
	return b.String()
}

func TestDrawPaintsFrame(t *testing.T) {
	term, sim := newSimTerminal(context.Background(), t)

	width, height := term.Size()
	require.Equal(t, 12, width)
	require.Equal(t, 4, height)

	gen := model.FromCells(0, 0, 0,
		model.Cell{Point: model.Point{X: 2, Y: 2}, Age: 3},
		model.Cell{Point: model.Point{X: 5, Y: 3}, Age: 12},
	)
	require.NoError(t, term.Draw(view.Render(gen, model.Point{}, width, height, view.Options{})))

	assert.Equal(t, "gen:0 cells:", screenRow(sim, 0))
	assert.Equal(t, "  3         ", screenRow(sim, 2))
	assert.Equal(t, "     +      ", screenRow(sim, 3))

	// the next frame fully replaces the previous one
	require.NoError(t, term.Draw(view.NewFrame(width, height)))
	assert.Equal(t, strings.Repeat(" ", 12), screenRow(sim, 2))
}

func TestPollEventTranslatesKeys(t *testing.T) {
	term, sim := newSimTerminal(context.Background(), t)

	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	ev, err := term.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, game.KeyEvent('h'), ev)

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	ev, err = term.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, game.EventNone, ev.Kind)
}

func TestCancelWakesBlockedPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	term, _ := newSimTerminal(ctx, t)

	cancel()

	var ev game.Event
	for range 10 {
		var err error
		ev, err = term.PollEvent()
		require.NoError(t, err)
		if ev.Kind != game.EventNone {
			break
		}
	}
	assert.Equal(t, game.EventInterrupt, ev.Kind)
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Event
	}{
		{name: "step", ev: tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), want: game.KeyEvent(game.KeyStep)},
		{name: "space", ev: tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), want: game.KeyEvent(game.KeyPlay)},
		{name: "quit", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: game.KeyEvent(game.KeyQuit)},
		{name: "other rune passes through", ev: tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), want: game.KeyEvent('z')},
		{name: "special key", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), want: game.Event{Kind: game.EventNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateKey(tt.ev))
		})
	}
}

func TestMouseTrackerSequence(t *testing.T) {
	m := &mouseTracker{}

	assert.Equal(t, game.EventNone, m.translate(tcell.ButtonNone, 1, 1).Kind)
	assert.Equal(t, game.MouseEvent(game.EventMouseDown, game.ButtonPrimary, 2, 3), m.translate(tcell.Button1, 2, 3))
	assert.Equal(t, game.MouseEvent(game.EventMouseDrag, game.ButtonPrimary, 4, 3), m.translate(tcell.Button1, 4, 3))
	assert.Equal(t, game.MouseEvent(game.EventMouseDrag, game.ButtonPrimary, 5, 5), m.translate(tcell.Button1, 5, 5))
	assert.Equal(t, game.MouseEvent(game.EventMouseUp, game.ButtonPrimary, 5, 5), m.translate(tcell.ButtonNone, 5, 5))
	assert.Equal(t, game.EventNone, m.translate(tcell.ButtonNone, 6, 6).Kind)
}

func TestMouseTrackerOtherButtons(t *testing.T) {
	m := &mouseTracker{}

	assert.Equal(t, game.MouseEvent(game.EventMouseDown, game.ButtonSecondary, 0, 0), m.translate(tcell.Button2, 0, 0))
	assert.Equal(t, game.MouseEvent(game.EventMouseUp, game.ButtonSecondary, 0, 0), m.translate(tcell.ButtonNone, 0, 0))
	assert.Equal(t, game.MouseEvent(game.EventMouseDown, game.ButtonMiddle, 1, 0), m.translate(tcell.Button3, 1, 0))
	// wheel bits are not buttons
	assert.Equal(t, game.MouseEvent(game.EventMouseDrag, game.ButtonMiddle, 1, 1), m.translate(tcell.Button3|tcell.WheelUp, 1, 1))
}
