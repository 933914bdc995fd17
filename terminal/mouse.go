package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/lifeview/game"
)

var trackedButtons = []struct {
	mask   tcell.ButtonMask
	button game.Button
}{
	{tcell.ButtonPrimary, game.ButtonPrimary},
	{tcell.ButtonSecondary, game.ButtonSecondary},
	{tcell.ButtonMiddle, game.ButtonMiddle},
}

// mouseTracker turns tcell's "buttons currently down" reports into press,
// release and drag events by remembering which buttons were down before
type mouseTracker struct {
	held tcell.ButtonMask
}

func (m *mouseTracker) translate(mask tcell.ButtonMask, x, y int) game.Event {
	for _, b := range trackedButtons {
		was, is := m.held&b.mask != 0, mask&b.mask != 0
		switch {
		case is && !was:
			m.held |= b.mask
			return game.MouseEvent(game.EventMouseDown, b.button, x, y)
		case was && !is:
			m.held &^= b.mask
			return game.MouseEvent(game.EventMouseUp, b.button, x, y)
		}
	}

	for _, b := range trackedButtons {
		if m.held&b.mask != 0 {
			return game.MouseEvent(game.EventMouseDrag, b.button, x, y)
		}
	}
	return game.MouseEvent(game.EventNone, game.ButtonNone, x, y)
}
