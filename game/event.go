package game

import "github.com/sheikhrachel/lifeview/model"

// EventKind classifies input events
type EventKind int

const (
	// EventNone is an input the viewer does not react to (resize, bare motion, ...)
	EventNone EventKind = iota
	EventKey
	EventMouseDown
	EventMouseUp
	EventMouseDrag
	// EventInterrupt asks the loop to stop, e.g. after SIGTERM
	EventInterrupt
)

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Keys recognized by the viewer
const (
	KeyStep      = 's'
	KeyPlay      = ' '
	KeyHistogram = 'h'
	KeyQuit      = 'q'
)

// Event is a single input event in screen coordinates
type Event struct {
	Kind   EventKind
	Key    rune
	Button Button
	Pos    model.Point
}

// KeyEvent builds a key press event
func KeyEvent(key rune) Event {
	return Event{Kind: EventKey, Key: key}
}

// MouseEvent builds a pointer event at (x, y)
func MouseEvent(kind EventKind, button Button, x, y int) Event {
	return Event{Kind: kind, Button: button, Pos: model.Point{X: x, Y: y}}
}

// EventSource supplies input events to the loop.
type EventSource interface {
	// PollEvent blocks until an event arrives.
	PollEvent() (Event, error)
	// TryEvent returns the next event if one is already waiting and reports whether it did.
	TryEvent() (Event, bool, error)
}
