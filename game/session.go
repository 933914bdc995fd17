package game

import "github.com/sheikhrachel/lifeview/model"

// Session is everything the frame loop owns between frames
type Session struct {
	Gen    model.Generation
	Offset model.Point

	// Anchor is the last pointer position while the primary button is held
	Anchor *model.Point

	Playing       bool
	ShowHistogram bool
	Quit          bool

	// Advance is set when the next frame should step the simulation first
	Advance bool
}

// NewSession returns a paused session holding gen, with the viewport at the origin
func NewSession(gen model.Generation) Session {
	return Session{Gen: gen}
}

// Update applies the input read after a frame was drawn and returns the
// session for the next frame. ok is false when no event was read.
//
// While playing, every frame advances unless the event pauses play.
func Update(s Session, ev Event, ok bool) Session {
	s.Advance = s.Playing
	if !ok {
		return s
	}

	switch ev.Kind {
	case EventKey:
		switch ev.Key {
		case KeyStep:
			s.Advance = true
		case KeyPlay:
			s.Playing = !s.Playing
			s.Advance = s.Playing
		case KeyHistogram:
			s.ShowHistogram = !s.ShowHistogram
		case KeyQuit:
			s.Quit = true
		}
	case EventInterrupt:
		s.Quit = true
	case EventMouseDown:
		if ev.Button == ButtonPrimary {
			pos := ev.Pos
			s.Anchor = &pos
		}
	case EventMouseUp:
		if ev.Button == ButtonPrimary {
			s.Anchor = nil
		}
	case EventMouseDrag:
		// a drag whose press was never seen has nothing to pan from
		if ev.Button == ButtonPrimary && s.Anchor != nil {
			s.Offset = s.Offset.Add(ev.Pos.Sub(*s.Anchor))
			pos := ev.Pos
			s.Anchor = &pos
		}
	}

	return s
}
