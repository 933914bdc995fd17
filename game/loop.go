package game

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifeview/model"
	"github.com/sheikhrachel/lifeview/view"
)

// DefaultMaxAge is the histogram cap used when none is configured
const DefaultMaxAge = 10

// Screen is the drawing side of the terminal
type Screen interface {
	// Size returns the visible region in character cells
	Size() (width, height int)
	// Draw replaces everything on screen with frame
	Draw(frame *view.Frame) error
}

// Options tunes a Game; zero values select the defaults
type Options struct {
	// MaxAge caps the histogram buckets
	MaxAge int
	// FrameRate is slept after a running frame when no input was waiting
	FrameRate time.Duration
	Logger    *slog.Logger
}

// Game drives the per-frame cycle: advance, histogram, render, read input, update
type Game struct {
	source    EventSource
	screen    Screen
	maxAge    int
	frameRate time.Duration
	sleep     func(time.Duration)
	logger    *slog.Logger
}

// New creates a Game reading from source and drawing to screen
func New(source EventSource, screen Screen, opts Options) *Game {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		source:    source,
		screen:    screen,
		maxAge:    opts.MaxAge,
		frameRate: opts.FrameRate,
		sleep:     time.Sleep,
		logger:    opts.Logger,
	}
}

// Frame advances the session's generation if the session asks for it, then
// draws it. The returned session holds the generation on screen.
func (g *Game) Frame(s Session) (Session, error) {
	if s.Advance {
		s.Gen = model.Advance(s.Gen)
	}

	histo := model.BuildHistogram(s.Gen, g.maxAge)
	width, height := g.screen.Size()
	frame := view.Render(s.Gen, s.Offset, width, height, view.Options{
		ShowHistogram: s.ShowHistogram,
		Histogram:     histo,
	})

	if err := g.screen.Draw(frame); err != nil {
		return s, errors.Wrapf(err, "[Frame] failed to draw generation %d", s.Gen.Tick)
	}
	return s, nil
}

// Run loops until the session quits and returns the final session.
//
// When paused it blocks for input; when playing it only takes an event that
// is already waiting, so the simulation keeps ticking. At most one event is
// applied per frame. Input errors end the loop.
func (g *Game) Run(s Session) (Session, error) {
	for !s.Quit {
		var err error
		if s, err = g.Frame(s); err != nil {
			return s, err
		}

		ev, ok, err := g.read(s.Playing)
		if err != nil {
			return s, errors.Wrapf(err, "[Run] failed to read input at generation %d", s.Gen.Tick)
		}
		if s.Playing && !ok && g.frameRate > 0 {
			g.sleep(g.frameRate)
		}

		next := Update(s, ev, ok)
		g.logChanges(s, next)
		s = next
	}
	return s, nil
}

func (g *Game) read(playing bool) (Event, bool, error) {
	if playing {
		return g.source.TryEvent()
	}
	ev, err := g.source.PollEvent()
	return ev, err == nil, err
}

func (g *Game) logChanges(prev, next Session) {
	if prev.Playing != next.Playing {
		g.logger.Debug("play toggled", "playing", next.Playing, "tick", next.Gen.Tick)
	}
	if prev.ShowHistogram != next.ShowHistogram {
		g.logger.Debug("histogram toggled", "visible", next.ShowHistogram)
	}
	if prev.Offset != next.Offset {
		g.logger.Debug("viewport moved", "x", next.Offset.X, "y", next.Offset.Y)
	}
	if next.Quit {
		g.logger.Info("quitting",
			"tick", next.Gen.Tick,
			"cells", next.Gen.Len(),
			"births", next.Gen.Births,
			"deaths", next.Gen.Deaths,
		)
	}
}
