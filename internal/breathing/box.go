package breathing

import (
	"time"

	"github.com/ayoisaiah/mindful/internal/phase"
)

const textStopped = "Stopped"

// BoxView is the presentation state of the box feature.
type BoxView struct {
	Line      *Segment
	Text      string
	Side      string
	Marker    Point
	Progress  float64
	Index     int
	Remaining int
	Cycle     int
	Running   bool
	Stopped   bool
}

// Box is the box breathing feature. The marker travels the square once per
// cycle; when paused it stays where it was last drawn.
type Box struct {
	sched     *phase.Scheduler
	now       func() time.Time
	line      *Segment
	interval  time.Duration
	goal      goal
	text      string
	side      string
	marker    Marker
	pausedPos Point
	stopped   bool
}

// NewBox returns a stopped box breathing feature.
func NewBox(clock phase.Clock, opts ...Option) *Box {
	s := newSettings(opts)

	b := &Box{
		now:       s.now,
		interval:  s.interval,
		text:      textReady,
		marker:    stationary(Origin),
		pausedPos: Origin,
		goal: goal{
			notifier: s.notifier,
			target:   s.goal,
			feature:  "box",
		},
	}

	b.sched = phase.New(
		clock,
		append(
			s.schedulerOpts(b.onTransition, b.onPause),
			phase.WithSequence(BoxSequence()),
		)...,
	)

	return b
}

// Start resets the marker to the origin corner and begins the first side.
func (b *Box) Start() {
	b.stopped = false
	b.marker = stationary(Origin)
	b.pausedPos = Origin
	b.line = nil

	b.sched.Start()
}

// Pause stops breathing and freezes the marker at its last drawn position.
func (b *Box) Pause() {
	b.sched.Pause()
}

// Running reports whether the box is breathing.
func (b *Box) Running() bool {
	return b.sched.Running()
}

// PausedPos returns the position the marker was frozen at.
func (b *Box) PausedPos() Point {
	return b.pausedPos
}

// View returns the presentation state at now.
func (b *Box) View(now time.Time) BoxView {
	v := BoxView{
		Text:      b.text,
		Side:      b.side,
		Marker:    b.marker.At(now),
		Index:     b.sched.Index(),
		Remaining: b.sched.Remaining(),
		Cycle:     b.sched.Cycle(),
		Running:   b.sched.Running(),
		Stopped:   b.stopped,
	}

	if b.sched.Running() {
		v.Progress = b.marker.Progress(now)
	}

	if b.line != nil {
		line := *b.line
		v.Line = &line
	}

	return v
}

func (b *Box) onTransition(t phase.Transition) {
	now := b.now()

	// each side starts on the corner the previous one was heading to, even
	// when the tick lands a little early
	from := b.marker.To

	to, ok := Corner(t.Phase.Side)
	if !ok {
		to = from
	}

	b.marker = Marker{
		From:     from,
		To:       to,
		Started:  now,
		Duration: time.Duration(t.Seconds()) * b.interval,
	}

	if line, ok := Line(t.Phase.Side); ok {
		b.line = &line
	}

	b.side = t.Phase.Side
	b.text = t.Label() + "..."
	b.goal.observe(t)
}

func (b *Box) onPause() {
	b.pausedPos = b.marker.At(b.now())
	b.marker = stationary(b.pausedPos)
	b.line = nil
	b.text = textStopped
	b.stopped = true
}
