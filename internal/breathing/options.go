package breathing

import (
	"time"

	"github.com/ayoisaiah/mindful/internal/phase"
)

type settings struct {
	now      func() time.Time
	notifier Notifier
	goal     int
	interval time.Duration
}

// Option configures a Bubble or Box.
type Option func(*settings)

// WithGoal notifies n every time target full cycles are completed.
func WithGoal(target int, n Notifier) Option {
	return func(s *settings) {
		s.goal = target
		s.notifier = n
	}
}

// WithNow overrides the wall clock used to animate visuals.
func WithNow(now func() time.Time) Option {
	return func(s *settings) {
		s.now = now
	}
}

// WithTickInterval overrides the one second tick of the underlying scheduler.
func WithTickInterval(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.interval = d
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		now:      time.Now,
		interval: time.Second,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}

func (s settings) schedulerOpts(onTransition func(phase.Transition), onPause func()) []phase.Option {
	return []phase.Option{
		phase.WithInterval(s.interval),
		phase.WithOnTransition(onTransition),
		phase.WithOnPause(onPause),
	}
}
