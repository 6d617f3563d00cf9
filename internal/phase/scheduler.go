package phase

import (
	"log/slog"
	"time"
)

const defaultInterval = time.Second

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithOnTransition sets the callback fired whenever a phase is entered.
func WithOnTransition(fn func(Transition)) Option {
	return func(s *Scheduler) {
		s.onTransition = fn
	}
}

// WithOnPause sets the callback fired on every call to Pause.
func WithOnPause(fn func()) Option {
	return func(s *Scheduler) {
		s.onPause = fn
	}
}

// WithInterval overrides the tick interval. It defaults to one second.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithSequence sets the initial sequence.
func WithSequence(seq Sequence) Option {
	return func(s *Scheduler) {
		s.seq = seq
	}
}

// Scheduler steps through a cyclic Sequence one tick at a time. It is not safe
// for concurrent use: all methods and all tick firings must happen on the same
// goroutine, which is what the clocks in this package guarantee.
type Scheduler struct {
	clock        Clock
	source       TickSource
	onTransition func(Transition)
	onPause      func()
	seq          Sequence
	interval     time.Duration
	index        int
	remaining    int
	cycle        int
	running      bool
}

// New returns a stopped scheduler that creates its tick sources from clock.
func New(clock Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:    clock,
		interval: defaultInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Configure replaces the active sequence. A running scheduler restarts from
// the first phase of the new sequence straight away.
func (s *Scheduler) Configure(seq Sequence) {
	s.seq = seq

	if s.running {
		s.Start()
	}
}

// Start restarts the scheduler at phase 0. It never resumes from a paused
// position. An empty sequence is a programming error and panics.
func (s *Scheduler) Start() {
	if len(s.seq) == 0 {
		panic("phase: Start called with an empty sequence")
	}

	s.stopSource()

	s.running = true
	s.index = 0
	s.remaining = s.seq[0].Seconds
	s.cycle = 0

	slog.Debug("phase scheduler started",
		slog.Int("phases", len(s.seq)),
		slog.Int("cycle_ticks", s.seq.Total()),
	)

	s.notify()

	// the callback may have paused or restarted the scheduler
	if !s.running || s.source != nil {
		return
	}

	s.source = s.clock.Every(s.interval, s.tick)
}

// Pause stops the tick source and freezes the current position. It is safe to
// call repeatedly; the pause callback fires each time.
func (s *Scheduler) Pause() {
	s.running = false
	s.stopSource()

	if s.onPause != nil {
		s.onPause()
	}
}

func (s *Scheduler) tick() {
	if !s.running || len(s.seq) == 0 {
		return
	}

	s.remaining--
	if s.remaining > 0 {
		return
	}

	s.index = (s.index + 1) % len(s.seq)
	if s.index == 0 {
		s.cycle++
	}

	s.remaining = s.seq[s.index].Seconds

	s.notify()
}

func (s *Scheduler) notify() {
	if s.onTransition == nil {
		return
	}

	s.onTransition(Transition{
		Phase: s.seq[s.index],
		Index: s.index,
		Cycle: s.cycle,
	})
}

func (s *Scheduler) stopSource() {
	if s.source == nil {
		return
	}

	s.source.Stop()
	s.source = nil
}

// Running reports whether a tick source is active.
func (s *Scheduler) Running() bool {
	return s.running
}

// Index returns the position of the current phase.
func (s *Scheduler) Index() int {
	return s.index
}

// Remaining returns the ticks left in the current phase.
func (s *Scheduler) Remaining() int {
	return s.remaining
}

// Cycle returns the number of cycles completed since the last Start.
func (s *Scheduler) Cycle() int {
	return s.cycle
}

// Sequence returns the active sequence.
func (s *Scheduler) Sequence() Sequence {
	return s.seq
}

// Current returns the current phase. It reports false when no sequence is
// configured, or when a shorter sequence was configured while paused.
func (s *Scheduler) Current() (Phase, bool) {
	if s.index >= len(s.seq) {
		return Phase{}, false
	}

	return s.seq[s.index], true
}

// Elapsed returns how far into the current phase the scheduler is, in ticks.
func (s *Scheduler) Elapsed() int {
	p, ok := s.Current()
	if !ok {
		return 0
	}

	return p.Seconds - s.remaining
}
