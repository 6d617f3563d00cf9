package phase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/mindful/internal/phase"
)

type recorder struct {
	transitions []phase.Transition
	pauses      int
}

func (r *recorder) opts() []phase.Option {
	return []phase.Option{
		phase.WithOnTransition(func(t phase.Transition) {
			r.transitions = append(r.transitions, t)
		}),
		phase.WithOnPause(func() {
			r.pauses++
		}),
	}
}

func (r *recorder) labels() []string {
	labels := make([]string, len(r.transitions))
	for i, t := range r.transitions {
		labels[i] = t.Label()
	}

	return labels
}

func newScheduler(
	t *testing.T,
	seq phase.Sequence,
) (*phase.Scheduler, *phase.ManualClock, *recorder) {
	t.Helper()

	clock := &phase.ManualClock{}
	rec := &recorder{}

	s := phase.New(clock, append(rec.opts(), phase.WithSequence(seq))...)

	return s, clock, rec
}

var cyclicTestCases = []struct {
	Name string
	Seq  phase.Sequence
}{
	{
		Name: "single phase",
		Seq:  phase.Sequence{{Label: phase.Inhale, Seconds: 3}},
	},
	{
		Name: "inhale and exhale",
		Seq: phase.Sequence{
			{Label: phase.Inhale, Seconds: 3},
			{Label: phase.Exhale, Seconds: 3},
		},
	},
	{
		Name: "uneven phases",
		Seq: phase.Sequence{
			{Label: phase.Inhale, Seconds: 4},
			{Label: phase.Hold, Seconds: 2},
			{Label: phase.Exhale, Seconds: 6},
		},
	},
	{
		Name: "one second phases",
		Seq: phase.Sequence{
			{Label: "a", Seconds: 1},
			{Label: "b", Seconds: 1},
			{Label: "c", Seconds: 1},
			{Label: "d", Seconds: 1},
		},
	},
}

func TestCyclicAdvance(t *testing.T) {
	for _, tc := range cyclicTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			s, clock, rec := newScheduler(t, tc.Seq)

			s.Start()
			require.Len(t, rec.transitions, 1)
			assert.Equal(t, 0, rec.transitions[0].Index)

			clock.Tick(tc.Seq.Total())

			assert.Equal(t, 0, s.Index())
			assert.Equal(t, tc.Seq[0].Seconds, s.Remaining())
			// one notification per boundary crossed, on top of the one from Start
			assert.Len(t, rec.transitions, len(tc.Seq)+1)
			assert.Equal(t, 1, s.Cycle())

			last := rec.transitions[len(rec.transitions)-1]
			assert.Equal(t, 0, last.Index)
			assert.Equal(t, 1, last.Cycle)
		})
	}
}

func TestNoSpuriousTransitions(t *testing.T) {
	seq := phase.Sequence{
		{Label: phase.Inhale, Seconds: 5},
		{Label: phase.Exhale, Seconds: 2},
	}

	s, clock, rec := newScheduler(t, seq)

	s.Start()

	for i := 1; i < seq[0].Seconds; i++ {
		clock.Tick(1)
		assert.Len(t, rec.transitions, 1, "tick %d fired a transition", i)
		assert.Equal(t, seq[0].Seconds-i, s.Remaining())
	}

	clock.Tick(1)
	require.Len(t, rec.transitions, 2)
	assert.Equal(t, phase.Exhale, rec.transitions[1].Label())
	assert.Equal(t, 2, rec.transitions[1].Seconds())
}

func TestPauseIsIdempotent(t *testing.T) {
	seq := phase.Sequence{
		{Label: phase.Inhale, Seconds: 4},
		{Label: phase.Hold, Seconds: 4},
		{Label: phase.Exhale, Seconds: 4},
	}

	s, clock, rec := newScheduler(t, seq)

	s.Start()
	clock.Tick(6)

	s.Pause()

	index, remaining := s.Index(), s.Remaining()

	s.Pause()

	assert.False(t, s.Running())
	assert.Equal(t, index, s.Index())
	assert.Equal(t, remaining, s.Remaining())
	assert.Equal(t, 0, clock.Active())
	assert.Equal(t, 2, rec.pauses)

	clock.Tick(20)

	assert.Equal(t, index, s.Index())
	assert.Equal(t, remaining, s.Remaining())
	assert.Len(t, rec.transitions, 2)
}

func TestRestartResets(t *testing.T) {
	seq := phase.Sequence{
		{Label: phase.Inhale, Seconds: 2},
		{Label: phase.Hold, Seconds: 2},
		{Label: phase.Exhale, Seconds: 2},
	}

	s, clock, rec := newScheduler(t, seq)

	s.Start()
	clock.Tick(5)
	require.Equal(t, 2, s.Index())

	s.Start()

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, phase.Inhale, rec.transitions[len(rec.transitions)-1].Label())
	assert.Equal(t, 1, clock.Active())
}

func TestStartAfterPauseRestartsFromFirstPhase(t *testing.T) {
	seq := phase.Sequence{
		{Label: phase.Inhale, Seconds: 2},
		{Label: phase.Exhale, Seconds: 2},
	}

	s, clock, _ := newScheduler(t, seq)

	s.Start()
	clock.Tick(3)
	s.Pause()
	require.Equal(t, 1, s.Index())

	s.Start()

	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 2, s.Remaining())
}

func TestSingleActiveTickSource(t *testing.T) {
	bear := phase.Sequence{
		{Label: phase.Inhale, Seconds: 4},
		{Label: phase.Hold, Seconds: 4},
		{Label: phase.Exhale, Seconds: 4},
	}

	cat := phase.Sequence{
		{Label: phase.Inhale, Seconds: 3},
		{Label: phase.Exhale, Seconds: 3},
	}

	s, clock, _ := newScheduler(t, bear)

	s.Start()
	clock.Tick(1)
	s.Configure(cat)
	s.Start()
	s.Configure(bear)
	clock.Tick(2)
	s.Start()
	s.Pause()
	s.Configure(cat)
	s.Start()

	assert.Equal(t, 1, clock.Active())
	assert.Equal(t, 1, clock.MaxActive())
}

func TestConfigure(t *testing.T) {
	bear := phase.Sequence{
		{Label: phase.Inhale, Seconds: 4},
		{Label: phase.Hold, Seconds: 4},
		{Label: phase.Exhale, Seconds: 4},
	}

	cat := phase.Sequence{
		{Label: phase.Inhale, Seconds: 3},
		{Label: phase.Exhale, Seconds: 3},
	}

	t.Run("stopped scheduler only stores the sequence", func(t *testing.T) {
		s, clock, rec := newScheduler(t, bear)

		s.Configure(cat)

		assert.Empty(t, rec.transitions)
		assert.Equal(t, 0, clock.Active())

		if diff := cmp.Diff(cat, s.Sequence()); diff != "" {
			t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("running scheduler restarts at phase zero", func(t *testing.T) {
		s, clock, rec := newScheduler(t, bear)

		s.Start()
		clock.Tick(5)
		require.Equal(t, []string{phase.Inhale, phase.Hold}, rec.labels())

		s.Configure(cat)

		assert.Equal(t, []string{phase.Inhale, phase.Hold, phase.Inhale}, rec.labels())
		assert.Equal(t, 0, s.Index())
		assert.Equal(t, 3, s.Remaining())

		clock.Tick(3)

		assert.Equal(t, phase.Exhale, rec.transitions[len(rec.transitions)-1].Label())
	})

	t.Run("shorter sequence while paused", func(t *testing.T) {
		s, clock, _ := newScheduler(t, bear)

		s.Start()
		clock.Tick(9)
		s.Pause()
		require.Equal(t, 2, s.Index())

		s.Configure(cat)

		_, ok := s.Current()
		assert.False(t, ok)

		s.Start()

		p, ok := s.Current()
		assert.True(t, ok)
		assert.Equal(t, phase.Inhale, p.Label)
	})
}

func TestStartWithEmptySequencePanics(t *testing.T) {
	s := phase.New(&phase.ManualClock{})

	assert.Panics(t, s.Start)
}

func TestPauseFromTransitionCallback(t *testing.T) {
	clock := &phase.ManualClock{}

	var s *phase.Scheduler

	s = phase.New(
		clock,
		phase.WithSequence(phase.Sequence{{Label: phase.Inhale, Seconds: 1}}),
		phase.WithOnTransition(func(phase.Transition) {
			s.Pause()
		}),
	)

	s.Start()

	assert.False(t, s.Running())
	assert.Equal(t, 0, clock.Active())
}

func TestLoopClockDeliversOnCallerGoroutine(t *testing.T) {
	clock := phase.NewLoopClock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var labels []string

	s := phase.New(
		clock,
		phase.WithInterval(5*time.Millisecond),
		phase.WithSequence(phase.Sequence{
			{Label: "a", Seconds: 1},
			{Label: "b", Seconds: 1},
		}),
		phase.WithOnTransition(func(tr phase.Transition) {
			labels = append(labels, tr.Label())
			if len(labels) == 5 {
				cancel()
			}
		}),
	)

	s.Start()

	err := clock.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	s.Pause()

	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, labels)
}

func TestLoopClockStopDropsQueuedFirings(t *testing.T) {
	clock := phase.NewLoopClock()

	var fired int

	src := clock.Every(time.Millisecond, func() {
		fired++
	})

	time.Sleep(20 * time.Millisecond)
	src.Stop()
	src.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_ = clock.Run(ctx)

	assert.Zero(t, fired)
}

func TestManualClockIntervals(t *testing.T) {
	clock := &phase.ManualClock{}

	var fast, slow int

	clock.Every(200*time.Millisecond, func() { fast++ })
	clock.Every(600*time.Millisecond, func() { slow++ })

	clock.Advance(1200 * time.Millisecond)

	assert.Equal(t, 6, fast)
	assert.Equal(t, 2, slow)
	assert.Equal(t, 1200*time.Millisecond, clock.Now())
}
