// Package breathing implements the two guided breathing features: animal
// bubble breathing and box breathing. Each feature owns its own phase
// scheduler and turns transitions into presentation state.
package breathing

import (
	"github.com/ayoisaiah/mindful/internal/catalog"
	"github.com/ayoisaiah/mindful/internal/phase"
)

// Bubble scales.
const (
	ScaleFull    = 1.35
	ScaleResting = 1.0
)

const (
	textReady  = "Ready"
	textPaused = "Paused"
)

// ScaleFor returns the bubble scale for a phase label. The bubble stays full
// while breathing in or holding.
func ScaleFor(label string) float64 {
	if label == phase.Inhale || label == phase.Hold {
		return ScaleFull
	}

	return ScaleResting
}

// BubbleView is the presentation state of the bubble feature.
type BubbleView struct {
	Animal    catalog.Profile
	Text      string
	Scale     float64
	Index     int
	Remaining int
	Seconds   int
	Cycle     int
	Running   bool
	Paused    bool
}

// Progress returns the fraction of the current phase that has elapsed.
func (v BubbleView) Progress() float64 {
	if v.Seconds <= 0 || !v.Running {
		return 0
	}

	return float64(v.Seconds-v.Remaining) / float64(v.Seconds)
}

// Bubble is the animal bubble breathing feature.
type Bubble struct {
	sched   *phase.Scheduler
	goal    goal
	animal  catalog.Profile
	text    string
	scale   float64
	seconds int
	paused  bool
}

// NewBubble returns a stopped bubble breathing feature for animal.
func NewBubble(clock phase.Clock, animal catalog.Profile, opts ...Option) *Bubble {
	s := newSettings(opts)

	b := &Bubble{
		animal: animal,
		text:   textReady,
		scale:  ScaleResting,
		goal: goal{
			notifier: s.notifier,
			target:   s.goal,
			feature:  animal.Name,
		},
	}

	b.sched = phase.New(
		clock,
		append(
			s.schedulerOpts(b.onTransition, b.onPause),
			phase.WithSequence(animal.Sequence()),
		)...,
	)

	return b
}

// Select switches the animal. A running session restarts with the new
// breathing pattern.
func (b *Bubble) Select(animal catalog.Profile) {
	b.animal = animal
	b.goal.feature = animal.Name
	b.sched.Configure(animal.Sequence())
}

// Start (re)starts breathing from the first phase.
func (b *Bubble) Start() {
	b.paused = false
	b.sched.Start()
}

// Pause stops breathing. The phase position is not kept for display.
func (b *Bubble) Pause() {
	b.sched.Pause()
}

// Animal returns the selected profile.
func (b *Bubble) Animal() catalog.Profile {
	return b.animal
}

// Running reports whether the bubble is breathing.
func (b *Bubble) Running() bool {
	return b.sched.Running()
}

// View returns the current presentation state.
func (b *Bubble) View() BubbleView {
	return BubbleView{
		Animal:    b.animal,
		Text:      b.text,
		Scale:     b.scale,
		Index:     b.sched.Index(),
		Remaining: b.sched.Remaining(),
		Seconds:   b.seconds,
		Cycle:     b.sched.Cycle(),
		Running:   b.sched.Running(),
		Paused:    b.paused,
	}
}

func (b *Bubble) onTransition(t phase.Transition) {
	b.text = t.Label() + "..."
	b.scale = ScaleFor(t.Label())
	b.seconds = t.Seconds()
	b.goal.observe(t)
}

func (b *Bubble) onPause() {
	b.text = textPaused
	b.scale = ScaleResting
	b.paused = true
}
