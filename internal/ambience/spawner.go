package ambience

import (
	"math/rand/v2"
	"time"

	"github.com/ayoisaiah/mindful/internal/catalog"
	"github.com/ayoisaiah/mindful/internal/phase"
)

// Particle is a single floating emoji.
type Particle struct {
	Born     time.Time
	Emoji    string
	Lifetime time.Duration
	// X is the horizontal position as a percentage of the width
	X float64
	// Rotation is in degrees and only set for rotating particles
	Rotation float64
	Size     int
	Rise     bool
	Scale    bool
}

// Progress returns how far through its lifetime the particle is, in [0, 1].
func (p Particle) Progress(now time.Time) float64 {
	if p.Lifetime <= 0 {
		return 1
	}

	progress := float64(now.Sub(p.Born)) / float64(p.Lifetime)

	return min(max(progress, 0), 1)
}

// Y returns the vertical position as a fraction of the height, 0 being the
// top. Rising particles start at the bottom, falling ones just above the top.
func (p Particle) Y(now time.Time) float64 {
	progress := p.Progress(now)

	if p.Rise {
		return 1 - progress
	}

	return progress
}

// Alive reports whether the particle is still on screen at now.
func (p Particle) Alive(now time.Time) bool {
	return now.Sub(p.Born) < p.Lifetime
}

// Spawner creates particles on a repeating timer.
type Spawner struct {
	clock     phase.Clock
	source    phase.TickSource
	now       func() time.Time
	rng       *rand.Rand
	particles []Particle
	spec      catalog.Particle
}

// SpawnerOption configures a Spawner.
type SpawnerOption func(*Spawner)

// WithRand sets the random source used to place particles.
func WithRand(rng *rand.Rand) SpawnerOption {
	return func(s *Spawner) {
		s.rng = rng
	}
}

// WithClockNow sets the wall clock used to age particles.
func WithClockNow(now func() time.Time) SpawnerOption {
	return func(s *Spawner) {
		s.now = now
	}
}

// NewSpawner returns an idle spawner.
func NewSpawner(clock phase.Clock, opts ...SpawnerOption) *Spawner {
	s := &Spawner{
		clock: clock,
		now:   time.Now,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start clears the screen and begins spawning particles described by spec.
func (s *Spawner) Start(spec catalog.Particle) {
	s.Stop()

	s.spec = spec
	s.source = s.clock.Every(spec.Interval(), s.spawn)
}

// Stop halts spawning and clears every particle.
func (s *Spawner) Stop() {
	if s.source != nil {
		s.source.Stop()
		s.source = nil
	}

	s.particles = nil
}

// Active reports whether the spawner is running.
func (s *Spawner) Active() bool {
	return s.source != nil
}

// Particles returns the particles alive at now.
func (s *Spawner) Particles(now time.Time) []Particle {
	s.prune(now)

	return append([]Particle(nil), s.particles...)
}

func (s *Spawner) spawn() {
	now := s.now()

	s.prune(now)

	p := Particle{
		Born:     now,
		Emoji:    s.spec.Emoji,
		Lifetime: s.spec.Lifetime(),
		X:        s.rng.Float64() * 100,
		Size:     s.spec.MinSize,
		Rise:     s.spec.Rise,
		Scale:    s.spec.Scale,
	}

	if spread := s.spec.MaxSize - s.spec.MinSize; spread > 0 {
		p.Size += s.rng.IntN(spread + 1)
	}

	if s.spec.Rotate {
		p.Rotation = s.rng.Float64() * 360
	}

	s.particles = append(s.particles, p)
}

func (s *Spawner) prune(now time.Time) {
	live := s.particles[:0]

	for _, p := range s.particles {
		if p.Alive(now) {
			live = append(live, p)
		}
	}

	s.particles = live
}
