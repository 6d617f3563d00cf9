package phase

import "time"

// ManualClock is a deterministic Clock whose time only moves when Advance is
// called. It is meant for tests.
type ManualClock struct {
	sources   []*manualSource
	now       time.Duration
	maxActive int
}

type manualSource struct {
	clock    *ManualClock
	fire     func()
	interval time.Duration
	next     time.Duration
	stopped  bool
}

func (s *manualSource) Stop() {
	s.stopped = true
}

// Every registers a new source that first fires one interval from now.
func (m *ManualClock) Every(interval time.Duration, fire func()) TickSource {
	if interval <= 0 {
		interval = time.Second
	}

	src := &manualSource{
		clock:    m,
		fire:     fire,
		interval: interval,
		next:     m.now + interval,
	}

	m.sources = append(m.sources, src)

	if active := m.Active(); active > m.maxActive {
		m.maxActive = active
	}

	return src
}

// Now returns the virtual time elapsed since the clock was created.
func (m *ManualClock) Now() time.Duration {
	return m.now
}

// Advance moves virtual time forward by d, firing every due source in order.
func (m *ManualClock) Advance(d time.Duration) {
	target := m.now + d

	for {
		src := m.due(target)
		if src == nil {
			break
		}

		m.now = src.next
		src.next += src.interval
		src.fire()
	}

	m.now = target
	m.prune()
}

// Tick advances the clock by n seconds.
func (m *ManualClock) Tick(n int) {
	for range n {
		m.Advance(time.Second)
	}
}

// Active returns the number of sources that have not been stopped.
func (m *ManualClock) Active() int {
	var n int

	for _, s := range m.sources {
		if !s.stopped {
			n++
		}
	}

	return n
}

// MaxActive returns the highest number of concurrently active sources seen.
func (m *ManualClock) MaxActive() int {
	return m.maxActive
}

func (m *ManualClock) due(target time.Duration) *manualSource {
	var earliest *manualSource

	for _, s := range m.sources {
		if s.stopped || s.next > target {
			continue
		}

		if earliest == nil || s.next < earliest.next {
			earliest = s
		}
	}

	return earliest
}

func (m *ManualClock) prune() {
	live := m.sources[:0]

	for _, s := range m.sources {
		if !s.stopped {
			live = append(live, s)
		}
	}

	m.sources = live
}
