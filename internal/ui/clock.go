package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/mindful/internal/phase"
)

var lastClockID int64

func nextClockID() int {
	return int(atomic.AddInt64(&lastClockID, 1))
}

// TickMsg is delivered to the program each time a clock tick source fires.
type TickMsg struct {
	ID    int
	token int
}

// Clock is a phase.Clock driven by the bubbletea event loop. Tick sources
// are armed with tea.Tick and fired from Update, so every callback runs on
// the program goroutine. Commands produced while creating sources are
// collected and returned by Flush.
type Clock struct {
	id      int
	next    int
	sources map[int]*teaSource
	pending []tea.Cmd
}

// NewClock returns a clock with a unique ID.
func NewClock() *Clock {
	return &Clock{
		id:      nextClockID(),
		sources: make(map[int]*teaSource),
	}
}

// ID identifies the clock that a TickMsg belongs to.
func (c *Clock) ID() int {
	return c.id
}

// Every registers a tick source. Its first tick is armed on the next Flush.
func (c *Clock) Every(interval time.Duration, fire func()) phase.TickSource {
	c.next++

	src := &teaSource{
		clock:    c,
		token:    c.next,
		interval: interval,
		fire:     fire,
	}

	c.sources[src.token] = src
	c.pending = append(c.pending, src.arm())

	return src
}

// Update fires the source a TickMsg belongs to and re-arms it while it stays
// live. Messages for stopped sources or other clocks are dropped.
func (c *Clock) Update(msg TickMsg) tea.Cmd {
	if msg.ID != c.id {
		return nil
	}

	src, ok := c.sources[msg.token]
	if ok {
		src.fire()

		// fire may have stopped the source
		if _, live := c.sources[msg.token]; live {
			c.pending = append(c.pending, src.arm())
		}
	}

	return c.Flush()
}

// Flush returns the commands needed to arm newly created sources.
func (c *Clock) Flush() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}

	cmds := c.pending
	c.pending = nil

	return tea.Batch(cmds...)
}

// Active returns the number of live tick sources.
func (c *Clock) Active() int {
	return len(c.sources)
}

type teaSource struct {
	clock    *Clock
	fire     func()
	interval time.Duration
	token    int
}

func (s *teaSource) arm() tea.Cmd {
	id, token := s.clock.id, s.token

	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id, token: token}
	})
}

func (s *teaSource) Stop() {
	delete(s.clock.sources, s.token)
}
