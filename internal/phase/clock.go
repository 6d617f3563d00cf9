package phase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// TickSource is a repeating timer created by a Clock. Stop is idempotent and
// guarantees that no further firings are delivered.
type TickSource interface {
	Stop()
}

// Clock creates repeating tick sources.
type Clock interface {
	Every(interval time.Duration, fire func()) TickSource
}

// LoopClock is an event-loop clock: every tick source runs on a real ticker,
// but firings are queued onto a single channel and executed by whoever drains
// it. Callbacks therefore never run concurrently.
type LoopClock struct {
	c chan func()
}

// NewLoopClock returns a LoopClock with a small firing queue.
func NewLoopClock() *LoopClock {
	return &LoopClock{
		c: make(chan func(), 16),
	}
}

// C exposes the firing queue for callers that run their own select loop.
func (l *LoopClock) C() <-chan func() {
	return l.c
}

// Run executes queued firings until ctx is done.
func (l *LoopClock) Run(ctx context.Context) error {
	for {
		// select picks randomly between ready cases
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fire := <-l.c:
			fire()
		}
	}
}

// Every starts a ticker that enqueues fire once per interval.
func (l *LoopClock) Every(interval time.Duration, fire func()) TickSource {
	src := &loopSource{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	guarded := func() {
		// a firing may already be queued when Stop is called
		if src.stopped.Load() {
			return
		}

		fire()
	}

	go func() {
		for {
			select {
			case <-src.done:
				return
			case <-src.ticker.C:
				select {
				case l.c <- guarded:
				case <-src.done:
					return
				}
			}
		}
	}()

	return src
}

type loopSource struct {
	ticker  *time.Ticker
	done    chan struct{}
	once    sync.Once
	stopped atomic.Bool
}

func (s *loopSource) Stop() {
	s.once.Do(func() {
		s.stopped.Store(true)
		s.ticker.Stop()
		close(s.done)
	})
}
