// Package poll drives periodic refreshes. The loop itself never touches the
// display: each cycle it hands off to the UI goroutine through post and then
// sleeps.
package poll

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// MinWait is the shortest sleep between cycles. It keeps a zero or negative
// interval from turning the loop into a busy spin.
const MinWait = 50 * time.Millisecond

// Loop posts a refresh, waits interval(), and repeats until stopped.
type Loop struct {
	interval func() time.Duration
	post     func()
	after    func(time.Duration) <-chan time.Time

	running  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// Option configures a Loop.
type Option func(*Loop)

// WithAfter replaces time.After, for tests.
func WithAfter(after func(time.Duration) <-chan time.Time) Option {
	return func(l *Loop) { l.after = after }
}

// New returns a loop that calls post every interval(). interval is re-read
// before every wait, so changes apply from the next cycle.
func New(interval func() time.Duration, post func(), opts ...Option) *Loop {
	l := &Loop{
		interval: interval,
		post:     post,
		after:    time.After,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.running.Store(true)
	return l
}

// Wait returns d floored at MinWait.
func Wait(d time.Duration) time.Duration {
	if d < MinWait {
		return MinWait
	}
	return d
}

// Run blocks until Stop is called or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if !l.running.Load() {
			return nil
		}
		l.post()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case <-l.after(Wait(l.interval())):
		}
	}
}

// Running reports whether Stop has not been called yet.
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Stop ends the loop after the current cycle. A refresh already posted is not
// recalled; no new one is posted. Safe to call more than once.
func (l *Loop) Stop() {
	l.running.Store(false)
	l.stopOnce.Do(func() { close(l.stop) })
}
