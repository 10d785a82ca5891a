// Package timer runs the CLI's interval loops: the pomodoro countdown and the
// breathing cycle. One Runner holds at most one running loop.
package timer

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStopped is returned when a loop ends before its last tick, either
// because its context was cancelled or because another loop replaced it.
var ErrStopped = errors.New("timer stopped")

type Runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Run calls onTick every interval, ticks times in total, and returns nil after
// the last one. Starting a new Run stops the previous one first; a
// cancelled ctx or a replacement ends the loop with ErrStopped.
func (r *Runner) Run(ctx context.Context, interval time.Duration, ticks int, onTick func(n int)) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	r.mu.Lock()
	r.stopLocked()
	r.cancel, r.done = cancel, done
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		if r.done == done {
			r.cancel, r.done = nil, nil
		}
		r.mu.Unlock()
		cancel()
	}()
	// done must close before the cleanup above takes the lock: Stop holds it
	// while waiting.
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; n <= ticks; n++ {
		select {
		case <-ctx.Done():
			return ErrStopped
		case <-ticker.C:
			onTick(n)
		}
	}
	return nil
}

// Stop ends the running loop, if any, and waits for it to return.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel, r.done = nil, nil
}
