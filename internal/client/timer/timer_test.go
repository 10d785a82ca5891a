package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CompletesAllTicks(t *testing.T) {
	var r Runner
	var seen []int

	err := r.Run(context.Background(), time.Millisecond, 3, func(n int) { seen = append(seen, n) })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestRun_CancelStopsTicks(t *testing.T) {
	var r Runner
	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		errc <- r.Run(ctx, time.Millisecond, 1_000_000, func(int) { ticks.Add(1) })
	}()

	assert.Eventually(t, func() bool { return ticks.Load() > 0 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errc, ErrStopped)

	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestRun_NewTimerStopsPrevious(t *testing.T) {
	var r Runner
	var first atomic.Int32

	errc := make(chan error, 1)
	go func() {
		errc <- r.Run(context.Background(), time.Millisecond, 1_000_000, func(int) { first.Add(1) })
	}()
	assert.Eventually(t, func() bool { return first.Load() > 0 }, time.Second, time.Millisecond)

	require.NoError(t, r.Run(context.Background(), time.Millisecond, 2, func(int) {}))
	assert.ErrorIs(t, <-errc, ErrStopped)
}

func TestStop(t *testing.T) {
	var r Runner
	r.Stop()

	errc := make(chan error, 1)
	started := make(chan struct{})
	go func() {
		errc <- r.Run(context.Background(), time.Hour, 1, func(int) {})
	}()
	go func() {
		for {
			r.mu.Lock()
			running := r.cancel != nil
			r.mu.Unlock()
			if running {
				close(started)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	<-started
	r.Stop()
	assert.ErrorIs(t, <-errc, ErrStopped)
}
