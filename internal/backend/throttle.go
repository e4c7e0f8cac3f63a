package backend

import (
	"context"
	"sync"
	"time"
)

// throttle keeps successive reloads at least interval apart so an editor
// saving in a loop cannot spin the loader.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: interval}
}

// wait blocks until the next slot is free. It returns false if ctx ends
// first, in which case the slot is not consumed.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if delay := time.Until(t.last.Add(t.interval)); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.last = time.Now()
	return true
}
