package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Lock serializes operations and enforces a minimum interval between them.
type Lock struct {
	mu   sync.Mutex
	wait time.Duration
	last time.Time
}

// New creates a lock that keeps at least wait between consecutive operations.
func New(wait time.Duration) *Lock {
	return &Lock{wait: wait}
}

// Lock blocks until the lock is acquired and the minimum interval since the
// previous operation has elapsed, then returns the unlock function. If the
// context is cancelled while waiting, the returned function is a no-op.
func (l *Lock) Lock(ctx context.Context) func() {
	l.mu.Lock()
	elapsed := time.Since(l.last)
	if wait := l.wait - elapsed; wait > 0 {
		select {
		case <-ctx.Done():
			l.mu.Unlock()
			return func() {}
		case <-time.After(wait):
		}
	}
	return func() {
		l.last = time.Now()
		l.mu.Unlock()
	}
}
