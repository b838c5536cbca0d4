package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter keeps fixed-window counters in process memory.
type MemoryLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	size      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter allows limit hits per key every size.
func NewMemoryLimiter(limit int, size time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		size:    size,
		now:     time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweepLocked(now)

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.size)}
		l.windows[key] = w
	}
	w.count++
	return newResult(l.limit, w.count, w.resetAt), nil
}

// sweepLocked drops expired windows at most once per window length.
func (l *MemoryLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < l.size {
		return
	}
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}

var _ Limiter = (*MemoryLimiter)(nil)
