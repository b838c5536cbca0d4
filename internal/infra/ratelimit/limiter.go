package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a key's window after a hit.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

func newResult(limit int, count int64, resetAt time.Time) Result {
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: int(remaining),
		ResetAt:   resetAt,
	}
}
