package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyLimiter shares fixed-window counters across instances.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int
	size   time.Duration
	now    func() time.Time
}

// NewValkeyLimiter constructs a limiter backed by Valkey.
func NewValkeyLimiter(client valkey.Client, prefix string, limit int, size time.Duration) *ValkeyLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &ValkeyLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		size:   size,
		now:    time.Now,
	}
}

// Allow implements Limiter. The key expires with its window.
func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := l.key(key)
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(k).Build()).AsInt64()
	if err != nil {
		return Result{}, err
	}
	if count == 1 {
		if err := l.expire(ctx, k); err != nil {
			return Result{}, err
		}
	}

	ttl, err := l.client.Do(ctx, l.client.B().Pttl().Key(k).Build()).AsInt64()
	if err != nil {
		return Result{}, err
	}
	if ttl < 0 {
		// A previous PEXPIRE was lost; restart the window rather than pin the key forever.
		if err := l.expire(ctx, k); err != nil {
			return Result{}, err
		}
		ttl = l.size.Milliseconds()
	}
	return newResult(l.limit, count, l.now().Add(time.Duration(ttl)*time.Millisecond)), nil
}

func (l *ValkeyLimiter) expire(ctx context.Context, key string) error {
	return l.client.Do(ctx, l.client.B().Pexpire().Key(key).Milliseconds(l.size.Milliseconds()).Build()).Error()
}

func (l *ValkeyLimiter) key(key string) string {
	return fmt.Sprintf("%s:%s", l.prefix, key)
}

var _ Limiter = (*ValkeyLimiter)(nil)
