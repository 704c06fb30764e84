// Package redisstore is a Redis-backed variant of the submission limiter for
// deployments running more than one instance of the api. The in-memory
// limiter counts per process; this one shares the fixed-window counters
// through Redis so every instance sees the same totals.
package redisstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/doucearrivee/contact-api/ratelimit"
)

var _ ratelimit.Limiter = &Limiter{}

const keyPrefix = "contact:ratelimit:"

// Limiter implements ratelimit.Limiter on top of a Redis fixed-window
// counter. INCR carries the atomicity the in-memory limiter gets from its
// mutex; the key TTL plays the role of the expiry sweep.
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// New returns a Limiter using the given client. Non-positive arguments fall
// back to the package defaults in ratelimit.
func New(client *redis.Client, max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = ratelimit.DefaultMaxRequests
	}
	if window <= 0 {
		window = ratelimit.DefaultWindow
	}

	return &Limiter{client: client, max: int64(max), window: window}
}

// IsRateLimited implements ratelimit.Limiter. A caller already at the limit
// is rejected without touching its counter so repeated polling can't extend
// the block.
func (l *Limiter) IsRateLimited(ctx context.Context, ip string) (bool, error) {
	key := keyPrefix + ip

	count, err := l.client.Get(ctx, key).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, errors.Wrap(err, "redisstore: failed to read counter")
	}
	if err == nil && count >= l.max {
		return true, nil
	}

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, errors.Wrap(err, "redisstore: failed to increment counter")
	}

	return incr.Val() > l.max, nil
}
