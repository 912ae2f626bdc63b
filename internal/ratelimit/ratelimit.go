package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter admits at most a fixed number of events per sliding window.
type Limiter interface {
	// Allow records an event for key when the window still has room and
	// reports whether it did. The check and the record are atomic.
	Allow(ctx context.Context, key string) (bool, error)
	// Reset forgets every event recorded for key.
	Reset(ctx context.Context, key string) error
}

const keyPrefix = "storefront:ratelimit:"

// slidingWindow prunes expired entries, then adds ARGV[4] unless the set is full.
// KEYS[1] set, ARGV[1] now ms, ARGV[2] floor ms, ARGV[3] limit, ARGV[4] member, ARGV[5] ttl ms.
var slidingWindow = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[2])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[3]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[1], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// RedisLimiter keeps one sorted set of event timestamps per key.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter builds a Redis-backed sliding window limiter.
func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, window: window, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}
	now := l.now()
	admitted, err := slidingWindow.Run(ctx, l.client, []string{keyPrefix + key},
		now.UnixMilli(),
		now.Add(-l.window).UnixMilli(),
		l.limit,
		uuid.NewString(),
		l.window.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return admitted == 1, nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, keyPrefix+key).Err()
}

// MemoryLimiter is the single-process sliding window.
type MemoryLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	now       func() time.Time
	events    map[string][]time.Time
	lastSweep time.Time
}

// NewMemoryLimiter builds an in-memory limiter; now may be nil.
func NewMemoryLimiter(limit int, window time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{limit: limit, window: window, now: now, events: make(map[string][]time.Time)}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.limit <= 0 || l.window <= 0 {
		return true, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	floor := now.Add(-l.window)
	l.sweep(now, floor)

	kept := prune(l.events[key], floor)
	if len(kept) >= l.limit {
		l.events[key] = kept
		return false, nil
	}
	l.events[key] = append(kept, now)
	return true, nil
}

func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.events, key)
	return nil
}

// sweep drops keys whose events all fell out of the window. It runs at most
// once per window.
func (l *MemoryLimiter) sweep(now, floor time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, events := range l.events {
		if kept := prune(events, floor); len(kept) == 0 {
			delete(l.events, key)
		} else {
			l.events[key] = kept
		}
	}
}

func prune(events []time.Time, floor time.Time) []time.Time {
	kept := events[:0]
	for _, at := range events {
		if at.After(floor) {
			kept = append(kept, at)
		}
	}
	return kept
}
