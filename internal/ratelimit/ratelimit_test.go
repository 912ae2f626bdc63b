package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryLimiterSlidingWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(3, time.Minute, func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "a@b.co")
		if err != nil || !ok {
			t.Fatalf("attempt %d should pass: %v", i, err)
		}
		now = now.Add(10 * time.Second)
	}
	if ok, _ := limiter.Allow(ctx, "a@b.co"); ok {
		t.Fatalf("fourth attempt inside window should be rejected")
	}
	if ok, _ := limiter.Allow(ctx, "other@b.co"); !ok {
		t.Fatalf("keys must be independent")
	}

	// first event falls out of the window
	now = now.Add(31 * time.Second)
	if ok, _ := limiter.Allow(ctx, "a@b.co"); !ok {
		t.Fatalf("expected room after window slid")
	}
}

func TestMemoryLimiterReset(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute, nil)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "k"); !ok {
		t.Fatalf("first event should pass")
	}
	if ok, _ := limiter.Allow(ctx, "k"); ok {
		t.Fatalf("second event should be rejected")
	}
	if err := limiter.Reset(ctx, "k"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if ok, _ := limiter.Allow(ctx, "k"); !ok {
		t.Fatalf("reset should free the window")
	}
}

func TestMemoryLimiterForgetsIdleKeys(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(5, 15*time.Minute, func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		if _, err := limiter.Allow(ctx, fmt.Sprintf("user%d@example.com", i)); err != nil {
			t.Fatalf("allow: %v", err)
		}
	}

	now = now.Add(24 * time.Hour)
	if ok, _ := limiter.Allow(ctx, "fresh@example.com"); !ok {
		t.Fatalf("fresh key should pass")
	}
	if n := len(limiter.events); n != 1 {
		t.Fatalf("expected only the fresh key to remain, got %d keys", n)
	}
}

func TestMemoryLimiterDisabled(t *testing.T) {
	limiter := NewMemoryLimiter(0, time.Minute, nil)
	for i := 0; i < 10; i++ {
		if ok, _ := limiter.Allow(context.Background(), "k"); !ok {
			t.Fatalf("zero limit disables limiting")
		}
	}
}

func newRedisLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, limit, window), srv
}

func TestRedisLimiterSlidingWindow(t *testing.T) {
	limiter, srv := newRedisLimiter(t, 3, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "a@b.co")
		if err != nil || !ok {
			t.Fatalf("attempt %d should pass: %v", i, err)
		}
		now = now.Add(10 * time.Second)
	}
	if ok, err := limiter.Allow(ctx, "a@b.co"); err != nil || ok {
		t.Fatalf("fourth attempt inside window should be rejected: %v", err)
	}
	if ttl := srv.TTL(keyPrefix + "a@b.co"); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected key ttl within the window, got %v", ttl)
	}

	now = now.Add(31 * time.Second)
	if ok, _ := limiter.Allow(ctx, "a@b.co"); !ok {
		t.Fatalf("expected room after window slid")
	}

	if err := limiter.Reset(ctx, "a@b.co"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if srv.Exists(keyPrefix + "a@b.co") {
		t.Fatalf("reset should delete the key")
	}
}

func TestRedisLimiterConcurrentBurst(t *testing.T) {
	limiter, _ := newRedisLimiter(t, 5, time.Minute)
	ctx := context.Background()

	var admitted int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := limiter.Allow(ctx, "burst")
			if err != nil {
				t.Errorf("allow: %v", err)
				return
			}
			if ok {
				atomic.AddInt32(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	if admitted != 5 {
		t.Fatalf("expected exactly 5 admitted, got %d", admitted)
	}
}
