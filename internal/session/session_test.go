package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreRevokeUntilExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	if revoked, _ := store.IsRevoked(ctx, "jti-1"); revoked {
		t.Fatalf("fresh token reported revoked")
	}
	if err := store.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, _ := store.IsRevoked(ctx, "jti-1"); !revoked {
		t.Fatalf("expected revoked token")
	}

	now = now.Add(2 * time.Minute)
	if revoked, _ := store.IsRevoked(ctx, "jti-1"); revoked {
		t.Fatalf("revocation should lapse with the token")
	}
}

func TestMemoryStoreIgnoresExpiredTokens(t *testing.T) {
	store := NewMemoryStore(nil)
	if err := store.Revoke(context.Background(), "gone", 0); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, _ := store.IsRevoked(context.Background(), "gone"); revoked {
		t.Fatalf("expired token should not be stored")
	}
}

func TestRedisStoreRevokeUntilExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client)
	ctx := context.Background()

	if revoked, err := store.IsRevoked(ctx, "jti-1"); err != nil || revoked {
		t.Fatalf("fresh token reported revoked: %v", err)
	}
	if err := store.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, err := store.IsRevoked(ctx, "jti-1"); err != nil || !revoked {
		t.Fatalf("expected revoked token: %v", err)
	}

	srv.FastForward(2 * time.Minute)
	if revoked, _ := store.IsRevoked(ctx, "jti-1"); revoked {
		t.Fatalf("revocation should lapse with the token")
	}

	if err := store.Revoke(ctx, "jti-2", 0); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if srv.Exists(revokedPrefix + "jti-2") {
		t.Fatalf("expired token should not be stored")
	}
}

func TestRedisStoreSurfacesErrors(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client)

	srv.Close()
	if _, err := store.IsRevoked(context.Background(), "jti-1"); err == nil {
		t.Fatalf("expected an error once redis is gone")
	}
}
