package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "STORE_BACKEND", "STORE_LATENCY_MS", "STORE_SEED_DEMO", "POSTGRES_DSN",
		"REDIS_ENABLED", "REDIS_DB", "AUTH_ACCESS_TOKEN_TTL_MINUTES", "AUTH_BCRYPT_COST",
		"RATE_LIMIT_LOGIN_ATTEMPTS", "RATE_LIMIT_LOGIN_WINDOW_SECONDS", "PAYMENT_PROCESSING_DELAY_MS",
		"HTTP_REQUEST_TIMEOUT_SECONDS", "APP_ENV", "AUTH_JWT_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Fatalf("addr default: %s", cfg.App.Addr())
	}
	if cfg.Store.Backend != BackendMemory || !cfg.Store.SeedDemo || cfg.Store.Latency() != 0 {
		t.Fatalf("store defaults: %+v", cfg.Store)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("redis should be disabled by default")
	}
	if cfg.Auth.TokenTTL() != time.Hour || cfg.Auth.BcryptCost != 12 {
		t.Fatalf("auth defaults: %+v", cfg.Auth)
	}
	if cfg.RateLimit.LoginAttempts != 5 || cfg.RateLimit.LoginWindow() != 15*time.Minute {
		t.Fatalf("rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.App.RequestTimeout() != 30*time.Second {
		t.Fatalf("timeout default: %v", cfg.App.RequestTimeout())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_LATENCY_MS", "250")
	t.Setenv("STORE_SEED_DEMO", "false")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("PAYMENT_PROCESSING_DELAY_MS", "1500")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("port env")
	}
	if cfg.Store.Latency() != 250*time.Millisecond || cfg.Store.SeedDemo {
		t.Fatalf("store env: %+v", cfg.Store)
	}
	if !cfg.Redis.Enabled {
		t.Fatalf("redis env")
	}
	if cfg.Auth.TokenTTL() != 5*time.Minute {
		t.Fatalf("ttl env")
	}
	if cfg.Payment.ProcessingDelay() != 1500*time.Millisecond {
		t.Fatalf("payment delay env")
	}
}

func TestLoadRejectsBadBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "mongo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoadPostgresNeedsDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without POSTGRES_DSN")
	}
	t.Setenv("POSTGRES_DSN", "postgres://localhost/storefront")
	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "zero")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REDIS_DB")
	}
}

func TestLoadJWTSecret(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != DevJWTSecret {
		t.Fatalf("development should fall back to the dev secret, got %q", cfg.Auth.JWTSecret)
	}

	t.Setenv("APP_ENV", "production")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without AUTH_JWT_SECRET outside development")
	}
	t.Setenv("AUTH_JWT_SECRET", DevJWTSecret)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for the dev secret outside development")
	}
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t-from-vault")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != "s3cr3t-from-vault" || cfg.App.Env != "production" {
		t.Fatalf("unexpected auth config %+v / %s", cfg.Auth, cfg.App.Env)
	}
}
