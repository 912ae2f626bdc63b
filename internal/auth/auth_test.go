package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront/internal/domain"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("customer123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "customer123" {
		t.Fatalf("password stored in clear")
	}
	if err := ComparePassword(hash, "customer123"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	issued, err := tm.GenerateToken(7, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if issued.ID == "" || issued.Token == "" {
		t.Fatalf("missing token fields: %+v", issued)
	}

	claims, err := tm.ParseToken(issued.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.Role != domain.RoleAdmin || claims.ID != issued.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenRejectsWrongSecretAndExpiry(t *testing.T) {
	issued, err := NewTokenManager("secret", time.Minute).GenerateToken(1, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewTokenManager("other", time.Minute).ParseToken(issued.Token); err == nil {
		t.Fatalf("expected signature error")
	}

	late := NewTokenManager("secret", time.Minute).WithClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
	if _, err := late.ParseToken(issued.Token); err == nil {
		t.Fatalf("expected expiry error")
	}
}
