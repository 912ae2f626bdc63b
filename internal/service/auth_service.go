package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/i18n"
	"github.com/spec-kit/storefront/internal/ratelimit"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/session"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// AuthService coordinates registration, login and session checks.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	sessions   session.Store
	limiter    ratelimit.Limiter
	events     publisher
	bcryptCost int
	now        func() time.Time
}

// Session is the result of a successful login or registration.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// RegisterInput is the signup form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Language        string
	Phone           string
	Address         string
	City            string
	State           string
	ZipCode         string
	Country         string
}

// Login authenticates a user by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError(validation.MsgFillAllFields, nil)
	}

	// Every attempt takes a slot; a correct password hands the slots back, so
	// only failed attempts count against the window.
	limitKey := "login:" + email
	allowed, err := s.limiter.Allow(ctx, limitKey)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	if !allowed {
		return nil, apperrors.NewRateLimited("too many login attempts, try again later")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInvalidCredentials()
	}
	if err != nil {
		return nil, storeError("user", 0, err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.limiter.Reset(ctx, limitKey); err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	if user.Status == domain.UserStatusSuspended {
		return nil, apperrors.NewForbidden("account suspended")
	}
	return s.issue(user)
}

// Register creates a customer account and signs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	form := validation.SignupForm{
		Name:            input.Name,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	}
	if err := validation.ValidateSignup(form); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         validation.SanitizeInput(input.Name),
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		Language:     languageOrDefault(input.Language),
		Phone:        validation.SanitizeInput(input.Phone),
		Address:      validation.SanitizeInput(input.Address),
		City:         validation.SanitizeInput(input.City),
		State:        validation.SanitizeInput(input.State),
		ZipCode:      validation.SanitizeInput(input.ZipCode),
		Country:      validation.SanitizeInput(input.Country),
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, emailTaken(user.Email)
		}
		return nil, storeError("user", 0, err)
	}

	s.events.publish(ctx, events.New(events.EventUserRegistered, "user", user.ID, user.ID, s.now(),
		events.UserRegisteredPayload{Email: user.Email, Role: user.Role, Language: user.Language}))
	return s.issue(user)
}

// Logout revokes the principal's token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, principal *auth.Principal) error {
	if principal == nil || principal.TokenID == "" {
		return apperrors.NewUnauthorized("authentication required")
	}
	ttl := principal.ExpiresAt.Sub(s.now())
	if err := s.sessions.Revoke(ctx, principal.TokenID, ttl); err != nil {
		return apperrors.NewPersistenceFailure(err)
	}
	return nil
}

// Authenticate resolves a bearer token into the current user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid or expired token")
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(err)
	}
	if revoked {
		return nil, apperrors.NewUnauthorized("token revoked")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized("account no longer exists")
	}
	if err != nil {
		return nil, storeError("user", claims.UserID, err)
	}
	if user.Status == domain.UserStatusSuspended {
		return nil, apperrors.NewForbidden("account suspended")
	}

	principal := &auth.Principal{User: user, Token: token, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	return principal, nil
}

func (s *AuthService) issue(user *domain.User) (*Session, error) {
	issued, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &Session{User: user, Token: issued.Token, ExpiresAt: issued.ExpiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func languageOrDefault(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i18n.IsSupported(lang) {
		return lang
	}
	return i18n.Default
}

func emailTaken(email string) error {
	return apperrors.NewConflict("email already registered", map[string]any{"email": email})
}
