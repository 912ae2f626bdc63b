package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/i18n"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// UserService is the back-office account management.
type UserService struct {
	users      repository.UserRepository
	orders     repository.OrderRepository
	bcryptCost int
}

// UserSummary is an account with its order totals.
type UserSummary struct {
	User       domain.User
	Services   int
	TotalSpent decimal.Decimal
}

// CreateUserInput is the admin "add user" form.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Language string
	Phone    string
	Address  string
	City     string
	State    string
	ZipCode  string
	Country  string
	Status   string
}

// UserChanges is the edit form; nil fields are left untouched.
type UserChanges struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Language *string
	Phone    *string
	Address  *string
	City     *string
	State    *string
	ZipCode  *string
	Country  *string
	Status   *string
}

// GetAllUsers lists accounts, newest first, optionally filtered by a
// case-insensitive search over name and email.
func (s *UserService) GetAllUsers(ctx context.Context, search string) ([]UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("user", 0, err)
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, storeError("order", 0, err)
	}

	type totals struct {
		services int
		spent    decimal.Decimal
	}
	byUser := make(map[int64]*totals)
	for _, order := range orders {
		if order.Status == domain.OrderStatusCancelled {
			continue
		}
		t := byUser[order.UserID]
		if t == nil {
			t = &totals{spent: decimal.Zero}
			byUser[order.UserID] = t
		}
		t.services++
		t.spent = t.spent.Add(order.Amount)
	}

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]UserSummary, 0, len(users))
	for _, user := range users {
		if term != "" && !strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) {
			continue
		}
		summary := UserSummary{User: user, TotalSpent: decimal.Zero}
		if t := byUser[user.ID]; t != nil {
			summary.Services = t.services
			summary.TotalSpent = t.spent
		}
		out = append(out, summary)
	}
	return out, nil
}

// GetUser loads one account.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("user", id, err)
	}
	return user, nil
}

// CreateUser adds an account from the back-office. Admin-created passwords
// must pass the strong password policy.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	fields := map[string]any{}
	name := validation.SanitizeInput(input.Name)
	if name == "" {
		fields["name"] = "required"
	}
	if !validation.IsValidEmail(input.Email) {
		fields["email"] = "invalid"
	}
	if reason, _ := validation.PasswordWeakness(input.Password); reason != "" {
		fields["password"] = reason
	}
	role := domain.RoleCustomer
	if strings.TrimSpace(input.Role) != "" {
		parsed, ok := domain.ParseRole(input.Role)
		if !ok {
			fields["role"] = "invalid"
		}
		role = parsed
	}
	status := domain.UserStatusActive
	if strings.TrimSpace(input.Status) != "" {
		parsed, ok := domain.ParseUserStatus(input.Status)
		if !ok {
			fields["status"] = "invalid"
		}
		status = parsed
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid user", fields)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	user := &domain.User{
		Name:         name,
		Email:        normalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         role,
		Language:     languageOrDefault(input.Language),
		Phone:        validation.SanitizeInput(input.Phone),
		Address:      validation.SanitizeInput(input.Address),
		City:         validation.SanitizeInput(input.City),
		State:        validation.SanitizeInput(input.State),
		ZipCode:      validation.SanitizeInput(input.ZipCode),
		Country:      validation.SanitizeInput(input.Country),
		Status:       status,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, emailTaken(user.Email)
		}
		return nil, storeError("user", 0, err)
	}
	return user, nil
}

// UpdateUser applies the set fields of changes.
func (s *UserService) UpdateUser(ctx context.Context, id int64, changes UserChanges) (*domain.User, error) {
	var upd repository.UserUpdate
	fields := map[string]any{}

	if changes.Name != nil {
		name := validation.SanitizeInput(*changes.Name)
		if name == "" {
			fields["name"] = "required"
		}
		upd.Name = &name
	}
	if changes.Email != nil {
		if !validation.IsValidEmail(*changes.Email) {
			fields["email"] = "invalid"
		}
		email := normalizeEmail(*changes.Email)
		upd.Email = &email
	}
	if changes.Role != nil {
		role, ok := domain.ParseRole(*changes.Role)
		if !ok {
			fields["role"] = "invalid"
		}
		upd.Role = &role
	}
	if changes.Status != nil {
		status, ok := domain.ParseUserStatus(*changes.Status)
		if !ok {
			fields["status"] = "invalid"
		}
		upd.Status = &status
	}
	if changes.Language != nil {
		lang := strings.ToLower(strings.TrimSpace(*changes.Language))
		if !i18n.IsSupported(lang) {
			fields["language"] = "unsupported"
		}
		upd.Language = &lang
	}
	for _, f := range []struct {
		src *string
		dst **string
	}{
		{changes.Phone, &upd.Phone},
		{changes.Address, &upd.Address},
		{changes.City, &upd.City},
		{changes.State, &upd.State},
		{changes.ZipCode, &upd.ZipCode},
		{changes.Country, &upd.Country},
	} {
		if f.src != nil {
			v := validation.SanitizeInput(*f.src)
			*f.dst = &v
		}
	}
	if len(fields) > 0 {
		return nil, invalidFields("invalid user", fields)
	}
	if changes.Password != nil {
		if err := validation.ValidatePasswordStrength(*changes.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*changes.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		upd.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) && upd.Email != nil {
			return nil, emailTaken(*upd.Email)
		}
		return nil, storeError("user", id, err)
	}
	return user, nil
}

// ToggleStatus flips an account between active and suspended. The store
// decides the flip so concurrent toggles never read a stale status.
func (s *UserService) ToggleStatus(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.ToggleStatus(ctx, id)
	if err != nil {
		return nil, storeError("user", id, err)
	}
	return user, nil
}

// DeleteUser removes an account. Its orders and tickets are kept.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	removed, err := s.users.Delete(ctx, id)
	if err != nil {
		return storeError("user", id, err)
	}
	if !removed {
		return missing("user", id)
	}
	return nil
}
