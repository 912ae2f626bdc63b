package domain

import (
	"strings"
	"time"
)

// Role decides which surface a user is routed to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// ParseRole accepts any casing of a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// UserStatus represents lifecycle states for an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// Valid reports whether s is a known status.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// ParseUserStatus accepts any casing of a known status.
func ParseUserStatus(s string) (UserStatus, bool) {
	st := UserStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

// User is a storefront account, customer or administrator.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Language     string
	Phone        string
	Address      string
	City         string
	State        string
	ZipCode      string
	Country      string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may use the back-office.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
