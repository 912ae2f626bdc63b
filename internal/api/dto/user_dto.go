package dto

import "github.com/shopspring/decimal"

// CreateUserRequest is the admin "add user" form.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,strong_password"`
	Role     string `json:"role" validate:"omitempty,oneofci=customer admin"`
	Language string `json:"language"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Status   string `json:"status" validate:"omitempty,oneofci=active suspended"`
}

// UpdateUserRequest carries only the fields to change.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email,max=254"`
	Password *string `json:"password" validate:"omitempty,strong_password"`
	Role     *string `json:"role" validate:"omitempty,oneofci=customer admin"`
	Language *string `json:"language"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zip_code"`
	Country  *string `json:"country"`
	Status   *string `json:"status" validate:"omitempty,oneofci=active suspended"`
}

// UserSummaryResponse is a row of the admin users table.
type UserSummaryResponse struct {
	UserResponse
	Services   int             `json:"services"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}
