package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates order states. Any status may follow any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusSuspended OrderStatus = "suspended"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusActive, OrderStatusSuspended, OrderStatusCancelled}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusActive, OrderStatusSuspended, OrderStatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus accepts any casing of a known status.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Order links a user to a service at a point in time.
type Order struct {
	ID           int64
	UserID       int64
	ServiceID    int64
	Status       OrderStatus
	Amount       decimal.Decimal
	BillingCycle BillingCycle
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
