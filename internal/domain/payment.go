package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome of one charge attempt.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records a card charge attempt made at checkout, successful or not.
// Rows are append-only.
type Payment struct {
	ID int64
	// Reference is the gateway's payment id; empty for declined charges.
	Reference     string
	OrderID       int64
	UserID        int64
	ServiceID     int64
	Amount        decimal.Decimal
	Status        PaymentStatus
	CardLast4     string
	FailureReason string
	CreatedAt     time.Time
}
