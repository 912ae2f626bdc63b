package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest places a pending order.
type CreateOrderRequest struct {
	ServiceID    int64            `json:"service_id" validate:"required,gt=0"`
	Amount       *decimal.Decimal `json:"amount"`
	BillingCycle string           `json:"billing_cycle" validate:"omitempty,oneofci=monthly yearly"`
}

// UpdateOrderRequest changes an order's status.
type UpdateOrderRequest struct {
	Status string `json:"status" validate:"required,oneofci=pending active suspended cancelled"`
}

// PurchaseRequest is the checkout form. The card fields are checked together
// by validation.ValidateCard so every bad field is reported at once.
type PurchaseRequest struct {
	ServiceID  int64  `json:"service_id" validate:"required,gt=0"`
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// OrderResponse is an order with display names.
type OrderResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	ServiceID     int64           `json:"service_id"`
	ServiceName   string          `json:"service_name,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	BillingCycle  string          `json:"billing_cycle"`
	ExpiresAt     time.Time       `json:"expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ReceiptResponse confirms a captured payment.
type ReceiptResponse struct {
	PaymentID  string          `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	CardLast4  string          `json:"card_last4"`
	CapturedAt time.Time       `json:"captured_at"`
}

// PurchaseResponse is the paid order.
type PurchaseResponse struct {
	Order   OrderResponse   `json:"order"`
	Receipt ReceiptResponse `json:"receipt"`
}
