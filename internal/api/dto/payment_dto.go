package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentsResponse is the admin payments page.
type PaymentsResponse struct {
	TotalRevenue decimal.Decimal       `json:"total_revenue"`
	Successful   int                   `json:"successful"`
	Failed       int                   `json:"failed"`
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionResponse is one charge attempt.
type TransactionResponse struct {
	ID            int64           `json:"id"`
	Reference     string          `json:"reference,omitempty"`
	OrderID       int64           `json:"order_id"`
	Customer      string          `json:"customer"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Service       string          `json:"service"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CardLast4     string          `json:"card_last4,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`
	Date          time.Time       `json:"date"`
}
