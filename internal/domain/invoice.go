package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates billing record states.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing record tied to an order.
// Nothing issues invoices yet; orders are paid at purchase time.
type Invoice struct {
	ID        int64
	UserID    int64
	OrderID   int64
	Amount    decimal.Decimal
	Status    InvoiceStatus
	DueDate   time.Time
	PaidAt    *time.Time
	CreatedAt time.Time
}
