package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PriceInput accepts either a JSON number (9.99) or a display string
// ("$9.99/mo").
type PriceInput string

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceInput(n.String())
	return nil
}

// ServiceRequest is the create form.
type ServiceRequest struct {
	Name         string     `json:"name" validate:"required,max=255"`
	Description  string     `json:"description"`
	Category     string     `json:"category" validate:"required"`
	Price        PriceInput `json:"price" validate:"required"`
	BillingCycle string     `json:"billing_cycle" validate:"omitempty,oneofci=monthly yearly"`
	Features     []string   `json:"features" validate:"dive,max=255"`
	Status       string     `json:"status" validate:"omitempty,oneofci=active inactive draft"`
}

// UpdateServiceRequest carries only the fields to change.
type UpdateServiceRequest struct {
	Name         *string     `json:"name"`
	Description  *string     `json:"description"`
	Category     *string     `json:"category"`
	Price        *PriceInput `json:"price"`
	BillingCycle *string     `json:"billing_cycle" validate:"omitempty,oneofci=monthly yearly"`
	Features     *[]string   `json:"features"`
	Status       *string     `json:"status" validate:"omitempty,oneofci=active inactive draft"`
}

// ServiceResponse is a catalogue entry.
type ServiceResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	BillingCycle string          `json:"billing_cycle"`
	Features     []string        `json:"features"`
	Status       string          `json:"status"`
	Customers    int             `json:"customers"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
