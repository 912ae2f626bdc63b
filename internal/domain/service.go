package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory groups sellable plans.
type ServiceCategory string

const (
	CategoryHosting       ServiceCategory = "hosting"
	CategoryVPS           ServiceCategory = "vps"
	CategoryDedicated     ServiceCategory = "dedicated"
	CategoryCybersecurity ServiceCategory = "cybersecurity"
)

// Categories lists every category in catalogue order.
var Categories = []ServiceCategory{CategoryHosting, CategoryVPS, CategoryDedicated, CategoryCybersecurity}

// Valid reports whether c is a known category.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryHosting, CategoryVPS, CategoryDedicated, CategoryCybersecurity:
		return true
	}
	return false
}

// ParseServiceCategory accepts display names such as "Hosting" or "Security".
func ParseServiceCategory(s string) (ServiceCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "security", "cyber security":
		return CategoryCybersecurity, true
	case "dedicated server", "dedicated servers":
		return CategoryDedicated, true
	case "web hosting":
		return CategoryHosting, true
	}
	c := ServiceCategory(normalized)
	return c, c.Valid()
}

// BillingCycle is the recurrence period of a plan.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

// Valid reports whether b is a known cycle.
func (b BillingCycle) Valid() bool {
	return b == BillingMonthly || b == BillingYearly
}

// ParseBillingCycle accepts any casing of a known cycle.
func ParseBillingCycle(s string) (BillingCycle, bool) {
	b := BillingCycle(strings.ToLower(strings.TrimSpace(s)))
	return b, b.Valid()
}

// Term returns how long one paid period lasts.
func (b BillingCycle) Term() time.Duration {
	if b == BillingYearly {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// ServiceStatus controls catalogue visibility.
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
	ServiceStatusDraft    ServiceStatus = "draft"
)

// Valid reports whether s is a known status.
func (s ServiceStatus) Valid() bool {
	switch s {
	case ServiceStatusActive, ServiceStatusInactive, ServiceStatusDraft:
		return true
	}
	return false
}

// ParseServiceStatus accepts any casing of a known status.
func ParseServiceStatus(s string) (ServiceStatus, bool) {
	st := ServiceStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

// Service is a sellable plan.
type Service struct {
	ID           int64
	Name         string
	Description  string
	Category     ServiceCategory
	Price        decimal.Decimal
	BillingCycle BillingCycle
	Features     []string
	Status       ServiceStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyPrice normalizes the price to one month.
func (s *Service) MonthlyPrice() decimal.Decimal {
	return MonthlyAmount(s.Price, s.BillingCycle)
}

// MonthlyAmount normalizes an amount billed every cycle to one month.
func MonthlyAmount(amount decimal.Decimal, cycle BillingCycle) decimal.Decimal {
	if cycle == BillingYearly {
		return amount.Div(decimal.NewFromInt(12)).Round(2)
	}
	return amount
}

// ErrInvalidPrice is returned when a price string cannot be parsed.
var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice reads prices written as "$9.99/mo", "$120/yr", "19.99" or "€5".
// The cycle is empty when the string carries no period suffix.
func ParsePrice(s string) (decimal.Decimal, BillingCycle, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	var cycle BillingCycle
	if idx := strings.Index(raw, "/"); idx >= 0 {
		switch strings.TrimSpace(raw[idx+1:]) {
		case "mo", "month", "monthly":
			cycle = BillingMonthly
		case "yr", "year", "yearly", "annum":
			cycle = BillingYearly
		default:
			return decimal.Zero, "", ErrInvalidPrice
		}
		raw = raw[:idx]
	}
	raw = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "$€£"))
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return decimal.Zero, "", ErrInvalidPrice
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, "", ErrInvalidPrice
	}
	return price, cycle, nil
}
