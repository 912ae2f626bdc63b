package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportResponse is the admin reports page.
type ReportResponse struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Users       UserStatsResponse    `json:"users"`
	Services    ServiceStatsResponse `json:"services"`
	Orders      OrderStatsResponse   `json:"orders"`
	Revenue     RevenueResponse      `json:"revenue"`
	Categories  []CategoryResponse   `json:"categories"`
	Support     SupportResponse      `json:"support"`
}

type UserStatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Suspended    int `json:"suspended"`
	NewThisMonth int `json:"new_this_month"`
}

type ServiceStatsResponse struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	TotalCustomers int `json:"total_customers"`
}

type OrderStatsResponse struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	Active         int            `json:"active"`
	PendingPayment int            `json:"pending_payment"`
}

type RevenueResponse struct {
	Monthly  decimal.Decimal `json:"monthly"`
	Lifetime decimal.Decimal `json:"lifetime"`
}

type CategoryResponse struct {
	Category           string          `json:"category"`
	Services           int             `json:"services"`
	Customers          int             `json:"customers"`
	MonthlyRevenue     decimal.Decimal `json:"monthly_revenue"`
	RevenuePerCustomer decimal.Decimal `json:"revenue_per_customer"`
}

type SupportResponse struct {
	Total         int `json:"total"`
	Open          int `json:"open"`
	HighPriority  int `json:"high_priority"`
	ResolvedToday int `json:"resolved_today"`
}

// ConnectionResponse reports on the backing store.
type ConnectionResponse struct {
	Backend string `json:"backend"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TranslationResponse is one translated key.
type TranslationResponse struct {
	Language string `json:"language"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}
