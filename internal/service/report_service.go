package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
)

// ReportService computes the admin dashboard figures.
type ReportService struct {
	users    repository.UserRepository
	services repository.ServiceRepository
	orders   repository.OrderRepository
	tickets  repository.SupportTicketRepository
	now      func() time.Time
}

// Overview is the admin reports page.
type Overview struct {
	GeneratedAt time.Time
	Users       UserStats
	Services    ServiceStats
	Orders      OrderStats
	Revenue     RevenueStats
	Categories  []CategoryStats
	Support     SupportStats
}

type UserStats struct {
	Total        int
	Active       int
	Suspended    int
	NewThisMonth int
}

type ServiceStats struct {
	Total          int
	Active         int
	TotalCustomers int
}

type OrderStats struct {
	Total          int
	ByStatus       map[domain.OrderStatus]int
	Active         int
	PendingPayment int
}

// RevenueStats: Monthly is the recurring revenue of active orders normalised
// to one month; Lifetime sums every non-cancelled order.
type RevenueStats struct {
	Monthly  decimal.Decimal
	Lifetime decimal.Decimal
}

type CategoryStats struct {
	Category           domain.ServiceCategory
	Services           int
	Customers          int
	MonthlyRevenue     decimal.Decimal
	RevenuePerCustomer decimal.Decimal
}

type SupportStats struct {
	Total         int
	Open          int
	HighPriority  int
	ResolvedToday int
}

// Overview reads every collection once and aggregates it.
func (s *ReportService) Overview(ctx context.Context) (*Overview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("user", 0, err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, storeError("service", 0, err)
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, storeError("order", 0, err)
	}
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, storeError("ticket", 0, err)
	}

	now := s.now()
	report := &Overview{
		GeneratedAt: now,
		Users:       userStats(users, now),
		Orders:      OrderStats{ByStatus: make(map[domain.OrderStatus]int, len(domain.OrderStatuses))},
		Revenue:     RevenueStats{Monthly: decimal.Zero, Lifetime: decimal.Zero},
		Support:     supportStats(tickets, now),
	}
	for _, status := range domain.OrderStatuses {
		report.Orders.ByStatus[status] = 0
	}

	categoryOf := make(map[int64]domain.ServiceCategory, len(services))
	perCategory := make(map[domain.ServiceCategory]*CategoryStats, len(domain.Categories))
	for _, category := range domain.Categories {
		perCategory[category] = &CategoryStats{
			Category:           category,
			MonthlyRevenue:     decimal.Zero,
			RevenuePerCustomer: decimal.Zero,
		}
	}
	for _, svc := range services {
		categoryOf[svc.ID] = svc.Category
		report.Services.Total++
		if svc.Status == domain.ServiceStatusActive {
			report.Services.Active++
		}
		if stats := perCategory[svc.Category]; stats != nil {
			stats.Services++
		}
	}

	customers := make(map[int64]struct{})
	categoryCustomers := make(map[domain.ServiceCategory]map[int64]struct{})
	for _, order := range orders {
		report.Orders.Total++
		report.Orders.ByStatus[order.Status]++
		switch order.Status {
		case domain.OrderStatusActive:
			report.Orders.Active++
		case domain.OrderStatusPending:
			report.Orders.PendingPayment++
		}
		if order.Status == domain.OrderStatusCancelled {
			continue
		}

		report.Revenue.Lifetime = report.Revenue.Lifetime.Add(order.Amount)
		customers[order.UserID] = struct{}{}

		category, known := categoryOf[order.ServiceID]
		if !known {
			continue
		}
		if categoryCustomers[category] == nil {
			categoryCustomers[category] = make(map[int64]struct{})
		}
		categoryCustomers[category][order.UserID] = struct{}{}

		if order.Status == domain.OrderStatusActive {
			monthly := domain.MonthlyAmount(order.Amount, order.BillingCycle)
			report.Revenue.Monthly = report.Revenue.Monthly.Add(monthly)
			if stats := perCategory[category]; stats != nil {
				stats.MonthlyRevenue = stats.MonthlyRevenue.Add(monthly)
			}
		}
	}
	report.Services.TotalCustomers = len(customers)

	for _, category := range domain.Categories {
		stats := perCategory[category]
		stats.Customers = len(categoryCustomers[category])
		if stats.Customers > 0 {
			stats.RevenuePerCustomer = stats.MonthlyRevenue.Div(decimal.NewFromInt(int64(stats.Customers))).Round(2)
		}
		report.Categories = append(report.Categories, *stats)
	}
	return report, nil
}

func userStats(users []domain.User, now time.Time) UserStats {
	var stats UserStats
	for _, user := range users {
		stats.Total++
		switch user.Status {
		case domain.UserStatusActive:
			stats.Active++
		case domain.UserStatusSuspended:
			stats.Suspended++
		}
		created := user.CreatedAt.UTC()
		if created.Year() == now.Year() && created.Month() == now.Month() {
			stats.NewThisMonth++
		}
	}
	return stats
}

func supportStats(tickets []domain.SupportTicket, now time.Time) SupportStats {
	var stats SupportStats
	today := now.Truncate(24 * time.Hour)
	for _, ticket := range tickets {
		stats.Total++
		unresolved := ticket.Status == domain.TicketStatusOpen || ticket.Status == domain.TicketStatusInProgress
		if unresolved {
			stats.Open++
			if ticket.Priority == domain.TicketPriorityHigh {
				stats.HighPriority++
			}
		}
		if ticket.Status == domain.TicketStatusResolved && !ticket.UpdatedAt.UTC().Before(today) {
			stats.ResolvedToday++
		}
	}
	return stats
}
