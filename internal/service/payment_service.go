package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
)

// RecentPaymentsLimit caps the transaction list of the payments page.
const RecentPaymentsLimit = 20

// PaymentService reads the payment ledger for the admin payments page.
type PaymentService struct {
	payments repository.PaymentRepository
	users    repository.UserRepository
	services repository.ServiceRepository
}

// PaymentDetails is a ledger row with the names shown next to it. Names are
// empty when the referenced record no longer exists.
type PaymentDetails struct {
	Payment       domain.Payment
	CustomerName  string
	CustomerEmail string
	ServiceName   string
}

// PaymentOverview is the admin payments page. TotalRevenue sums successful
// charges only.
type PaymentOverview struct {
	TotalRevenue decimal.Decimal
	Successful   int
	Failed       int
	Recent       []PaymentDetails
}

// Overview totals the ledger and returns the latest attempts, newest first.
func (s *PaymentService) Overview(ctx context.Context) (*PaymentOverview, error) {
	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, storeError("payment", 0, err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("user", 0, err)
	}
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, storeError("service", 0, err)
	}
	customers := make(map[int64]domain.User, len(users))
	for _, user := range users {
		customers[user.ID] = user
	}
	serviceNames := make(map[int64]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.Name
	}

	overview := &PaymentOverview{TotalRevenue: decimal.Zero, Recent: make([]PaymentDetails, 0, RecentPaymentsLimit)}
	for _, payment := range payments {
		switch payment.Status {
		case domain.PaymentSucceeded:
			overview.Successful++
			overview.TotalRevenue = overview.TotalRevenue.Add(payment.Amount)
		case domain.PaymentFailed:
			overview.Failed++
		}
		if len(overview.Recent) < RecentPaymentsLimit {
			customer := customers[payment.UserID]
			overview.Recent = append(overview.Recent, PaymentDetails{
				Payment:       payment,
				CustomerName:  customer.Name,
				CustomerEmail: customer.Email,
				ServiceName:   serviceNames[payment.ServiceID],
			})
		}
	}
	return overview, nil
}
