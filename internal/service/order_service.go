package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/validation"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// OrderService handles orders and the purchase flow.
type OrderService struct {
	orders   repository.OrderRepository
	services repository.ServiceRepository
	users    repository.UserRepository
	payments repository.PaymentRepository
	gateway  PaymentGateway
	events   publisher
	logger   *zap.Logger
	now      func() time.Time
}

// OrderDetails is an order joined with the names shown next to it. Names are
// empty when the referenced record no longer exists.
type OrderDetails struct {
	Order         domain.Order
	ServiceName   string
	CustomerName  string
	CustomerEmail string
}

// OrderFilter narrows GetAllOrders.
type OrderFilter struct {
	Status *domain.OrderStatus
	UserID *int64
}

// CreateOrderInput describes a new pending order. Amount and cycle default
// to the plan's own.
type CreateOrderInput struct {
	UserID       int64
	ServiceID    int64
	Amount       *decimal.Decimal
	BillingCycle string
}

// PurchaseInput is the checkout form.
type PurchaseInput struct {
	ServiceID int64
	Card      validation.Card
}

// PurchaseResult is a paid, active order.
type PurchaseResult struct {
	Order   domain.Order
	Receipt Receipt
}

// GetUserOrders lists one customer's orders, newest first.
func (s *OrderService) GetUserOrders(ctx context.Context, userID int64) ([]OrderDetails, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeError("order", 0, err)
	}
	return s.details(ctx, orders)
}

// GetAllOrders lists every order matching filter, newest first.
func (s *OrderService) GetAllOrders(ctx context.Context, filter OrderFilter) ([]OrderDetails, error) {
	var (
		orders []domain.Order
		err    error
	)
	if filter.UserID != nil {
		orders, err = s.orders.ListByUser(ctx, *filter.UserID)
	} else {
		orders, err = s.orders.List(ctx)
	}
	if err != nil {
		return nil, storeError("order", 0, err)
	}
	if filter.Status != nil {
		kept := orders[:0]
		for _, order := range orders {
			if order.Status == *filter.Status {
				kept = append(kept, order)
			}
		}
		orders = kept
	}
	return s.details(ctx, orders)
}

// CreateOrder records a pending order for an existing plan.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	svc, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, storeError("service", input.ServiceID, err)
	}

	amount := svc.Price
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, invalidFields("invalid order", map[string]any{"amount": "negative"})
		}
		amount = *input.Amount
	}
	cycle := svc.BillingCycle
	if input.BillingCycle != "" {
		parsed, ok := domain.ParseBillingCycle(input.BillingCycle)
		if !ok {
			return nil, invalidFields("invalid order", map[string]any{"billing_cycle": "invalid"})
		}
		cycle = parsed
	}
	if !cycle.Valid() {
		cycle = domain.BillingMonthly
	}

	now := s.now()
	order := &domain.Order{
		UserID:       input.UserID,
		ServiceID:    svc.ID,
		Status:       domain.OrderStatusPending,
		Amount:       amount,
		BillingCycle: cycle,
		ExpiresAt:    now.Add(cycle.Term()),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, storeError("order", 0, err)
	}

	s.events.publish(ctx, events.New(events.EventOrderCreated, "order", order.ID, order.UserID, now,
		events.OrderCreatedPayload{ServiceID: order.ServiceID, Amount: order.Amount, BillingCycle: order.BillingCycle}))
	return order, nil
}

// UpdateOrderStatus sets any valid status; there are no transition guards.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	parsed, ok := domain.ParseOrderStatus(status)
	if !ok {
		return nil, invalidFields("invalid order status", map[string]any{"status": "invalid"})
	}
	return s.setStatus(ctx, id, parsed)
}

// DeleteOrder removes an order.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	removed, err := s.orders.Delete(ctx, id)
	if err != nil {
		return storeError("order", id, err)
	}
	if !removed {
		return missing("order", id)
	}
	return nil
}

// Purchase validates the card, creates a pending order, charges it and
// settles the order as active or cancelled depending on the outcome.
func (s *OrderService) Purchase(ctx context.Context, userID int64, input PurchaseInput) (*PurchaseResult, error) {
	if err := validation.ValidateCard(input.Card, s.now()); err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, storeError("service", input.ServiceID, err)
	}
	if svc.Status != domain.ServiceStatusActive {
		return nil, invalidFields("service is not available for purchase", map[string]any{"service_id": "unavailable"})
	}

	order, err := s.CreateOrder(ctx, CreateOrderInput{UserID: userID, ServiceID: svc.ID})
	if err != nil {
		return nil, err
	}

	receipt, chargeErr := s.gateway.Charge(ctx, Charge{OrderID: order.ID, Amount: order.Amount, Card: input.Card})
	// the request context may already be gone; the outcome is recorded regardless
	settleCtx := context.WithoutCancel(ctx)
	attempt := &domain.Payment{
		OrderID:   order.ID,
		UserID:    userID,
		ServiceID: svc.ID,
		Amount:    order.Amount,
		CardLast4: cardLast4(input.Card.Number),
	}

	if chargeErr != nil {
		attempt.Status = domain.PaymentFailed
		attempt.FailureReason = apperrors.ToDomainError(chargeErr).Code
		var settleErrs []error
		if err := s.recordPayment(settleCtx, attempt); err != nil {
			settleErrs = append(settleErrs, err)
		}
		if _, err := s.setStatus(settleCtx, order.ID, domain.OrderStatusCancelled); err != nil {
			s.logger.Error("failed to cancel unpaid order", zap.Int64("order_id", order.ID), zap.Error(err))
			settleErrs = append(settleErrs, err)
		}
		if len(settleErrs) > 0 {
			return nil, errors.Join(append([]error{chargeErr}, settleErrs...)...)
		}
		return nil, chargeErr
	}

	attempt.Status = domain.PaymentSucceeded
	attempt.Reference = receipt.PaymentID
	attempt.Amount = receipt.Amount
	attempt.CardLast4 = receipt.CardLast4
	if err := s.recordPayment(settleCtx, attempt); err != nil {
		return nil, err
	}

	paid, err := s.setStatus(settleCtx, order.ID, domain.OrderStatusActive)
	if err != nil {
		s.logger.Error("payment captured but order not activated",
			zap.Int64("order_id", order.ID),
			zap.String("payment_id", receipt.PaymentID),
			zap.Error(err))
		return nil, err
	}

	s.events.publish(ctx, events.New(events.EventPaymentCaptured, "order", paid.ID, userID, receipt.CapturedAt,
		events.PaymentCapturedPayload{PaymentID: receipt.PaymentID, Amount: receipt.Amount, CardLast4: receipt.CardLast4}))
	return &PurchaseResult{Order: *paid, Receipt: *receipt}, nil
}

// recordPayment appends attempt to the payment ledger.
func (s *OrderService) recordPayment(ctx context.Context, attempt *domain.Payment) error {
	if err := s.payments.Create(ctx, attempt); err != nil {
		s.logger.Error("failed to record payment attempt",
			zap.Int64("order_id", attempt.OrderID),
			zap.String("status", string(attempt.Status)),
			zap.String("payment_id", attempt.Reference),
			zap.Error(err))
		return storeError("payment", 0, err)
	}
	return nil
}

func (s *OrderService) setStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	current, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("order", id, err)
	}
	updated, err := s.orders.Update(ctx, id, repository.OrderUpdate{Status: &status})
	if err != nil {
		return nil, storeError("order", id, err)
	}
	if current.Status != updated.Status {
		s.events.publish(ctx, events.New(events.EventOrderStatusChanged, "order", id, updated.UserID, s.now(),
			events.OrderStatusChangedPayload{OldStatus: current.Status, NewStatus: updated.Status}))
	}
	return updated, nil
}

func (s *OrderService) details(ctx context.Context, orders []domain.Order) ([]OrderDetails, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, storeError("service", 0, err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storeError("user", 0, err)
	}
	serviceNames := make(map[int64]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.Name
	}
	customers := make(map[int64]domain.User, len(users))
	for _, user := range users {
		customers[user.ID] = user
	}

	out := make([]OrderDetails, 0, len(orders))
	for _, order := range orders {
		customer := customers[order.UserID]
		out = append(out, OrderDetails{
			Order:         order,
			ServiceName:   serviceNames[order.ServiceID],
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
		})
	}
	return out, nil
}
