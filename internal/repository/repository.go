package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront/internal/domain"
)

var (
	// ErrNotFound marks an absent record. It is not a store failure.
	ErrNotFound = errors.New("record not found")
	// ErrConflict marks a write rejected by a uniqueness rule.
	ErrConflict = errors.New("record conflicts with an existing one")
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, id int64, upd UserUpdate) (*domain.User, error)
	// ToggleStatus flips active and suspended in one write.
	ToggleStatus(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ServiceRepository defines persistence access for catalogue plans.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, id int64, upd ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// OrderRepository defines persistence access for orders.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, id int64, upd OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SupportTicketRepository defines persistence access for support tickets.
type SupportTicketRepository interface {
	List(ctx context.Context) ([]domain.SupportTicket, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error)
	GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error)
	Create(ctx context.Context, ticket *domain.SupportTicket) error
	Update(ctx context.Context, id int64, upd TicketUpdate) (*domain.SupportTicket, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PaymentRepository is the append-only ledger of charge attempts.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Backend() string
	Ping(ctx context.Context) error
}

// Repositories bundles every repository behind one backend.
type Repositories struct {
	Users    UserRepository
	Services ServiceRepository
	Orders   OrderRepository
	Tickets  SupportTicketRepository
	Payments PaymentRepository
	Health   HealthChecker
}

// UserUpdate lists the mutable user fields. Nil fields are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
	Language     *string
	Phone        *string
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Country      *string
	Status       *domain.UserStatus
}

// Apply merges the set fields into user.
func (u UserUpdate) Apply(user *domain.User) {
	setString(&user.Name, u.Name)
	setString(&user.Email, u.Email)
	setString(&user.PasswordHash, u.PasswordHash)
	if u.Role != nil {
		user.Role = *u.Role
	}
	setString(&user.Language, u.Language)
	setString(&user.Phone, u.Phone)
	setString(&user.Address, u.Address)
	setString(&user.City, u.City)
	setString(&user.State, u.State)
	setString(&user.ZipCode, u.ZipCode)
	setString(&user.Country, u.Country)
	if u.Status != nil {
		user.Status = *u.Status
	}
}

// ServiceUpdate lists the mutable service fields.
type ServiceUpdate struct {
	Name         *string
	Description  *string
	Category     *domain.ServiceCategory
	Price        *decimal.Decimal
	BillingCycle *domain.BillingCycle
	Features     *[]string
	Status       *domain.ServiceStatus
}

// Apply merges the set fields into svc.
func (u ServiceUpdate) Apply(svc *domain.Service) {
	setString(&svc.Name, u.Name)
	setString(&svc.Description, u.Description)
	if u.Category != nil {
		svc.Category = *u.Category
	}
	if u.Price != nil {
		svc.Price = *u.Price
	}
	if u.BillingCycle != nil {
		svc.BillingCycle = *u.BillingCycle
	}
	if u.Features != nil {
		svc.Features = append([]string{}, (*u.Features)...)
	}
	if u.Status != nil {
		svc.Status = *u.Status
	}
}

// OrderUpdate lists the mutable order fields.
type OrderUpdate struct {
	Status    *domain.OrderStatus
	Amount    *decimal.Decimal
	ExpiresAt *time.Time
}

// Apply merges the set fields into order.
func (u OrderUpdate) Apply(order *domain.Order) {
	if u.Status != nil {
		order.Status = *u.Status
	}
	if u.Amount != nil {
		order.Amount = *u.Amount
	}
	if u.ExpiresAt != nil {
		order.ExpiresAt = *u.ExpiresAt
	}
}

// TicketUpdate lists the mutable ticket fields.
type TicketUpdate struct {
	Subject  *string
	Message  *string
	Priority *domain.TicketPriority
	Status   *domain.TicketStatus
	Category *string
}

// Apply merges the set fields into ticket.
func (u TicketUpdate) Apply(ticket *domain.SupportTicket) {
	setString(&ticket.Subject, u.Subject)
	setString(&ticket.Message, u.Message)
	if u.Priority != nil {
		ticket.Priority = *u.Priority
	}
	if u.Status != nil {
		ticket.Status = *u.Status
	}
	setString(&ticket.Category, u.Category)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
