// Package memory is an in-process stand-in for the relational store, used for
// demos and tests. Each entity lives in its own ordered collection.
package memory

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
)

// Options configures the store.
type Options struct {
	// Latency delays every operation to mimic a remote database.
	Latency time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Seed rows are loaded in order, oldest first.
	Seed Seed
}

// Seed holds fixture rows. Zero ids and timestamps are filled in on load.
type Seed struct {
	Users    []domain.User
	Services []domain.Service
	Orders   []domain.Order
	Tickets  []domain.SupportTicket
	Payments []domain.Payment
}

// Store owns one collection per entity.
type Store struct {
	latency  time.Duration
	now      func() time.Time
	users    *table[domain.User]
	services *table[domain.Service]
	orders   *table[domain.Order]
	tickets  *table[domain.SupportTicket]
	payments *table[domain.Payment]
}

// NewStore builds a store and loads opts.Seed.
func NewStore(opts Options) *Store {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s := &Store{
		latency: opts.Latency,
		now:     func() time.Time { return clock().UTC() },
		users: newTable(
			func(u *domain.User) int64 { return u.ID },
			func(u *domain.User, id int64) { u.ID = id },
			nil,
		),
		services: newTable(
			func(svc *domain.Service) int64 { return svc.ID },
			func(svc *domain.Service, id int64) { svc.ID = id },
			cloneService,
		),
		orders: newTable(
			func(o *domain.Order) int64 { return o.ID },
			func(o *domain.Order, id int64) { o.ID = id },
			nil,
		),
		tickets: newTable(
			func(t *domain.SupportTicket) int64 { return t.ID },
			func(t *domain.SupportTicket, id int64) { t.ID = id },
			nil,
		),
		payments: newTable(
			func(p *domain.Payment) int64 { return p.ID },
			func(p *domain.Payment, id int64) { p.ID = id },
			nil,
		),
	}

	now := s.now()
	s.users.load(opts.Seed.Users, func(u *domain.User) { fillStamps(&u.CreatedAt, &u.UpdatedAt, now) })
	s.services.load(opts.Seed.Services, func(svc *domain.Service) { fillStamps(&svc.CreatedAt, &svc.UpdatedAt, now) })
	s.orders.load(opts.Seed.Orders, func(o *domain.Order) { fillStamps(&o.CreatedAt, &o.UpdatedAt, now) })
	s.tickets.load(opts.Seed.Tickets, func(t *domain.SupportTicket) { fillStamps(&t.CreatedAt, &t.UpdatedAt, now) })
	s.payments.load(opts.Seed.Payments, func(p *domain.Payment) {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
	})
	return s
}

// Repositories exposes the store through the repository contracts.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Users:    &userRepository{store: s},
		Services: &serviceRepository{store: s},
		Orders:   &orderRepository{store: s},
		Tickets:  &ticketRepository{store: s},
		Payments: &paymentRepository{store: s},
		Health:   s,
	}
}

// Backend names the store kind.
func (s *Store) Backend() string { return "memory" }

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return s.wait(ctx)
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// touch returns the next updated_at for a row last touched at prev.
// updated_at strictly increases.
func (s *Store) touch(prev time.Time) time.Time {
	ts := s.now()
	if !ts.After(prev) {
		ts = prev.Add(time.Microsecond)
	}
	return ts
}

func fillStamps(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}

func cloneService(svc domain.Service) domain.Service {
	if svc.Features != nil {
		svc.Features = append([]string(nil), svc.Features...)
	}
	return svc
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
