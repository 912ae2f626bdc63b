package memory

import (
	"context"
	"fmt"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.users.list(nil), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	user, ok := r.store.users.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	user, ok := r.store.users.find(func(u *domain.User) bool { return sameEmail(u.Email, email) })
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return r.store.users.insert(user,
		func(existing []domain.User) error { return checkEmail(existing, user.Email, 0) },
		func(u *domain.User) {
			u.CreatedAt = r.store.now()
			u.UpdatedAt = u.CreatedAt
		})
}

func (r *userRepository) Update(ctx context.Context, id int64, upd repository.UserUpdate) (*domain.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	user, found, err := r.store.users.update(id, func(u *domain.User, all []domain.User) error {
		if upd.Email != nil {
			if err := checkEmail(all, *upd.Email, id); err != nil {
				return err
			}
		}
		upd.Apply(u)
		u.UpdatedAt = r.store.touch(u.UpdatedAt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) ToggleStatus(ctx context.Context, id int64) (*domain.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	user, found, _ := r.store.users.update(id, func(u *domain.User, _ []domain.User) error {
		if u.Status == domain.UserStatusSuspended {
			u.Status = domain.UserStatusActive
		} else {
			u.Status = domain.UserStatusSuspended
		}
		u.UpdatedAt = r.store.touch(u.UpdatedAt)
		return nil
	})
	if !found {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	return r.store.users.remove(id), nil
}

func checkEmail(existing []domain.User, email string, selfID int64) error {
	for i := range existing {
		if existing[i].ID != selfID && sameEmail(existing[i].Email, email) {
			return fmt.Errorf("%w: email %s", repository.ErrConflict, email)
		}
	}
	return nil
}

type serviceRepository struct {
	store *Store
}

func (r *serviceRepository) List(ctx context.Context) ([]domain.Service, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.services.list(nil), nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	svc, ok := r.store.services.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return r.store.services.insert(svc, nil, func(s *domain.Service) {
		s.CreatedAt = r.store.now()
		s.UpdatedAt = s.CreatedAt
	})
}

func (r *serviceRepository) Update(ctx context.Context, id int64, upd repository.ServiceUpdate) (*domain.Service, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	svc, found, _ := r.store.services.update(id, func(s *domain.Service, _ []domain.Service) error {
		upd.Apply(s)
		s.UpdatedAt = r.store.touch(s.UpdatedAt)
		return nil
	})
	if !found {
		return nil, repository.ErrNotFound
	}
	return &svc, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	return r.store.services.remove(id), nil
}

type orderRepository struct {
	store *Store
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.orders.list(nil), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.orders.list(func(o *domain.Order) bool { return o.UserID == userID }), nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	order, ok := r.store.orders.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return r.store.orders.insert(order, nil, func(o *domain.Order) {
		o.CreatedAt = r.store.now()
		o.UpdatedAt = o.CreatedAt
	})
}

func (r *orderRepository) Update(ctx context.Context, id int64, upd repository.OrderUpdate) (*domain.Order, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	order, found, _ := r.store.orders.update(id, func(o *domain.Order, _ []domain.Order) error {
		upd.Apply(o)
		o.UpdatedAt = r.store.touch(o.UpdatedAt)
		return nil
	})
	if !found {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	return r.store.orders.remove(id), nil
}

type ticketRepository struct {
	store *Store
}

func (r *ticketRepository) List(ctx context.Context) ([]domain.SupportTicket, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.tickets.list(nil), nil
}

func (r *ticketRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SupportTicket, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.tickets.list(func(t *domain.SupportTicket) bool { return t.UserID == userID }), nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	ticket, ok := r.store.tickets.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return r.store.tickets.insert(ticket, nil, func(t *domain.SupportTicket) {
		t.CreatedAt = r.store.now()
		t.UpdatedAt = t.CreatedAt
	})
}

func (r *ticketRepository) Update(ctx context.Context, id int64, upd repository.TicketUpdate) (*domain.SupportTicket, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	ticket, found, _ := r.store.tickets.update(id, func(t *domain.SupportTicket, _ []domain.SupportTicket) error {
		upd.Apply(t)
		t.UpdatedAt = r.store.touch(t.UpdatedAt)
		return nil
	})
	if !found {
		return nil, repository.ErrNotFound
	}
	return &ticket, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	return r.store.tickets.remove(id), nil
}

type paymentRepository struct {
	store *Store
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	return r.store.payments.list(nil), nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	return r.store.payments.insert(payment, nil, func(p *domain.Payment) {
		p.CreatedAt = r.store.now()
	})
}
