package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/ratelimit"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/session"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// Dependencies bundles everything the storefront services need.
type Dependencies struct {
	Repos      repository.Repositories
	Sessions   session.Store
	Limiter    ratelimit.Limiter
	Gateway    PaymentGateway
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Storefront is the single entry point the transport layer talks to.
type Storefront struct {
	Auth          *AuthService
	Catalog       *CatalogService
	Orders        *OrderService
	Support       *SupportService
	Users         *UserService
	Reports       *ReportService
	Payments      *PaymentService
	System        *SystemService
	Notifications *NotificationService
}

// NewStorefront wires every service over one set of repositories.
func NewStorefront(cfg *config.Config, deps Dependencies) *Storefront {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	clock := deps.Clock
	now := func() time.Time { return clock().UTC() }
	if deps.Sessions == nil {
		deps.Sessions = session.NewMemoryStore(clock)
	}
	if deps.Limiter == nil {
		deps.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow(), clock)
	}
	if deps.Gateway == nil {
		deps.Gateway = NewSimulatedGateway(cfg.Payment.ProcessingDelay(), clock)
	}
	pub := publisher{dispatcher: deps.Dispatcher, logger: deps.Logger}

	return &Storefront{
		Auth: &AuthService{
			users:      deps.Repos.Users,
			tokens:     auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()).WithClock(clock),
			sessions:   deps.Sessions,
			limiter:    deps.Limiter,
			events:     pub,
			bcryptCost: cfg.Auth.BcryptCost,
			now:        now,
		},
		Catalog: &CatalogService{
			services: deps.Repos.Services,
			orders:   deps.Repos.Orders,
		},
		Orders: &OrderService{
			orders:   deps.Repos.Orders,
			services: deps.Repos.Services,
			users:    deps.Repos.Users,
			payments: deps.Repos.Payments,
			gateway:  deps.Gateway,
			events:   pub,
			logger:   deps.Logger,
			now:      now,
		},
		Support: &SupportService{
			tickets: deps.Repos.Tickets,
			events:  pub,
			now:     now,
		},
		Users: &UserService{
			users:      deps.Repos.Users,
			orders:     deps.Repos.Orders,
			bcryptCost: cfg.Auth.BcryptCost,
		},
		Reports: &ReportService{
			users:    deps.Repos.Users,
			services: deps.Repos.Services,
			orders:   deps.Repos.Orders,
			tickets:  deps.Repos.Tickets,
			now:      now,
		},
		Payments: &PaymentService{
			payments: deps.Repos.Payments,
			users:    deps.Repos.Users,
			services: deps.Repos.Services,
		},
		System: &SystemService{
			health: deps.Repos.Health,
		},
		Notifications: NewNotificationService(deps.Dispatcher, deps.Logger, cfg.Notification),
	}
}

// storeError maps repository errors onto domain errors. Anything that is not
// a known sentinel is a store failure and is reported as such.
func storeError(resource string, id int64, err error) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	case errors.Is(err, repository.ErrConflict):
		return apperrors.NewConflict(fmt.Sprintf("%s conflicts with an existing record", resource), nil)
	default:
		return apperrors.NewPersistenceFailure(err)
	}
}

func missing(resource string, id int64) error {
	return apperrors.NewNotFound(resource, map[string]any{"id": id})
}

type publisher struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// publish delivers the event; handler failures are logged and never undo the
// write that produced the event.
func (p publisher) publish(ctx context.Context, event events.Event) {
	if p.dispatcher == nil {
		return
	}
	if err := p.dispatcher.Publish(ctx, event); err != nil {
		p.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("resource_id", event.ResourceID),
			zap.Error(err))
	}
}
