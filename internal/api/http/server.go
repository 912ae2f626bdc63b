package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront/internal/api/http/handlers"
	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/observability"
	"github.com/spec-kit/storefront/internal/persistence"
	"github.com/spec-kit/storefront/internal/service"
)

// ServerDeps is everything the HTTP app is built from.
type ServerDeps struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Storefront *service.Storefront
	// Redis may be nil or disabled.
	Redis *persistence.Redis
}

// NewServer builds the fiber app with middlewares, handlers and routes.
func NewServer(deps ServerDeps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               deps.Config.App.Name,
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, deps.Metrics, deps.Config.App.RequestTimeout())

	sf := deps.Storefront
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(deps.Config.App.Name, deps.Config.App.Version, sf.System, deps.Redis),
		Auth:           handlers.NewAuthHandler(sf.Auth),
		Services:       handlers.NewServicesHandler(sf.Catalog),
		Orders:         handlers.NewOrdersHandler(sf.Orders),
		Tickets:        handlers.NewTicketsHandler(sf.Support),
		Users:          handlers.NewUsersHandler(sf.Users),
		Reports:        handlers.NewReportsHandler(sf.Reports, sf.System),
		Payments:       handlers.NewPaymentsHandler(sf.Payments),
		I18n:           handlers.NewI18nHandler(),
		AuthMiddleware: auth.NewAuthMiddleware(sf.Auth),
	})
	return app
}
