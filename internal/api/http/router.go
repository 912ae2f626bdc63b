package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/http/handlers"
	"github.com/spec-kit/storefront/internal/auth"
	apperrors "github.com/spec-kit/storefront/pkg/util/errorutil"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Services       *handlers.ServicesHandler
	Orders         *handlers.OrdersHandler
	Tickets        *handlers.TicketsHandler
	Users          *handlers.UsersHandler
	Reports        *handlers.ReportsHandler
	Payments       *handlers.PaymentsHandler
	I18n           *handlers.I18nHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/i18n", cfg.I18n.Negotiate)
	api.Get("/i18n/:lang", cfg.I18n.Table)
	api.Get("/i18n/:lang/:key", cfg.I18n.Translate)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Get("/services", cfg.Services.ListPublic)
	api.Get("/services/:id", cfg.Services.GetPublic)

	requireUser := []fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireRole()}

	orders := api.Group("/orders", requireUser...)
	orders.Get("", cfg.Orders.ListMine)
	orders.Post("", cfg.Orders.Create)
	orders.Post("/purchase", cfg.Orders.Purchase)

	tickets := api.Group("/tickets", requireUser...)
	tickets.Get("", cfg.Tickets.ListMine)
	tickets.Post("", cfg.Tickets.Create)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/users", cfg.Users.List)
	admin.Post("/users", cfg.Users.Create)
	admin.Get("/users/:id", cfg.Users.Get)
	admin.Patch("/users/:id", cfg.Users.Update)
	admin.Delete("/users/:id", cfg.Users.Delete)
	admin.Post("/users/:id/toggle-status", cfg.Users.ToggleStatus)

	admin.Get("/services", cfg.Services.ListAdmin)
	admin.Post("/services", cfg.Services.Create)
	admin.Patch("/services/:id", cfg.Services.Update)
	admin.Delete("/services/:id", cfg.Services.Delete)

	admin.Get("/orders", cfg.Orders.ListAll)
	admin.Patch("/orders/:id", cfg.Orders.UpdateStatus)
	admin.Delete("/orders/:id", cfg.Orders.Delete)

	admin.Get("/tickets", cfg.Tickets.ListAll)
	admin.Patch("/tickets/:id", cfg.Tickets.Update)
	admin.Delete("/tickets/:id", cfg.Tickets.Delete)

	admin.Get("/payments", cfg.Payments.Overview)
	admin.Get("/reports", cfg.Reports.Overview)
	admin.Get("/system/database", cfg.Reports.Database)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("route", map[string]any{"path": c.Path()})
	})
}
