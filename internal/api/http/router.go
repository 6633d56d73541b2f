package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/goldenpays/consultancy-api/internal/api/http/handlers"
	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/domain"
	"github.com/goldenpays/consultancy-api/internal/observability"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Contact        *handlers.ContactHandler
	Auth           *handlers.AuthHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Every /api/admin route passes the auth
// middleware before its handler touches a store.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))

	api := app.Group("/api")

	contact := api.Group("/contact")
	contact.Post("/submit", cfg.Contact.Submit)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/verify", cfg.AuthMiddleware.Handle, cfg.Auth.Verify)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/inquiries", cfg.Admin.ListInquiries)
	admin.Get("/inquiries/:id", cfg.Admin.GetInquiry)
	admin.Patch("/inquiries/:id", cfg.Admin.UpdateInquiry)
	admin.Delete("/inquiries/:id", cfg.Admin.DeleteInquiry)
	admin.Get("/clients", cfg.Admin.ListClients)
	admin.Post("/clients", cfg.Admin.CreateClient)
	admin.Get("/projects", cfg.Admin.ListProjects)
	admin.Post("/projects", cfg.Admin.CreateProject)
	admin.Get("/stats", cfg.Admin.Stats)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NewRouteNotFound(c.Path())
	})
}
