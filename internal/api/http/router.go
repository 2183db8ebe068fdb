package http

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/legalsuite/case-service/internal/api/http/handlers"
	"github.com/legalsuite/case-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health             *handlers.HealthHandler
	Users              *handlers.UsersHandler
	Lawyers            *handlers.LawyersHandler
	Lawsuits           *handlers.LawsuitsHandler
	Reports            *handlers.ReportsHandler
	AuthMiddleware     *auth.AuthMiddleware
	LoginRatePerMinute int
}

// RegisterRoutes wires HTTP routes. Everything under /api except operator
// registration sits behind the bearer token check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	loginRate := cfg.LoginRatePerMinute
	if loginRate <= 0 {
		loginRate = 30
	}
	app.Post("/login", RateLimitPerIP(rate.Limit(float64(loginRate)/60.0), loginRate), cfg.Users.Login)

	api := app.Group("/api")
	api.Post("/users", cfg.Users.Register)

	protected := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireRole())
	protected.Get("/users", cfg.Users.List)

	protected.Get("/lawyers", cfg.Lawyers.List)
	protected.Post("/lawyers", cfg.Lawyers.Create)
	protected.Get("/lawyers/:id", cfg.Lawyers.Get)

	protected.Get("/lawsuits", cfg.Lawsuits.List)
	protected.Post("/lawsuits", cfg.Lawsuits.Create)
	protected.Put("/lawsuits/:id/assign", cfg.Lawsuits.Assign)
	protected.Put("/lawsuits/:id/resolve", cfg.Lawsuits.Resolve)

	protected.Get("/reports/lawyers/:id/lawsuits", cfg.Reports.LawyerLawsuits)
}
