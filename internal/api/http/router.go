package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/admitly/portal-service/internal/api/http/handlers"
	"github.com/admitly/portal-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Dashboard       *handlers.DashboardHandler
	Navigation      *handlers.NavigationHandler
	AuthMiddleware  *auth.AuthMiddleware
	VerifyEmailPath string
	// Gatherer backs /metrics. The route is skipped when nil.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	portal := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireConfirmedEmail(cfg.VerifyEmailPath))
	portal.Get("/dashboard", cfg.Dashboard.Get)

	nav := portal.Group("/navigation", auth.RequireIdentity(), cfg.Navigation.Session)
	nav.Post("/visits", cfg.Navigation.Visit)
	nav.Delete("/session", cfg.Navigation.EndSession)

	nav.Get("/history", cfg.Navigation.ProvideTracker, cfg.Navigation.History)
	nav.Post("/navigate", cfg.Navigation.ProvideTracker, cfg.Navigation.Navigate)
	nav.Delete("/history", cfg.Navigation.ProvideTracker, cfg.Navigation.Clear)
}
