package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/admitly/portal-service/internal/api/dto"
	"github.com/admitly/portal-service/internal/auth"
	"github.com/admitly/portal-service/internal/dashboard"
	"github.com/admitly/portal-service/internal/domain"
	"github.com/admitly/portal-service/internal/i18n"
)

// DashboardResolver resolves the view for an identity.
type DashboardResolver interface {
	Resolve(ctx context.Context, identity *domain.Identity) (dashboard.View, error)
}

// DashboardHandler serves the dashboard resolution endpoint.
type DashboardHandler struct {
	resolver DashboardResolver
	bundle   *i18n.Bundle
}

// NewDashboardHandler creates the handler.
func NewDashboardHandler(resolver DashboardResolver, bundle *i18n.Bundle) *DashboardHandler {
	return &DashboardHandler{resolver: resolver, bundle: bundle}
}

// Get resolves the caller's dashboard. Anonymous callers get the
// unauthenticated view rather than an error.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	identity, _ := auth.IdentityFromContext(c)

	view, err := h.resolver.Resolve(c.UserContext(), identity)
	if err != nil {
		return err
	}

	lang := Language(c)
	message := h.bundle.T(lang, view.MessageKey, view.Args...)
	return c.JSON(fiber.Map{"data": dto.NewDashboardViewResponse(view, message, lang)})
}
