package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/admitly/portal-service/internal/api/dto"
	"github.com/admitly/portal-service/internal/auth"
	"github.com/admitly/portal-service/internal/navigation"
	"github.com/admitly/portal-service/internal/service"
	"github.com/admitly/portal-service/pkg/errorutil"
)

// SessionHeader carries the client's application session id.
const SessionHeader = "X-Portal-Session"

const sessionKeyLocal = "navigation_session"

// NavigationCommands is the navigation service surface used by the handler.
type NavigationCommands interface {
	Visit(ctx context.Context, key navigation.SessionKey, loc navigation.Location, title string) (navigation.Entry, []navigation.Entry)
	Tracker(key navigation.SessionKey) (*navigation.Tracker, bool)
	Navigate(ctx context.Context, key navigation.SessionKey, tracker *navigation.Tracker, id string, nav navigation.Navigator) (navigation.Entry, error)
	Clear(ctx context.Context, key navigation.SessionKey, tracker *navigation.Tracker) []navigation.Entry
	EndSession(key navigation.SessionKey) bool
}

// NavigationHandler exposes the per-session history tracker.
type NavigationHandler struct {
	svc NavigationCommands
}

// NewNavigationHandler creates the handler.
func NewNavigationHandler(svc NavigationCommands) *NavigationHandler {
	return &NavigationHandler{svc: svc}
}

// Session resolves the session key from the identity and SessionHeader.
// It must run after auth.RequireIdentity.
func (h *NavigationHandler) Session(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return errorutil.NewUnauthorized("authentication required")
	}
	sessionID := strings.TrimSpace(c.Get(SessionHeader))
	if sessionID == "" {
		return errorutil.NewValidationError("missing session header", map[string]any{
			"header": SessionHeader,
		})
	}
	c.Locals(sessionKeyLocal, navigation.SessionKey{IdentityID: identity.ID, SessionID: sessionID})
	return c.Next()
}

// ProvideTracker installs the session's tracker into the request context.
// Sessions that never reported a visit have no tracker.
func (h *NavigationHandler) ProvideTracker(c *fiber.Ctx) error {
	tracker, ok := h.svc.Tracker(sessionKey(c))
	if !ok {
		return errorutil.NewNotFound("navigation session", nil)
	}
	c.SetUserContext(navigation.WithTracker(c.UserContext(), tracker))
	return c.Next()
}

// Visit records a location change.
func (h *NavigationHandler) Visit(c *fiber.Ctx) error {
	var req dto.VisitRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	entry, history := h.svc.Visit(c.UserContext(), sessionKey(c), req.Location(), strings.TrimSpace(req.Title))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.VisitResponse{
		Entry:           entry,
		HistoryResponse: dto.NewHistoryResponse(history),
	}})
}

// History returns the session's history.
func (h *NavigationHandler) History(c *fiber.Ctx) error {
	tracker := navigation.FromContext(c.UserContext())
	return c.JSON(fiber.Map{"data": dto.NewHistoryResponse(tracker.Entries())})
}

// Navigate returns the routing instruction for a recorded entry. The history
// itself changes only once the client reports the resulting visit.
func (h *NavigationHandler) Navigate(c *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid request body", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	tracker := navigation.FromContext(c.UserContext())
	pending := &pendingNavigation{}
	entry, err := h.svc.Navigate(c.UserContext(), sessionKey(c), tracker, req.ID, pending)
	if errors.Is(err, service.ErrUnknownEntry) {
		return errorutil.NewNotFound("history entry", map[string]any{"id": req.ID})
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.NavigateResponse{
		Navigate: pending.PendingNavigation,
		Entry:    entry,
	}})
}

// Clear collapses the history to the current entry.
func (h *NavigationHandler) Clear(c *fiber.Ctx) error {
	tracker := navigation.FromContext(c.UserContext())
	history := h.svc.Clear(c.UserContext(), sessionKey(c), tracker)
	return c.JSON(fiber.Map{"data": dto.NewHistoryResponse(history)})
}

// EndSession discards the session's history.
func (h *NavigationHandler) EndSession(c *fiber.Ctx) error {
	if !h.svc.EndSession(sessionKey(c)) {
		return errorutil.NewNotFound("navigation session", nil)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sessionKey(c *fiber.Ctx) navigation.SessionKey {
	key, _ := c.Locals(sessionKeyLocal).(navigation.SessionKey)
	return key
}

// pendingNavigation captures the navigation request so it can be returned
// to the client router.
type pendingNavigation struct {
	dto.PendingNavigation
}

func (p *pendingNavigation) Navigate(to string, state json.RawMessage, replace bool) error {
	p.To = to
	p.State = state
	p.Replace = replace
	return nil
}
