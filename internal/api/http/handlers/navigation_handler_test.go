package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitly/portal-service/internal/auth"
	"github.com/admitly/portal-service/internal/navigation"
	"github.com/admitly/portal-service/internal/service"
	"github.com/admitly/portal-service/pkg/errorutil"
)

const identityID = "7b0c6f1e-2a44-4c4b-9a57-3f4a1c0e9d21"

type navFixture struct {
	app   *fiber.App
	svc   *service.NavigationService
	token string
}

func newNavFixture(t *testing.T) *navFixture {
	t.Helper()
	tokens := auth.NewTokenManager("handler-secret", "", 5)
	token, _, err := tokens.GenerateToken(identityID, "agent@example.com", nil)
	require.NoError(t, err)

	svc := service.NewNavigationService(service.NavigationDeps{
		Registry: navigation.NewRegistry(navigation.RegistryConfig{MaxSessions: 4, SessionTTL: time.Hour}),
	})
	h := NewNavigationHandler(svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := errorutil.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{"code": de.Code}})
		},
	})
	nav := app.Group("/navigation", auth.NewAuthMiddleware(tokens).Handle, auth.RequireIdentity(), h.Session)
	nav.Get("/history", h.ProvideTracker, h.History)
	nav.Post("/navigate", h.ProvideTracker, h.Navigate)

	return &navFixture{app: app, svc: svc, token: token}
}

func (f *navFixture) request(t *testing.T, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+f.token)
	req.Header.Set(SessionHeader, "tab-1")

	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestNavigateReturnsPushInstructionWithState(t *testing.T) {
	f := newNavFixture(t)
	key := navigation.SessionKey{IdentityID: identityID, SessionID: "tab-1"}
	ctx := context.Background()

	f.svc.Visit(ctx, key, navigation.Location{
		Pathname: "/dashboard/applications",
		Search:   "?status=open",
		State:    json.RawMessage(`{"scroll":120,"filters":["open"]}`),
	}, "")
	f.svc.Visit(ctx, key, navigation.Location{Pathname: "/dashboard/tasks"}, "")

	resp, body := f.request(t, http.MethodPost, "/navigation/navigate", `{"id":"/dashboard/applications?status=open"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]any)
	instruction := data["navigate"].(map[string]any)
	assert.Equal(t, "/dashboard/applications?status=open", instruction["to"])
	assert.Equal(t, false, instruction["replace"])
	assert.Equal(t, map[string]any{"scroll": float64(120), "filters": []any{"open"}}, instruction["state"])
	assert.Equal(t, "Dashboard / Applications", data["entry"].(map[string]any)["label"])

	// The history only changes once the client reports the visit.
	tracker, ok := f.svc.Tracker(key)
	require.True(t, ok)
	assert.Equal(t, 2, tracker.Len())
}

func TestNavigateOmitsEmptyState(t *testing.T) {
	f := newNavFixture(t)
	key := navigation.SessionKey{IdentityID: identityID, SessionID: "tab-1"}
	f.svc.Visit(context.Background(), key, navigation.Location{Pathname: "/"}, "")

	resp, body := f.request(t, http.MethodPost, "/navigation/navigate", `{"id":"/"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	instruction := body["data"].(map[string]any)["navigate"].(map[string]any)
	assert.Equal(t, "/", instruction["to"])
	assert.NotContains(t, instruction, "state")
}

func TestProvideTrackerRequiresVisit(t *testing.T) {
	f := newNavFixture(t)

	resp, body := f.request(t, http.MethodGet, "/navigation/history", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["error"].(map[string]any)["code"])

	resp, _ = f.request(t, http.MethodPost, "/navigation/navigate", `{"id":"/"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPendingNavigationCapturesRouterCall(t *testing.T) {
	tracker := navigation.NewTracker(navigation.Location{
		Pathname: "/dashboard/search",
		Hash:     "#results",
		State:    json.RawMessage(`{"q":"law"}`),
	}, "")
	entry, ok := tracker.Current()
	require.True(t, ok)

	pending := &pendingNavigation{}
	require.NoError(t, tracker.NavigateTo(pending, entry))
	assert.Equal(t, "/dashboard/search#results", pending.To)
	assert.JSONEq(t, `{"q":"law"}`, string(pending.State))
	assert.False(t, pending.Replace)
}
