package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/admitly/portal-service/pkg/errorutil"
)

// RequireIdentity rejects anonymous callers.
func RequireIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return errorutil.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireConfirmedEmail is the access gate in front of the portal: a signed-in
// identity without a confirmed email is sent to the verification flow.
// Anonymous callers pass through so later handlers can render their own state.
func RequireConfirmedEmail(verifyPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok || identity.EmailConfirmed() {
			return c.Next()
		}
		return errorutil.NewForbidden("EMAIL_UNCONFIRMED", "email address not confirmed", map[string]any{
			"redirect": verifyPath,
		})
	}
}
