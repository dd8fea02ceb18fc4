package http

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/api/http/handlers"
	"github.com/admitly/portal-service/internal/i18n"
	"github.com/admitly/portal-service/internal/observability"
	"github.com/admitly/portal-service/pkg/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, bundle *i18n.Bundle, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	if bundle != nil {
		app.Use(handlers.LanguageMiddleware(bundle))
	}
	app.Use(errorHandlingMiddleware(logger, metrics, bundle))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, bundle *i18n.Bundle) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = errorutil.NewInternalError(nil)
			}
			if err != nil {
				domainErr := errorutil.ToDomainError(err)
				metrics.RecordError(c.Route().Path, c.Method(), domainErr.Code)
				body := fiber.Map{
					"code":    domainErr.Code,
					"message": localizedMessage(bundle, handlers.Language(c), domainErr),
				}
				if len(domainErr.Details) > 0 {
					body["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
				}
				err = c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": body})
			}
		}()
		return c.Next()
	}
}

// localizedMessage prefers the catalog entry "errors.<code>" over the
// error's own message.
func localizedMessage(bundle *i18n.Bundle, lang string, err *errorutil.DomainError) string {
	if bundle == nil {
		return err.Message
	}
	key := "errors." + strings.ToLower(err.Code)
	if msg := bundle.T(lang, key); msg != key {
		return msg
	}
	return err.Message
}
