package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/admitly/portal-service/internal/i18n"
)

const languageKey = "lang"

// LanguageMiddleware negotiates the response language from the lang query
// parameter, the lang cookie and Accept-Language, in that order.
func LanguageMiddleware(bundle *i18n.Bundle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		explicit := c.Query(i18n.LangCookieName)
		if explicit == "" {
			explicit = c.Cookies(i18n.LangCookieName)
		}
		lang := bundle.Negotiate(explicit, c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(languageKey, lang)
		c.Set(fiber.HeaderContentLanguage, lang)
		return c.Next()
	}
}

// Language returns the negotiated language, or the default one when the
// middleware did not run.
func Language(c *fiber.Ctx) string {
	if lang, ok := c.Locals(languageKey).(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
