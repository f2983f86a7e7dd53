package middleware

import (
	"net/http"
	"strings"
	"time"

	"legal_wizard_go/config"
	"legal_wizard_go/services/i18n"

	"github.com/labstack/echo/v4"
)

const localeCookieName = "lang"

// Locale middleware handles language detection and persistence.
// Priority:
// 1. Query param "lang" (sets cookie)
// 2. Cookie "lang"
// 3. Accept-Language header
// 4. Default (i18n.DefaultLanguage, Arabic unless configured)
func Locale(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.QueryParam("lang")
			if lang != "" {
				if !i18n.IsSupported(lang) {
					lang = i18n.DefaultLanguage()
				}
				setLanguageCookie(c, lang, cfg != nil && cfg.IsProduction())
			} else if cookie, err := c.Cookie(localeCookieName); err == nil && i18n.IsSupported(cookie.Value) {
				lang = cookie.Value
			}

			if lang == "" {
				lang = languageFromHeader(c.Request().Header.Get("Accept-Language"))
			}

			// Set in both echo context and request context (templ reads the latter)
			c.Set("locale", lang)
			c.SetRequest(c.Request().WithContext(i18n.WithLocale(c.Request().Context(), lang)))

			return next(c)
		}
	}
}

// languageFromHeader picks the first supported language of an Accept-Language header
func languageFromHeader(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if i18n.IsSupported(base) {
			return base
		}
	}
	return i18n.DefaultLanguage()
}

func setLanguageCookie(c echo.Context, lang string, secure bool) {
	cookie := new(http.Cookie)
	cookie.Name = localeCookieName
	cookie.Value = lang
	cookie.Expires = time.Now().Add(24 * 365 * time.Hour) // 1 year
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	cookie.Secure = secure
	c.SetCookie(cookie)
}

// GetLocale returns the current locale from context
func GetLocale(c echo.Context) string {
	if lang, ok := c.Get("locale").(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage()
}
