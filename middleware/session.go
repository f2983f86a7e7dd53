package middleware

import (
	"net/http"
	"time"

	"legal_wizard_go/config"
	"legal_wizard_go/services/wizard"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the wizard session cookie
	SessionCookieName = "wizard_session"
	// ContextKeyWizard is the context key for the session's controller
	ContextKeyWizard = "wizard"
	// ContextKeySessionID is the context key for the session id
	ContextKeySessionID = "session_id"
)

// WizardSession attaches the caller's wizard controller to the request,
// starting a new session when the cookie is missing or has expired
func WizardSession(store *wizard.Store, cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				id = cookie.Value
			}

			// The store's TTL slides on every access, so the cookie's
			// expiry is pushed forward with it
			id, ctrl, _ := store.GetOrCreate(id)
			setSessionCookie(c, id, cfg)

			// Messages stored in the state are rendered in the caller's language
			ctrl.SetLocale(GetLocale(c))

			c.Set(ContextKeySessionID, id)
			c.Set(ContextKeyWizard, ctrl)
			return next(c)
		}
	}
}

func setSessionCookie(c echo.Context, id string, cfg *config.Config) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg != nil && cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	if cfg != nil && cfg.SessionTTL > 0 {
		cookie.Expires = time.Now().Add(cfg.SessionTTL)
	}
	c.SetCookie(cookie)
}

// GetWizard retrieves the session's controller from context
func GetWizard(c echo.Context) *wizard.Controller {
	ctrl, ok := c.Get(ContextKeyWizard).(*wizard.Controller)
	if !ok {
		return nil
	}
	return ctrl
}

// GetSessionID retrieves the session id from context
func GetSessionID(c echo.Context) string {
	id, _ := c.Get(ContextKeySessionID).(string)
	return id
}
