package middleware

import (
	"legal_wizard_go/services"

	"github.com/labstack/echo/v4"
)

const ContextKeyEventMeta = "event_meta"

// EventMeta is middleware that captures the request details stored with
// export events
func EventMeta() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyEventMeta, services.EventMeta{
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			})
			return next(c)
		}
	}
}

// GetEventMeta retrieves the request details from context
func GetEventMeta(c echo.Context) services.EventMeta {
	if meta, ok := c.Get(ContextKeyEventMeta).(services.EventMeta); ok {
		return meta
	}
	return services.EventMeta{}
}
