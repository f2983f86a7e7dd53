package handlers

import (
	"legal_wizard_go/config"
	"legal_wizard_go/middleware"
	"legal_wizard_go/services/wizard"

	"github.com/labstack/echo/v4"
)

// RouteOptions configures RegisterRoutes
type RouteOptions struct {
	Config *config.Config
	Store  *wizard.Store
	// RateLimit enables the per-IP limits on the AI-backed and email routes
	RateLimit bool
}

// RegisterRoutes mounts the wizard pages, API and exports on e
func RegisterRoutes(e *echo.Echo, h *WizardHandler, opts RouteOptions) {
	e.GET("/health", HealthHandler)

	limit := func(rl *middleware.RateLimiter) []echo.MiddlewareFunc {
		if !opts.RateLimit {
			return nil
		}
		return []echo.MiddlewareFunc{rl.Middleware()}
	}

	app := e.Group("")
	app.Use(middleware.Locale(opts.Config))
	app.Use(middleware.CSPNonce())
	app.Use(middleware.EventMeta())
	app.Use(middleware.WizardSession(opts.Store, opts.Config))
	{
		app.GET("/", h.Show)
		app.POST("/wizard/documents", h.SelectDocuments)
		app.POST("/wizard/upload", h.Upload, limit(middleware.ExtractionRateLimiter)...)
		app.POST("/wizard/verify", h.Verify, limit(middleware.GenerationRateLimiter)...)
		app.POST("/wizard/back", h.Back)
		app.POST("/wizard/reset", h.Reset)

		app.GET("/wizard/documents/:index/pdf", h.DocumentPDF)
		app.GET("/wizard/export.xlsx", h.ExportXLSX)
		app.POST("/wizard/email", h.Email, limit(middleware.EmailRateLimiter)...)
	}

	api := app.Group("/api", limit(middleware.APIRateLimiter)...)
	{
		api.GET("/wizard/state", h.State)
		api.GET("/wizard/events", h.Events)
		api.GET("/document-types", h.DocumentTypes)
	}
}
