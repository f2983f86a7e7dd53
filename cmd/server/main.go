package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"legal_wizard_go/config"
	"legal_wizard_go/db"
	"legal_wizard_go/handlers"
	"legal_wizard_go/middleware"
	"legal_wizard_go/models"
	"legal_wizard_go/services"
	"legal_wizard_go/services/i18n"
	"legal_wizard_go/services/wizard"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	i18n.SetDefaultLanguage(cfg.DefaultLocale)

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.WizardEvent{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	storage := services.InitializeStorage(ctx, cfg)

	// The wizard still runs without an API key; uploads and generation fail
	// through the normal error path
	var ai interface {
		wizard.Extractor
		wizard.Generator
	} = services.UnavailableAI{}
	aiAvailable := false
	if cfg.GeminiAPIKey == "" {
		log.Println("[WARNING] GEMINI_API_KEY is not set, document analysis is disabled")
	} else {
		client, err := services.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("[WARNING] Failed to create Gemini client, document analysis is disabled: %v", err)
		} else {
			defer client.Close()
			ai = client
			aiAvailable = true
			log.Printf("Gemini client ready (model %s)", client.Model())
		}
	}

	store := wizard.NewStore(func(sessionID string) *wizard.Controller {
		return wizard.New(wizard.Config{
			Extractor: ai,
			Generator: ai,
			OnEvent:   services.NewWizardEventRecorder(db.DB, sessionID),
		})
	})

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit(cfg)))
	e.Use(middleware.CSRF(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	h := handlers.NewWizardHandler(handlers.WizardDeps{
		Config:      cfg,
		Storage:     storage,
		PDF:         services.NewPDFRenderer(cfg.ChromePath, services.DefaultPDFOptions()),
		DB:          db.DB,
		AIAvailable: aiAvailable,
	})
	handlers.RegisterRoutes(e, h, handlers.RouteOptions{
		Config:    cfg,
		Store:     store,
		RateLimit: true,
	})

	// Drop idle wizard sessions
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if n := store.Sweep(cfg.SessionTTL); n > 0 {
				log.Printf("Expired %d idle wizard session(s), %d active", n, store.Len())
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// bodyLimit leaves room for multipart overhead above the upload limit
func bodyLimit(cfg *config.Config) string {
	mb := cfg.MaxUploadMB
	if mb <= 0 {
		mb = config.DefaultMaxUploadMB
	}
	return fmt.Sprintf("%dM", mb+1)
}
