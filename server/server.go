// HTTP access to drawing sessions. Each session holds one face finder in
// memory; nothing is persisted.
package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/farkasseb/PlanarFaceFinder/render"
)

func NewApp(cfg *Config, style render.Style) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Face Finder",
	})
	h := NewHandlers(NewSessionStore(cfg.MaxSessions), style)

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(Logger())
	app.Use(CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", h.LivenessProbe)
	app.Get("/health/ready", h.ReadinessProbe)

	// ============================================================
	// Session Routes
	// ============================================================

	api := app.Group("/api/v1")
	api.Post("/sessions", h.CreateSession)
	api.Get("/sessions/:id", h.GetSession)
	api.Delete("/sessions/:id", h.DeleteSession)
	api.Post("/sessions/:id/strokes", h.AddStroke)
	api.Delete("/sessions/:id/strokes", h.ResetStrokes)
	api.Get("/sessions/:id/render.png", h.RenderPNG)
	api.Get("/sessions/:id/render.svg", h.RenderSVG)

	return app
}
