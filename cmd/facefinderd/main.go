package main

import (
	"fmt"
	"log"

	"github.com/farkasseb/PlanarFaceFinder/render"
	"github.com/farkasseb/PlanarFaceFinder/server"
)

// ============================================================
// Face Finder Service
// ============================================================

func main() {
	cfg := server.Load()

	style, err := render.LoadStyleFile(cfg.StyleFile)
	if err != nil {
		log.Fatalf("Failed to load style: %v", err)
	}

	app := server.NewApp(cfg, style)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Face Finder Service on %s (env: %s, max sessions: %d)", addr, cfg.Environment, cfg.MaxSessions)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
