package main

import (
	"log"

	"github.com/paperpup/studyshare/backend/internal/router"
	"github.com/paperpup/studyshare/backend/pkg/config"
	"github.com/paperpup/studyshare/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e, cfg.RequestTimeout)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
