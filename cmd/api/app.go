package main

import (
	"log/slog"
	"thermaglobe/internal/config"
	"thermaglobe/internal/geocoder"
	"thermaglobe/internal/timezone"

	"github.com/gin-gonic/gin"

	_ "thermaglobe/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	geocoderService geocoder.Service
	timezoneService timezone.Service
	cfg             *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Initialize timezone enrichment
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:          router,
		logger:          logger,
		geocoderService: geocoder.NewService(cfg, logger),
		timezoneService: tzSvc,
		cfg:             cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
