package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobsweep/internal/aggregator"
	"jobsweep/internal/api/handlers"
	"jobsweep/internal/api/middleware"
	"jobsweep/internal/config"
	"jobsweep/internal/providers"
	"jobsweep/internal/providers/adzuna"
	"jobsweep/internal/providers/careeronestop"
	"jobsweep/internal/providers/usajobs"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestID())
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	// Shared upstream client, one adapter per board
	client := providers.NewClient(cfg)
	adz := adzuna.New(cfg, client)
	cos := careeronestop.New(cfg, client)
	usa := usajobs.New(cfg, client)
	agg := aggregator.New(cfg, adz, cos, usa)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(adz, cos, usa))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(adz, cos, usa))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		search := v1.Group("/search")
		{
			search.GET("", handlers.AggregateSearchHandler(cfg, agg))

			// Legacy single-board endpoints, kept for older clients
			search.GET("/adzuna", handlers.ProxySearchHandler(cfg, adz))
			search.GET("/cos", handlers.ProxySearchHandler(cfg, cos))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Jobsweep Search Aggregator",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
