package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/dealpulse/config"
	"github.com/guttosm/dealpulse/internal/api"
	"github.com/guttosm/dealpulse/internal/itad"
	"github.com/guttosm/dealpulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the IsThereAnyDeal client from configuration.
//   - Initializes the stats service (business logic).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes and the CORS gate.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (idle connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream price-tracker client
	client := itad.NewClient(cfg.ITAD)

	// Initialize service layer (business logic)
	svc := service.NewStatsService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, cfg.ITAD.APIKey != "")

	// Setup Gin router with routes
	router := api.NewRouter(handler, cfg.Server.AllowedOrigin)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.Close()
	}

	return router, cleanup, nil
}
