package main

import (
	"os"

	"github.com/shiningstar/learninglens/internal/pkg/logger" // Still needed for initial error logging
	"github.com/shiningstar/learninglens/internal/server"
)

// @title LearningLens API
// @version 1.0
// @description API for the LearningLens K-12 learning style diagnostic platform

// @contact.name API Support
// @contact.url https://www.shiningstar.edu/support
// @contact.email support@shiningstar.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Initialize the server with all its dependencies
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase, SetupRedis,
	// BuildDependencies and SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger setup by the logger package's init
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	// If Run completes without error, it means graceful shutdown was successful.
	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
