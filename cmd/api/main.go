package main

import (
	"os"

	"github.com/tullab/tullab/internal/pkg/logger"
	"github.com/tullab/tullab/internal/server"
)

// @title Tullab API
// @version 1.0
// @description API for Tullab, a study companion for high school students: exam schedule with countdowns, study files and quiz links by subject.

// @contact.name API Support
// @contact.email support@tullab.app

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for admin operations

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
