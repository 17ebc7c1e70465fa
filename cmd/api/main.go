package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ngvthanh/classform/internal/pkg/logger"
	"github.com/ngvthanh/classform/internal/server"
)

// @title ClassForm API
// @version 1.0
// @description API for the class information form and its admin report

// @host localhost:5000
// @BasePath /api
// @schemes http https

func main() {
	// .env is optional; environment still overrides the config file
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
