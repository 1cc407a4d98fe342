package main

import (
	"os"

	"github.com/kareemh/maarif/internal/pkg/logger"
	"github.com/kareemh/maarif/internal/server"
)

// @title Maarif API
// @version 1.0
// @description API for the Maarif student question-and-answer forum

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
