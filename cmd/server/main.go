// Package main implements the entry point for the pulsard API server,
// which exposes user accounts and live background-task events.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/pulsard/pulsard-api/internal/config"
	"github.com/pulsard/pulsard-api/internal/platform/logger"
)

// main loads configuration, wires the application, and runs the HTTP
// server until a shutdown signal arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and builds the
// application with all its dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Database configuration", "url_present", cfg.Database.URL != "")
	slog.Debug("Auth configuration", "token_secret_present", cfg.Auth.TokenSecret != "")

	app, err := newApplication(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
