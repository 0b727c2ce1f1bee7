// Package main implements the entry point for the Task Analyzer API
// server, which scores task batches by priority and validates their
// dependency graphs.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/task-analyzer-api/internal/config"
	"github.com/phrazzld/task-analyzer-api/internal/platform/logger"
	"github.com/phrazzld/task-analyzer-api/internal/service"
)

// application bundles the long-lived dependencies of the server.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	analyzer *service.Analyzer
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and wires up application components.
// Returns the assembled application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return &application{
		config:   cfg,
		logger:   appLogger,
		analyzer: service.NewAnalyzer(appLogger),
	}, nil
}
