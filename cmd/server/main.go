// Package main implements the entry point for the vocab-drill server, which
// serves the vocabulary drill page and its JSON API over in-memory sessions.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

// main is the entry point for the vocab-drill server.
// It loads configuration, sets up logging, wires the application and runs
// the HTTP server until it receives SIGINT or SIGTERM.
func main() {
	fmt.Println("Vocab Drill Server Starting...")

	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"group_limit", cfg.Deck.GroupLimit,
		"session_ttl", cfg.Session.TTL)

	if cfg.Deck.DatasetPath != "" {
		l.Debug("Dataset configuration", "custom_dataset", true)
	}

	return cfg, l, nil
}
