package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luanqs/RagDropSim_Go/internal/calc"
	"github.com/luanqs/RagDropSim_Go/internal/catalog"
	"github.com/luanqs/RagDropSim_Go/internal/config"
	"github.com/luanqs/RagDropSim_Go/internal/handler"
	"github.com/luanqs/RagDropSim_Go/internal/logger"
	"github.com/luanqs/RagDropSim_Go/internal/server"
)

// @title RagDropSim API
// @version 1.0
// @description Drop rate calculation and simulation service for Ragnarok-style content
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		config.ServiceName,
		handler.Version,
		cfg.Environment,
		cfg.Environment != "prod",
	))

	slog.Info("Starting drop rate service",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_file", cfg.DataFile)

	// The catalog is the single source of truth for the whole service,
	// so a missing or invalid data file is a fatal startup error.
	loader := catalog.NewLoader()
	catalogConfig, err := loader.Load(cfg.DataFile)
	if err != nil {
		slog.Error("Failed to load drop catalog", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	if err := loader.Validate(catalogConfig); err != nil {
		slog.Error("Drop catalog failed validation", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	store, err := catalog.New(catalogConfig)
	if err != nil {
		slog.Error("Failed to build catalog store", "error", err)
		os.Exit(1)
	}

	calcService := calc.NewService(store)

	srv := server.NewServer(cfg.Port, cfg.CORSOrigins, store, calcService)

	// Start server in a goroutine so we can listen for shutdown signals
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		slog.Info("Shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}

		slog.Info("Server stopped")
	}
}
