package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/config"
	"sentiment/internal/logging"
	"sentiment/internal/metrics"
	"sentiment/internal/sentiment"
	"sentiment/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Init(os.Stdout, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Counters start with the process
	registry := metrics.NewRegistry()

	srv := server.New(cfg, registry, logger)
	srv.RegisterRoutes(sentiment.NewClassifier(sentiment.DefaultLexicon()))

	// Optional admin listener for the Prometheus client exposition
	if cfg.MetricsAddr != "" {
		gatherer, err := metrics.NewGatherer(registry)
		if err != nil {
			log.Fatalf("Failed to register metrics collectors: %v", err)
		}
		admin := server.NewAdmin(gatherer)
		go func() {
			logger.Info("admin listener started", "addr", cfg.MetricsAddr)
			if err := admin.Listen(cfg.MetricsAddr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				logger.Error("admin listener error", "error", err)
			}
		}()
		defer admin.Shutdown()
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
