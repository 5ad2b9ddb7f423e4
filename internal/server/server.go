package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"sentiment/internal/config"
	"sentiment/internal/handlers"
	"sentiment/internal/metrics"
	"sentiment/internal/middleware"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App       *fiber.App
	Cfg       *config.Config
	Metrics   *metrics.Registry
	Readiness *Readiness
	Logger    *slog.Logger
}

// New creates a new server with middleware configured.
func New(cfg *config.Config, registry *metrics.Registry, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	app := fiber.New(fiber.Config{
		AppName:       "sentiment",
		CaseSensitive: true,
		BodyLimit:     cfg.BodyLimit,

		// Reached only if an error escapes the request accounting middleware.
		ErrorHandler: handlers.WriteError,
	})

	// Global middleware. Accounting wraps everything so that panics and
	// errors from later middleware are still counted.
	app.Use(middleware.CountRequests(registry, handlers.WriteError, log))
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if cfg.AccessLog {
		app.Use(logger.New())
	}
	app.Use(middleware.Limit(cfg.Threads))

	return &Server{
		App:       app,
		Cfg:       cfg,
		Metrics:   registry,
		Readiness: NewReadiness(true),
		Logger:    log,
	}
}

// Start starts the server on the configured address.
func (s *Server) Start() error {
	s.Logger.Info("server started", "addr", s.Cfg.ServerAddr(), "threads", s.Cfg.Threads)
	return s.App.Listen(s.Cfg.ServerAddr(), fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

// Shutdown marks the server not ready and drains in-flight requests.
func (s *Server) Shutdown() error {
	s.Readiness.Set(false)
	return s.App.ShutdownWithTimeout(s.Cfg.ShutdownTimeout)
}
