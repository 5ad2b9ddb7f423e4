package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"

	"sentiment/internal/metrics"
)

// NewAdmin creates the admin app serving the Prometheus client exposition
// of g on GET /metrics.
func NewAdmin(g prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "sentiment-admin"})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(g)))
	return app
}
