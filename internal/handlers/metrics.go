package handlers

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/metrics"
)

// MetricsHandler serves the request counters in the text exposition format.
type MetricsHandler struct {
	exposition io.WriterTo
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(exposition io.WriterTo) *MetricsHandler {
	return &MetricsHandler{exposition: exposition}
}

// Serve handles /metrics.
func (h *MetricsHandler) Serve(c fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return ErrMethodNotAllowed
	}

	var buf bytes.Buffer
	if _, err := h.exposition.WriteTo(&buf); err != nil {
		return fmt.Errorf("render metrics: %w", err)
	}

	c.Set(fiber.HeaderContentType, metrics.ContentType)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
