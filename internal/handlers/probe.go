package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
)

var errNotReady = errors.New("service not ready")

// ReadinessChecker reports whether the service should receive traffic.
type ReadinessChecker interface {
	Ready() bool
}

// ProbeHandler handles the liveness and readiness probe endpoints.
type ProbeHandler struct {
	readiness ReadinessChecker
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(readiness ReadinessChecker) *ProbeHandler {
	return &ProbeHandler{readiness: readiness}
}

// Health handles /health. Returns 200 while the process is serving requests.
func (h *ProbeHandler) Health(c fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return ErrMethodNotAllowed
	}
	return sendJSON(c, fiber.StatusOK, BodyUp)
}

// Readiness handles /ready. Fails once the server has started draining.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return ErrMethodNotAllowed
	}
	if h.readiness != nil && !h.readiness.Ready() {
		return errNotReady
	}
	return sendJSON(c, fiber.StatusOK, BodyReady)
}
