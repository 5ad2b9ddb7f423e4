package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// RequestCounter records handled requests.
type RequestCounter interface {
	IncTotal()
	ObserveStatus(code int)
}

// ErrorWriter writes the complete response for a handler error.
type ErrorWriter func(c fiber.Ctx, err error) error

// CountRequests counts every request once on entry and its status class once
// the response is complete. Errors returned further down the chain are written
// here, so none escape past a single request.
func CountRequests(counter RequestCounter, writeError ErrorWriter, log *slog.Logger) fiber.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(c fiber.Ctx) error {
		counter.IncTotal()

		if err := c.Next(); err != nil {
			if werr := writeError(c, err); werr != nil {
				log.Error("failed to write error response", "path", c.Path(), "error", werr)
			}
			if c.Response().StatusCode() >= fiber.StatusInternalServerError {
				log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
			}
		}

		counter.ObserveStatus(c.Response().StatusCode())
		return nil
	}
}
