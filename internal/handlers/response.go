package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/jsontext"
)

// Fixed response bodies.
const (
	BodyUp       = `{"status":"UP"}`
	BodyDown     = `{"status":"DOWN"}`
	BodyReady    = `{"status":"READY"}`
	BodyNotReady = `{"status":"NOT_READY"}`
	BodyService  = `{"service":"sentiment","endpoints":["/api/sentiment","/health","/ready","/metrics"]}`
)

// sendJSON writes a complete JSON response. Bodies are built by hand so that
// field order and escaping stay fixed.
func sendJSON(c fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(status).SendString(body)
}

// errorBody returns {"error":"<message>"}, defaulting to the status text.
func errorBody(status int, message string) string {
	if message == "" {
		message = http.StatusText(status)
	}
	return `{"error":"` + jsontext.Escape(message) + `"}`
}
