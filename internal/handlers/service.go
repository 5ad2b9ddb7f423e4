package handlers

import "github.com/gofiber/fiber/v3"

// Describe handles / and every path no other route claims.
func Describe(c fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return ErrMethodNotAllowed
	}
	return sendJSON(c, fiber.StatusOK, BodyService)
}
