package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/semaphore"
)

// Limit bounds the number of requests executing at once to workers.
// Requests beyond the limit wait for a free slot.
func Limit(workers int) fiber.Handler {
	sem := semaphore.NewWeighted(int64(workers))

	return func(c fiber.Ctx) error {
		if err := sem.Acquire(c.Context(), 1); err != nil {
			return fmt.Errorf("acquire worker slot: %w", err)
		}
		defer sem.Release(1)

		return c.Next()
	}
}
