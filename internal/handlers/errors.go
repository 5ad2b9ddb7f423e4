package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sentiment/internal/jsontext"
)

// Request-level error sentinels.
var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrBadQuery         = errors.New("malformed query string")
)

// RouteError attaches the body a route answers with when it fails internally.
type RouteError struct {
	Err  error
	Body string
}

func (e *RouteError) Error() string {
	return e.Err.Error()
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// StatusFor maps a handler error to its HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		return fiber.StatusMethodNotAllowed
	case errors.Is(err, jsontext.ErrMalformedInput), errors.Is(err, ErrBadQuery):
		return fiber.StatusBadRequest
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// WriteError writes the complete error response for err.
func WriteError(c fiber.Ctx, err error) error {
	status := StatusFor(err)

	var re *RouteError
	if status == fiber.StatusInternalServerError && errors.As(err, &re) && re.Body != "" {
		return sendJSON(c, status, re.Body)
	}

	var message string
	var fe *fiber.Error
	if status != fiber.StatusInternalServerError && errors.As(err, &fe) {
		message = fe.Message
	}
	return sendJSON(c, status, errorBody(status, message))
}

// WithFailureBody wraps h so that any error, including a panic, carries body
// as the route's 500 response. Errors with their own status keep it.
func WithFailureBody(body string, h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &RouteError{Err: fmt.Errorf("panic: %v", r), Body: body}
			}
		}()

		if err := h(c); err != nil {
			return &RouteError{Err: err, Body: body}
		}
		return nil
	}
}
