package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"fittrack/internal/apperrors"
)

// respondError maps the error taxonomy to HTTP status codes in one place.
// Anything outside the taxonomy is logged with full detail and surfaced as
// a generic 500; internal error text never reaches the caller.
func respondError(c *fiber.Ctx, err error) error {
	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
		authErr       *apperrors.AuthError
		upstreamErr   *apperrors.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  map[string]string{validationErr.Field: validationErr.Message},
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": conflictErr.Message,
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Message,
		})
	case errors.As(err, &authErr):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": authErr.Message,
		})
	case errors.As(err, &upstreamErr):
		log.Printf("Upstream failure: %v", err)
		status := fiber.StatusServiceUnavailable
		if upstreamErr.BadGateway {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"message": upstreamErr.Message,
		})
	default:
		log.Printf("Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An internal error occurred",
		})
	}
}

// respondBadBody reports an unparseable request body.
func respondBadBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
	})
}

// respondValidation turns validator errors into the per-field 400 payload.
func respondValidation(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return respondError(c, apperrors.NewInternal(err))
	}
	errorMessages := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
