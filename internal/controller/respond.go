package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"courtier_backend/internal/validation"
	"courtier_backend/pkg/logger"
)

// validationFailed maps a schema violation to a 400 with per-field details.
// Anything else coming out of the validator is a programming error, not
// client input, and surfaces as a 500.
func validationFailed(c *fiber.Ctx, err error) error {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": verr.Fields,
		})
	}

	logger.Log.Errorf("Unexpected validation error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
