// error_utils.go
package utils

import (
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleFieldErrors answers a failed validation with every field problem.
func HandleFieldErrors(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  fiber.StatusUnprocessableEntity,
		"message": "validation failed",
		"errors":  errs,
	})
}
