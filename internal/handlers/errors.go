package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"officeit/internal/catalog"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

// respondError maps a service error onto the JSON error shape. subject names
// the resource in not-found messages; failure is the message for unexpected
// errors, e.g. "Failed to update product".
func respondError(c *fiber.Ctx, err error, subject, failure string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr.Fields)
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMessage(c, subject),
		})
	case errors.Is(err, catalog.ErrFeaturedLimit):
		return conflict(c, "Maximum of 8 products can be featured at a time", err)
	case errors.Is(err, repositories.ErrCategoryInUse):
		return conflict(c, "Cannot delete category that still has products", err)
	case errors.Is(err, repositories.ErrDuplicate):
		return conflict(c, leadingMessage(err), err)
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   err.Error(),
		})
	}

	zap.S().Errorw(failure, "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": failure,
		"error":   err.Error(),
	})
}

func validationFailed(c *fiber.Ctx, fields catalog.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  fields,
	})
}

func conflict(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func badBody(c *fiber.Ctx, err error) error {
	zap.S().Debugw("invalid request body", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

func notFoundMessage(c *fiber.Ctx, subject string) string {
	if id := c.Params("id"); id != "" {
		return fmt.Sprintf("%s with ID %s not found", subject, id)
	}
	return subject + " not found"
}

// leadingMessage is the outermost context of a wrapped error, e.g.
// "Category name already exists" for "Category name already exists: duplicate record".
func leadingMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), ": ")
	return msg
}
