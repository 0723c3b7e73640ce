package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"officeit/internal/models"
	"officeit/internal/services"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact route.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleContact)
}

// HandleContact validates and forwards a contact message. The response
// always carries success.
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	err := h.service.Submit(msg)
	var verr *services.ValidationError
	switch {
	case err == nil:
		return c.JSON(fiber.Map{
			"success": true,
			"message": services.ContactSuccessMessage,
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	default:
		zap.S().Errorw("failed to send contact message", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send message",
		})
	}
}
