package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"officeit/internal/repositories"
	"officeit/internal/services"
)

// NewsletterHandler handles newsletter sign-ups.
type NewsletterHandler struct {
	service *services.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(service *services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// RegisterRoutes registers the newsletter route.
func (h *NewsletterHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/newsletter", h.HandleSubscribe)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// HandleSubscribe subscribes an email. Failures carry a single message.
func (h *NewsletterHandler) HandleSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	_, err := h.service.Subscribe(req.Email)
	var verr *services.ValidationError
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Successfully subscribed to newsletter!",
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": verr.Fields["email"],
		})
	case errors.Is(err, repositories.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "This email is already subscribed",
		})
	default:
		zap.S().Errorw("failed to subscribe", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to subscribe to newsletter",
		})
	}
}
