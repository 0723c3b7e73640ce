package handlers

import (
	"github.com/gofiber/fiber/v2"

	"officeit/internal/services"
)

// StorefrontHandler serves storefront metadata.
type StorefrontHandler struct {
	service *services.StorefrontService
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(service *services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{service: service}
}

// RegisterRoutes registers the storefront routes.
func (h *StorefrontHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/catalog/filters", h.HandleGetFilters)
}

// HandleGetFilters returns the filter panel options.
func (h *StorefrontHandler) HandleGetFilters(c *fiber.Ctx) error {
	opts, err := h.service.FilterOptions(c.UserContext())
	if err != nil {
		return respondError(c, err, "Catalog", "Failed to load data from server")
	}
	return c.JSON(opts)
}
