package handlers

import (
	"github.com/gofiber/fiber/v2"

	"officeit/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// RegisterRoutes registers the category routes; admin guards the writes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, admin ...fiber.Handler) {
	protect := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, admin...), handler)
	}

	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Post("/", protect(h.HandleCreateCategory)...)
	categoryRoutes.Put("/:id", protect(h.HandleRenameCategory)...)
	categoryRoutes.Delete("/:id", protect(h.HandleDeleteCategory)...)
}

// HandleGetCategories lists categories with their product counts.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return respondError(c, err, "Category", "Failed to load categories")
	}
	return c.JSON(categories)
}

// HandleCreateCategory adds a category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	category, err := h.service.CreateCategory(req.Name)
	if err != nil {
		return respondError(c, err, "Category", "Failed to add category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleRenameCategory renames a category and the products in it.
func (h *CategoryHandler) HandleRenameCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	category, err := h.service.RenameCategory(c.Params("id"), req.Name)
	if err != nil {
		return respondError(c, err, "Category", "Failed to update category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes an empty category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return respondError(c, err, "Category", "Failed to delete category")
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
