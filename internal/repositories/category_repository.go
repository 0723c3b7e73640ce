package repositories

import "officeit/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	// Rename changes the category name and moves every product that
	// referenced the old name to the new one.
	Rename(id, name string) (*models.Category, error)
	// Delete removes a category, refusing with ErrCategoryInUse while
	// products still reference it.
	Delete(id string) error
}
