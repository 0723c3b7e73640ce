package repositories

import (
	"officeit/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Create, Update and SetFeatured refuse to feature a product when the
// featured ceiling is reached, returning catalog.ErrFeaturedLimit.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	SetFeatured(id string, featured bool) (*models.Product, error)
	CountFeatured() (int, error)
	CountByCategory() (map[string]int64, error)
}
