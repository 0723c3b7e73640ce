package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"officeit/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories ordered by name.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a category by its ID.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("category with ID %s not found: %w", id, translateGormError(err))
	}
	return &category, nil
}

// GetByName retrieves a category by its exact name.
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("category %q not found: %w", name, translateGormError(err))
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translateGormError(err))
	}
	return nil
}

// Rename updates the category and its products in one transaction.
func (r *GORMCategoryRepository) Rename(id, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return fmt.Errorf("category with ID %s not found for update: %w", id, translateGormError(err))
		}
		oldName := category.Name
		if oldName == name {
			return nil
		}
		if err := tx.Model(&category).Update("name", name).Error; err != nil {
			return fmt.Errorf("failed to rename category: %w", translateGormError(err))
		}
		err := tx.Model(&models.Product{}).
			Where("category = ?", oldName).
			Update("category", name).Error
		if err != nil {
			return fmt.Errorf("failed to move products to category %q: %w", name, err)
		}
		category.Name = name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes an unused category.
func (r *GORMCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			return fmt.Errorf("category with ID %s not found for deletion: %w", id, translateGormError(err))
		}
		var n int64
		if err := tx.Model(&models.Product{}).Where("category = ?", category.Name).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to count products in category: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("cannot delete category with %d products: %w", n, ErrCategoryInUse)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		return nil
	})
}
