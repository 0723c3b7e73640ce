package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"officeit/internal/catalog"
	"officeit/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products, oldest first.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("product with ID %s not found: %w", id, translateGormError(err))
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := admitFeatured(tx, false, product.Featured); err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", translateGormError(err))
		}
		return nil
	})
}

// Update replaces every field of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.Select("id", "featured", "created_at").First(&existing, "id = ?", product.ID).Error; err != nil {
			return fmt.Errorf("product with ID %s not found for update: %w", product.ID, translateGormError(err))
		}
		if err := admitFeatured(tx, existing.Featured, product.Featured); err != nil {
			return err
		}
		product.CreatedAt = existing.CreatedAt
		if err := tx.Save(product).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
}

// SetFeatured changes the featured flag of a product.
func (r *GORMProductRepository) SetFeatured(id string, featured bool) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return fmt.Errorf("product with ID %s not found: %w", id, translateGormError(err))
		}
		if err := admitFeatured(tx, product.Featured, featured); err != nil {
			return err
		}
		if err := tx.Model(&product).Update("featured", featured).Error; err != nil {
			return fmt.Errorf("failed to update featured flag: %w", err)
		}
		product.Featured = featured
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

// CountFeatured counts featured products.
func (r *GORMProductRepository) CountFeatured() (int, error) {
	return countFeatured(r.db)
}

// CountByCategory counts products per category name.
func (r *GORMProductRepository) CountByCategory() (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	err := r.db.Model(&models.Product{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count products by category: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}

func countFeatured(db *gorm.DB) (int, error) {
	var n int64
	if err := db.Model(&models.Product{}).Where("featured = ?", true).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count featured products: %w", err)
	}
	return int(n), nil
}

// admitFeatured applies the featured ceiling inside tx.
func admitFeatured(tx *gorm.DB, isFeatured, want bool) error {
	if !want || isFeatured {
		return nil
	}
	n, err := countFeatured(tx)
	if err != nil {
		return err
	}
	return catalog.CheckFeature(n, isFeatured, want)
}
