package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"officeit/internal/models"
)

// MockCategoryRepository is an in-memory implementation of
// CategoryRepository. Renames and deletes consult the product store it was
// created with.
type MockCategoryRepository struct {
	categories map[string]models.Category
	products   *MockProductRepository
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository(products *MockProductRepository) *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]models.Category),
		products:   products,
	}
}

// GetAll returns all categories ordered by name.
func (r *MockCategoryRepository) GetAll() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// GetByID returns a category by its ID.
func (r *MockCategoryRepository) GetByID(id string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with ID %s not found: %w", id, ErrNotFound)
	}
	return &c, nil
}

// GetByName returns a category by its exact name.
func (r *MockCategoryRepository) GetByName(name string) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("category %q not found: %w", name, ErrNotFound)
}

// Create adds a new category.
func (r *MockCategoryRepository) Create(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return fmt.Errorf("failed to create category: %w", ErrDuplicate)
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	now := time.Now()
	category.CreatedAt, category.UpdatedAt = now, now
	r.categories[category.ID] = *category
	return nil
}

// Rename changes the category name and moves its products.
func (r *MockCategoryRepository) Rename(id, name string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with ID %s not found for update: %w", id, ErrNotFound)
	}
	oldName := c.Name
	c.Name = name
	c.UpdatedAt = time.Now()
	r.categories[id] = c
	if r.products != nil && oldName != name {
		r.products.renameCategory(oldName, name)
	}
	return &c, nil
}

// Delete removes an unused category.
func (r *MockCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.categories[id]
	if !ok {
		return fmt.Errorf("category with ID %s not found for deletion: %w", id, ErrNotFound)
	}
	if r.products != nil {
		counts, _ := r.products.CountByCategory()
		if n := counts[c.Name]; n > 0 {
			return fmt.Errorf("cannot delete category with %d products: %w", n, ErrCategoryInUse)
		}
	}
	delete(r.categories, id)
	return nil
}
