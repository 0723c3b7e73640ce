package services

import (
	"fmt"
	"strings"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

// CategoryService handles category management.
type CategoryService struct {
	repo     repositories.CategoryRepository
	products repositories.ProductRepository
	events   EventPublisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, products repositories.ProductRepository, events EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, products: products, events: events}
}

// ListCategories returns every category with its product count filled in.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.products.CountByCategory()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].Name]
	}
	return categories, nil
}

// CreateCategory adds a category. A taken name fails with
// repositories.ErrDuplicate; other rule violations with *ValidationError.
func (s *CategoryService) CreateCategory(name string) (*models.Category, error) {
	if err := s.checkName(name, ""); err != nil {
		return nil, err
	}
	category := &models.Category{Name: strings.TrimSpace(name)}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	publish(s.events, EventCategoryCreated, category)
	return category, nil
}

// RenameCategory renames category id. Products in the category follow the
// new name.
func (s *CategoryService) RenameCategory(id, name string) (*models.Category, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkName(name, id); err != nil {
		return nil, err
	}
	renamed, err := s.repo.Rename(id, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if counts, err := s.products.CountByCategory(); err == nil {
		renamed.ProductCount = counts[renamed.Name]
	}
	publish(s.events, EventCategoryRenamed, map[string]string{"id": id, "from": current.Name, "to": renamed.Name})
	return renamed, nil
}

// DeleteCategory removes category id. It fails with
// repositories.ErrCategoryInUse while products still reference it.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publish(s.events, EventCategoryDeleted, map[string]string{"id": id})
	return nil
}

func (s *CategoryService) checkName(name, excludeID string) error {
	existing, err := s.repo.GetAll()
	if err != nil {
		return err
	}
	switch msg := catalog.ValidateCategoryName(name, existing, excludeID); msg {
	case "":
		return nil
	case catalog.CategoryExistsMessage:
		return fmt.Errorf("%s: %w", msg, repositories.ErrDuplicate)
	default:
		return &ValidationError{Fields: catalog.FieldErrors{"name": msg}}
	}
}
