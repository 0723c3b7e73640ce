package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	events     EventPublisher
}

// NewProductService creates a new ProductService. categories may be nil, in
// which case product categories are not checked against stored categories.
func NewProductService(repo repositories.ProductRepository, categories repositories.CategoryRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:       repo,
		categories: categories,
		events:     events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// ListProducts returns the products matching q in the requested order.
func (s *ProductService) ListProducts(q catalog.Query) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return q.Apply(products), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct validates in and stores it as a new product.
func (s *ProductService) CreateProduct(in catalog.ProductInput) (*models.Product, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	product := &models.Product{}
	applyInput(product, in)
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	publish(s.events, EventProductCreated, product)
	return product, nil
}

// UpdateProduct validates in and replaces the editable fields of product id.
func (s *ProductService) UpdateProduct(id string, in catalog.ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(in); err != nil {
		return nil, err
	}
	applyInput(product, in)
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	publish(s.events, EventProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publish(s.events, EventProductDeleted, map[string]string{"id": id})
	return nil
}

// ToggleFeatured flips the featured flag of product id. Featuring fails with
// catalog.ErrFeaturedLimit once MaxFeatured products are featured.
func (s *ProductService) ToggleFeatured(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.SetFeatured(id, !product.Featured)
}

// SetFeatured puts product id in the wanted featured state.
func (s *ProductService) SetFeatured(id string, featured bool) (*models.Product, error) {
	product, err := s.repo.SetFeatured(id, featured)
	if err != nil {
		return nil, err
	}
	publish(s.events, EventProductFeatured, map[string]interface{}{"id": product.ID, "featured": product.Featured})
	return product, nil
}

// FeaturedSection returns the homepage featured section.
func (s *ProductService) FeaturedSection() (catalog.FeaturedSection, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return catalog.FeaturedSection{}, err
	}
	return catalog.BuildFeaturedSection(products), nil
}

// Stats summarizes the catalogue for the admin dashboard.
func (s *ProductService) Stats() (catalog.Stats, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return catalog.Stats{}, err
	}
	return catalog.Summarize(products), nil
}

func (s *ProductService) validate(in catalog.ProductInput) error {
	fields := catalog.ValidateProduct(in)
	if _, bad := fields["category"]; !bad && s.categories != nil {
		_, err := s.categories.GetByName(strings.TrimSpace(in.Category))
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			fields["category"] = "Category does not exist"
		case err != nil:
			return fmt.Errorf("failed to check category: %w", err)
		}
	}
	return validationError(fields)
}

// applyInput copies a validated submission onto product.
func applyInput(product *models.Product, in catalog.ProductInput) {
	product.Name = strings.TrimSpace(in.Name)
	product.Price = in.Price.Float64()
	product.Discount = in.Discount.Float64()
	product.Category = strings.TrimSpace(in.Category)
	product.Image = strings.TrimSpace(in.Image)
	product.Description = strings.TrimSpace(in.Description)
	product.Availability = in.Availability
	if product.Availability == "" {
		product.Availability = models.AvailabilityInStock
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	product.Specs = datatypes.NewJSONType(catalog.CleanSpecs(in.Specs))
}
