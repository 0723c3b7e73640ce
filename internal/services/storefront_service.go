package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
)

// FilterOptions is what the storefront needs to render its filter panel.
type FilterOptions struct {
	Categories   []models.Category          `json:"categories"`
	PriceRange   catalog.PriceRange         `json:"priceRange"`
	Availability catalog.AvailabilityCounts `json:"availability"`
}

// StorefrontService serves read-only storefront views.
type StorefrontService struct {
	products   repositories.ProductRepository
	categories *CategoryService
}

// NewStorefrontService creates a new StorefrontService.
func NewStorefrontService(products repositories.ProductRepository, categories *CategoryService) *StorefrontService {
	return &StorefrontService{products: products, categories: categories}
}

// FilterOptions loads products and categories concurrently and derives the
// filter panel from them.
func (s *StorefrontService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	var (
		products   []models.Product
		categories []models.Category
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		products, err = s.products.GetAll()
		return err
	})
	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		var err error
		categories, err = s.categories.ListCategories()
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &FilterOptions{
		Categories:   categories,
		PriceRange:   catalog.PriceBounds(products),
		Availability: catalog.CountAvailability(products),
	}, nil
}
