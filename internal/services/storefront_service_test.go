package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeit/internal/catalog"
	"officeit/internal/models"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

func TestStorefrontService_FilterOptions(t *testing.T) {
	products := repositories.NewMockProductRepository()
	categories := repositories.NewMockCategoryRepository(products)
	require.NoError(t, categories.Create(&models.Category{Name: "Computers"}))
	require.NoError(t, products.Create(&models.Product{Name: "Laptop", Category: "Computers", Price: 1200, Availability: models.AvailabilityInStock}))
	require.NoError(t, products.Create(&models.Product{Name: "Tower", Category: "Computers", Price: 800, Availability: models.AvailabilityOutOfStock}))

	service := services.NewStorefrontService(products, services.NewCategoryService(categories, products, nil))
	opts, err := service.FilterOptions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, catalog.PriceRange{Min: 0, Max: 1200}, opts.PriceRange)
	assert.Equal(t, catalog.AvailabilityCounts{InStock: 1, OutOfStock: 1}, opts.Availability)
	require.Len(t, opts.Categories, 1)
	assert.EqualValues(t, 2, opts.Categories[0].ProductCount)
}

func TestStorefrontService_FilterOptionsEmptyCatalog(t *testing.T) {
	products := repositories.NewMockProductRepository()
	categories := repositories.NewMockCategoryRepository(products)
	service := services.NewStorefrontService(products, services.NewCategoryService(categories, products, nil))

	opts, err := service.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(catalog.DefaultMaxPrice), opts.PriceRange.Max)
}

func TestStorefrontService_FilterOptionsError(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("GetAll").Return([]models.Product(nil), errors.New("db gone"))
	mockRepo.On("CountByCategory").Return(map[string]int64{}, nil)
	categories := repositories.NewMockCategoryRepository(repositories.NewMockProductRepository())

	service := services.NewStorefrontService(mockRepo, services.NewCategoryService(categories, mockRepo, nil))
	_, err := service.FilterOptions(context.Background())
	assert.ErrorContains(t, err, "db gone")
}
