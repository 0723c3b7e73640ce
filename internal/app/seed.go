package app

import (
	_ "embed"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"officeit/internal/catalog"
	"officeit/internal/repositories"
	"officeit/internal/services"
)

//go:embed seed.json
var seedData []byte

// SeedResult counts what Seed created.
type SeedResult struct {
	Categories int
	Products   int
}

// Seed loads the starter catalogue into an empty database. Products go
// through the same validation as the admin API. A database that already has
// products is left alone.
func Seed(db *gorm.DB) (SeedResult, error) {
	var result SeedResult

	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	existing, err := productRepo.GetAll()
	if err != nil {
		return result, err
	}
	if len(existing) > 0 {
		zap.S().Infof("catalogue already has %d products, skipping seed", len(existing))
		return result, nil
	}

	var inputs []catalog.ProductInput
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(seedData, &inputs); err != nil {
		return result, fmt.Errorf("failed to decode seed data: %w", err)
	}

	categories := services.NewCategoryService(categoryRepo, productRepo, nil)
	products := services.NewProductService(productRepo, categoryRepo, nil)

	for _, in := range inputs {
		_, err := categories.CreateCategory(in.Category)
		switch {
		case err == nil:
			result.Categories++
		case !errors.Is(err, repositories.ErrDuplicate):
			return result, fmt.Errorf("failed to seed category %s: %w", in.Category, err)
		}
	}
	for _, in := range inputs {
		if _, err := products.CreateProduct(in); err != nil {
			return result, fmt.Errorf("failed to seed product %s: %w", in.Name, err)
		}
		result.Products++
	}
	zap.S().Infof("seeded %d categories and %d products", result.Categories, result.Products)
	return result, nil
}
