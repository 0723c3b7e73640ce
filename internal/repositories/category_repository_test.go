package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officeit/internal/models"
	"officeit/internal/repositories"
)

type categoryFixture struct {
	categories repositories.CategoryRepository
	products   repositories.ProductRepository
}

func categoryFixtures(t *testing.T) map[string]categoryFixture {
	db := openTestDB(t)
	mockProducts := repositories.NewMockProductRepository()
	return map[string]categoryFixture{
		"gorm": {
			categories: repositories.NewGORMCategoryRepository(db),
			products:   repositories.NewGORMProductRepository(db),
		},
		"mock": {
			categories: repositories.NewMockCategoryRepository(mockProducts),
			products:   mockProducts,
		},
	}
}

func TestCategoryRepository_RenameCascades(t *testing.T) {
	for name, fx := range categoryFixtures(t) {
		t.Run(name, func(t *testing.T) {
			cat := &models.Category{Name: "Printers"}
			require.NoError(t, fx.categories.Create(cat))
			p := newProduct("LaserJet", "Printers", false)
			require.NoError(t, fx.products.Create(p))
			other := newProduct("Switch", "Networking", false)
			require.NoError(t, fx.products.Create(other))

			renamed, err := fx.categories.Rename(cat.ID, "Printers & Scanners")
			require.NoError(t, err)
			assert.Equal(t, "Printers & Scanners", renamed.Name)

			moved, err := fx.products.GetByID(p.ID)
			require.NoError(t, err)
			assert.Equal(t, "Printers & Scanners", moved.Category)

			untouched, err := fx.products.GetByID(other.ID)
			require.NoError(t, err)
			assert.Equal(t, "Networking", untouched.Category)

			byName, err := fx.categories.GetByName("Printers & Scanners")
			require.NoError(t, err)
			assert.Equal(t, cat.ID, byName.ID)

			_, err = fx.categories.Rename("missing", "x")
			assert.ErrorIs(t, err, repositories.ErrNotFound)
		})
	}
}

func TestCategoryRepository_DeleteGuard(t *testing.T) {
	for name, fx := range categoryFixtures(t) {
		t.Run(name, func(t *testing.T) {
			used := &models.Category{Name: "Computers"}
			unused := &models.Category{Name: "Software"}
			require.NoError(t, fx.categories.Create(used))
			require.NoError(t, fx.categories.Create(unused))
			require.NoError(t, fx.products.Create(newProduct("Laptop", "Computers", false)))

			assert.ErrorIs(t, fx.categories.Delete(used.ID), repositories.ErrCategoryInUse)
			require.NoError(t, fx.categories.Delete(unused.ID))

			all, err := fx.categories.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "Computers", all[0].Name)

			assert.ErrorIs(t, fx.categories.Delete(unused.ID), repositories.ErrNotFound)
		})
	}
}

func TestCategoryRepository_DuplicateName(t *testing.T) {
	for name, fx := range categoryFixtures(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, fx.categories.Create(&models.Category{Name: "Accessories"}))
			err := fx.categories.Create(&models.Category{Name: "Accessories"})
			assert.ErrorIs(t, err, repositories.ErrDuplicate)
		})
	}
}
