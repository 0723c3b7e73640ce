package catalog

import (
	"errors"

	"officeit/internal/models"
)

const (
	// MaxFeatured is the ceiling on featured products.
	MaxFeatured = 8
	// MinFeaturedForDisplay is the smallest featured set the homepage shows.
	MinFeaturedForDisplay = 4
)

// ErrFeaturedLimit is returned when featuring one more product would exceed
// MaxFeatured.
var ErrFeaturedLimit = errors.New("maximum of 8 products can be featured at a time")

// CanFeature reports whether another product may be featured when current
// products already are.
func CanFeature(current int) bool {
	return current < MaxFeatured
}

// CheckFeature decides whether a product may move to the wanted featured
// state. Un-featuring and no-op updates are always admitted.
func CheckFeature(currentCount int, isFeatured, want bool) error {
	if want && !isFeatured && !CanFeature(currentCount) {
		return ErrFeaturedLimit
	}
	return nil
}

// ShouldShowFeatured reports whether the featured section renders at all.
func ShouldShowFeatured(count int) bool {
	return count >= MinFeaturedForDisplay && count <= MaxFeatured
}

// Layout is the grid column count for the featured section. WideColumns
// applies on extra-wide screens.
type Layout struct {
	Columns     int `json:"columns"`
	WideColumns int `json:"wideColumns"`
}

// GridColumns maps a featured count to its grid layout.
func GridColumns(count int) Layout {
	switch count {
	case 5:
		return Layout{Columns: 5, WideColumns: 5}
	case 6:
		return Layout{Columns: 3, WideColumns: 6}
	default:
		return Layout{Columns: 4, WideColumns: 4}
	}
}

// CountFeatured counts featured products.
func CountFeatured(products []models.Product) int {
	n := 0
	for i := range products {
		if products[i].Featured {
			n++
		}
	}
	return n
}

// FeaturedSection is what the homepage renders for featured products.
type FeaturedSection struct {
	Products []models.Product `json:"products"`
	Visible  bool             `json:"visible"`
	Layout
}

// BuildFeaturedSection selects the featured products in list order. When the
// set is outside the display range the section is hidden and carries no
// products.
func BuildFeaturedSection(products []models.Product) FeaturedSection {
	featured := make([]models.Product, 0, MaxFeatured)
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if !ShouldShowFeatured(len(featured)) {
		return FeaturedSection{Products: []models.Product{}}
	}
	return FeaturedSection{
		Products: featured,
		Visible:  true,
		Layout:   GridColumns(len(featured)),
	}
}
