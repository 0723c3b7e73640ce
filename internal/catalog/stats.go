package catalog

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"officeit/internal/models"
)

// DefaultMaxPrice bounds the price filter when the catalog is empty.
const DefaultMaxPrice = 2000

// Stats summarizes the catalog for the admin dashboard.
type Stats struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
	Discounted int `json:"discounted"`
	Featured   int `json:"featured"`
}

// Summarize counts products per dashboard card.
func Summarize(products []models.Product) Stats {
	s := Stats{Total: len(products)}
	for _, p := range products {
		switch p.Availability {
		case models.AvailabilityInStock:
			s.InStock++
		case models.AvailabilityOutOfStock:
			s.OutOfStock++
		}
		if p.Discount > 0 {
			s.Discounted++
		}
		if p.Featured {
			s.Featured++
		}
	}
	return s
}

// DiscountPercent is the rounded saving of the sale price against the list
// price, or 0 when the product is not discounted.
func DiscountPercent(p models.Product) int {
	if p.Discount <= 0 || p.Price <= 0 || p.Discount >= p.Price {
		return 0
	}
	return int(math.Round((p.Price - p.Discount) / p.Price * 100))
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price with thousands separators and two decimals.
func FormatPrice(price float64) string {
	return pricePrinter.Sprintf("%.2f", price)
}

// PriceRange is the inclusive span of prices in the catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PriceBounds returns [0, highest price], or [0, DefaultMaxPrice] for an
// empty catalog.
func PriceBounds(products []models.Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{Max: DefaultMaxPrice}
	}
	r := PriceRange{}
	for _, p := range products {
		r.Max = math.Max(r.Max, p.Price)
	}
	return r
}

// AvailabilityCounts counts products per availability value.
type AvailabilityCounts struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CountAvailability counts products per availability value.
func CountAvailability(products []models.Product) AvailabilityCounts {
	s := Summarize(products)
	return AvailabilityCounts{InStock: s.InStock, OutOfStock: s.OutOfStock}
}
