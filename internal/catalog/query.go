package catalog

import (
	"cmp"
	"slices"
	"strings"

	"officeit/internal/models"
)

// SortDirection orders a sorted view.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults to ascending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

type productComparator func(a, b *models.Product) int

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

var comparators = map[string]productComparator{
	"name":         func(a, b *models.Product) int { return compareFold(a.Name, b.Name) },
	"category":     func(a, b *models.Product) int { return compareFold(a.Category, b.Category) },
	"availability": func(a, b *models.Product) int { return compareFold(a.Availability, b.Availability) },
	"description":  func(a, b *models.Product) int { return compareFold(a.Description, b.Description) },
	"price":        func(a, b *models.Product) int { return cmp.Compare(a.Price, b.Price) },
	"discount":     func(a, b *models.Product) int { return cmp.Compare(a.Discount, b.Discount) },
	"featured":     func(a, b *models.Product) int { return compareBool(a.Featured, b.Featured) },
	"createdAt":    func(a, b *models.Product) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// SortableField reports whether field names a sortable product field.
func SortableField(field string) bool {
	_, ok := comparators[field]
	return ok
}

// SortProducts returns a stably sorted copy of list. An unknown or empty
// field leaves the order unchanged.
func SortProducts(list []models.Product, field string, dir SortDirection) []models.Product {
	out := slices.Clone(list)
	if out == nil {
		out = []models.Product{}
	}
	compare, ok := comparators[field]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, func(a, b models.Product) int {
		if dir == SortDesc {
			return compare(&b, &a)
		}
		return compare(&a, &b)
	})
	return out
}

// Filter is the active storefront filter state. Zero values are inactive.
type Filter struct {
	Search       string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	Availability []string
}

// Active reports whether any filter would exclude products.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Search) != "" || f.Category != "" ||
		f.MinPrice != nil || f.MaxPrice != nil || len(f.Availability) > 0
}

// Matches applies every active filter to p.
func (f Filter) Matches(p models.Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if len(f.Availability) > 0 && !slices.Contains(f.Availability, p.Availability) {
		return false
	}
	return true
}

// FilterProducts returns the products matching f, in input order.
func FilterProducts(list []models.Product, f Filter) []models.Product {
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Query combines a filter with a sort order.
type Query struct {
	Filter
	SortField string
	Direction SortDirection
}

// Apply filters then sorts list.
func (q Query) Apply(list []models.Product) []models.Product {
	return SortProducts(FilterProducts(list, q.Filter), q.SortField, q.Direction)
}
