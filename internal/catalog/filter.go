// Package catalog holds the pure filter/sort/search pipeline applied to
// product collections before display. Nothing here touches storage.
package catalog

import (
	"math"
	"sort"
	"strings"

	"shopfront/internal/domain"
)

// SortOption selects the ordering applied after filtering.
type SortOption string

const (
	SortFeatured    SortOption = "featured"
	SortPriceLow    SortOption = "price-low"
	SortPriceHigh   SortOption = "price-high"
	SortNewest      SortOption = "newest"
	SortBestselling SortOption = "bestselling"
	SortRating      SortOption = "rating"
)

// Filter is the complete selection state of the product list. Every zero
// field means "no constraint": empty slices skip their pass entirely, nil
// price bounds default to 0 and +Inf, an empty query skips the search
// pass. All active passes are AND-combined.
type Filter struct {
	Categories   []string
	Brands       []string
	PriceMin     *float64
	PriceMax     *float64
	Ratings      []int
	DiscountOnly bool
	Sort         SortOption
	Query        string
}

// Apply runs the filter passes in order, then the stable sort, and returns
// a new slice. The input is never mutated; with no constraints and the
// featured sort the input order comes back unchanged.
func Apply(products []domain.Product, f Filter) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	result = append(result, products...)

	if len(f.Categories) > 0 {
		result = keep(result, func(p domain.Product) bool {
			return contains(f.Categories, p.Category)
		})
	}

	if len(f.Brands) > 0 {
		result = keep(result, func(p domain.Product) bool {
			return contains(f.Brands, p.Brand)
		})
	}

	if f.PriceMin != nil || f.PriceMax != nil {
		min, max := 0.0, math.Inf(1)
		if f.PriceMin != nil {
			min = *f.PriceMin
		}
		if f.PriceMax != nil {
			max = *f.PriceMax
		}
		result = keep(result, func(p domain.Product) bool {
			return p.Price >= min && p.Price <= max
		})
	}

	if len(f.Ratings) > 0 {
		result = keep(result, func(p domain.Product) bool {
			bucket := int(math.Floor(p.Rating))
			for _, r := range f.Ratings {
				if bucket == r {
					return true
				}
			}
			return false
		})
	}

	if f.DiscountOnly {
		result = keep(result, domain.Product.Discounted)
	}

	if f.Query != "" {
		result = Search(result, f.Query)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool { return result[i].IsNew && !result[j].IsNew })
	case SortBestselling:
		sort.SliceStable(result, func(i, j int) bool { return result[i].ReviewCount > result[j].ReviewCount })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	default:
		// featured: collection order unchanged
	}

	return result
}

// Search keeps the products whose name, category, brand or description
// contains the query, case-insensitively.
func Search(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(query)
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			result = append(result, p)
		}
	}
	return result
}

func keep(products []domain.Product, pred func(domain.Product) bool) []domain.Product {
	kept := products[:0]
	for _, p := range products {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
