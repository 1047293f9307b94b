package catalog

import (
	"testing"

	"shopfront/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

// sampleCatalog mirrors the shape of the seeded product list: five price
// points, mixed categories, brands, ratings and discounts.
func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Akıllı Telefon X", Price: 7999.99, OldPrice: price(8999.99), Rating: 4.5, ReviewCount: 128, IsNew: true, IsSale: true, Category: "Elektronik", Brand: "TechX"},
		{ID: 2, Name: "Kablosuz Kulaklık Pro", Price: 1299.99, Rating: 4.8, ReviewCount: 95, IsNew: true, Category: "Elektronik", Brand: "AudioMax", Description: "Yüksek ses kalitesi"},
		{ID: 3, Name: "Akıllı Saat Ultra", Price: 2499.99, OldPrice: price(2999.99), Rating: 4.2, ReviewCount: 67, IsSale: true, Category: "Elektronik", Brand: "TechX"},
		{ID: 4, Name: "Dizüstü Bilgisayar Pro", Price: 12999.99, Rating: 3.7, ReviewCount: 42, Category: "Elektronik", Brand: "CompTech"},
		{ID: 5, Name: "Bluetooth Hoparlör", Price: 899.99, OldPrice: price(1199.99), Rating: 4.6, ReviewCount: 112, IsSale: true, Category: "Ev & Yaşam", Brand: "AudioMax"},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_NoFiltersFeaturedKeepsInputOrder(t *testing.T) {
	catalog := sampleCatalog()

	result := Apply(catalog, Filter{Sort: SortFeatured})
	assert.Equal(t, catalog, result)

	// The zero filter behaves the same: featured is the default.
	result = Apply(catalog, Filter{})
	assert.Equal(t, catalog, result)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()

	Apply(catalog, Filter{Sort: SortPriceHigh, DiscountOnly: true})
	assert.Equal(t, sampleCatalog(), catalog)
}

func TestApply_PriceRangeInclusiveBounds(t *testing.T) {
	result := Apply(sampleCatalog(), Filter{PriceMin: price(1000), PriceMax: price(3000)})
	assert.Equal(t, []int{2, 3}, ids(result))

	// Bounds are inclusive.
	result = Apply(sampleCatalog(), Filter{PriceMin: price(1299.99), PriceMax: price(1299.99)})
	assert.Equal(t, []int{2}, ids(result))

	// A missing bound defaults to 0 / +Inf.
	result = Apply(sampleCatalog(), Filter{PriceMin: price(5000)})
	assert.Equal(t, []int{1, 4}, ids(result))
	result = Apply(sampleCatalog(), Filter{PriceMax: price(1000)})
	assert.Equal(t, []int{5}, ids(result))
}

func TestApply_CategoryAndBrandMembership(t *testing.T) {
	result := Apply(sampleCatalog(), Filter{Categories: []string{"Ev & Yaşam"}})
	assert.Equal(t, []int{5}, ids(result))

	result = Apply(sampleCatalog(), Filter{Brands: []string{"TechX", "CompTech"}})
	assert.Equal(t, []int{1, 3, 4}, ids(result))

	// Passes are AND-combined.
	result = Apply(sampleCatalog(), Filter{Categories: []string{"Elektronik"}, Brands: []string{"AudioMax"}})
	assert.Equal(t, []int{2}, ids(result))
}

func TestApply_RatingBucketsUseFloor(t *testing.T) {
	result := Apply(sampleCatalog(), Filter{Ratings: []int{4}})
	assert.Equal(t, []int{1, 2, 3, 5}, ids(result))

	result = Apply(sampleCatalog(), Filter{Ratings: []int{3}})
	assert.Equal(t, []int{4}, ids(result))

	result = Apply(sampleCatalog(), Filter{Ratings: []int{5}})
	assert.Empty(t, result)
}

func TestApply_DiscountOnly(t *testing.T) {
	result := Apply(sampleCatalog(), Filter{DiscountOnly: true})
	assert.Equal(t, []int{1, 3, 5}, ids(result))
}

func TestApply_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	result := Apply(sampleCatalog(), Filter{Query: "akıllı"})
	assert.Equal(t, []int{1, 3}, ids(result))

	// Brand and description also match.
	result = Apply(sampleCatalog(), Filter{Query: "audiomax"})
	assert.Equal(t, []int{2, 5}, ids(result))
	result = Apply(sampleCatalog(), Filter{Query: "ses kalitesi"})
	assert.Equal(t, []int{2}, ids(result))

	result = Apply(sampleCatalog(), Filter{Query: "yok böyle ürün"})
	assert.Empty(t, result)
}

func TestApply_SortOrders(t *testing.T) {
	tests := []struct {
		name string
		sort SortOption
		want []int
	}{
		{"price ascending", SortPriceLow, []int{5, 2, 3, 1, 4}},
		{"price descending", SortPriceHigh, []int{4, 1, 3, 2, 5}},
		{"newest first, stable otherwise", SortNewest, []int{1, 2, 3, 4, 5}},
		{"bestselling by review count", SortBestselling, []int{1, 5, 2, 3, 4}},
		{"rating descending", SortRating, []int{2, 5, 1, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(sampleCatalog(), Filter{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(result))
		})
	}
}

func TestApply_NewestIsStableWithinGroups(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, IsNew: false},
		{ID: 2, IsNew: true},
		{ID: 3, IsNew: false},
		{ID: 4, IsNew: true},
	}

	result := Apply(catalog, Filter{Sort: SortNewest})
	assert.Equal(t, []int{2, 4, 1, 3}, ids(result))
}

func TestProperty_PriceFilterRespectsBounds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every result lies within the inclusive bounds", prop.ForAll(
		func(min, max float64) bool {
			if min > max {
				min, max = max, min
			}
			result := Apply(sampleCatalog(), Filter{PriceMin: &min, PriceMax: &max})
			for _, p := range result {
				if p.Price < min || p.Price > max {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 15000),
		gen.Float64Range(0, 15000),
	))

	properties.Property("widening the range never loses results", prop.ForAll(
		func(max float64) bool {
			narrow := Apply(sampleCatalog(), Filter{PriceMax: &max})
			wide := Apply(sampleCatalog(), Filter{})
			return len(narrow) <= len(wide)
		},
		gen.Float64Range(0, 15000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSearch_StandalonePass(t *testing.T) {
	result := Search(sampleCatalog(), "PRO")
	require.Len(t, result, 2)
	assert.Equal(t, []int{2, 4}, ids(result))
}
