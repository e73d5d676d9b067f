package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everscale-dev/storefront-api/models"
)

func fixtureProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Wireless Headphones", Category: models.CategoryElectronics, Price: 99.99, Rating: 4.5, Description: "Noise-cancelling over-ear headphones."},
		{ID: "2", Name: "Smartwatch", Category: models.CategoryElectronics, Price: 199.50, Rating: 4.0, Description: "Fitness tracking on your wrist."},
		{ID: "3", Name: "Denim Jacket", Category: models.CategoryFashion, Price: 59.00, Rating: 4.5, Description: "Classic fit in washed indigo."},
		{ID: "4", Name: "Yoga Mat", Category: models.CategorySports, Price: 25.00, Rating: 3.8, Description: "Non-slip with alignment guides."},
		{ID: "5", Name: "Desk Lamp", Category: models.CategoryHome, Price: 35.00, Rating: 4.2, Description: "Adjustable LED lamp."},
	}
}

func f(v float64) *float64 { return &v }

func TestSearchReturnsSubsetOfInput(t *testing.T) {
	products := fixtureProducts()
	ids := make(map[string]bool)
	for _, p := range products {
		ids[p.ID] = true
	}

	criteria := []Criteria{
		{},
		{Term: "lamp"},
		{Category: models.CategoryElectronics},
		{MinPrice: f(30), MaxPrice: f(100)},
		{MinRating: 4.0, Sort: SortPriceDesc},
		{Term: "e", Sort: SortNameAsc},
	}

	for _, crit := range criteria {
		out := Search(products, crit)
		seen := make(map[string]bool)
		for _, p := range out {
			assert.True(t, ids[p.ID], "fabricated item %s", p.ID)
			assert.False(t, seen[p.ID], "duplicated item %s", p.ID)
			seen[p.ID] = true
		}
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	Search(products, Criteria{Sort: SortPriceDesc})
	assert.Equal(t, fixtureProducts(), products)
}

func TestSearchResultLengthMatchesPredicateCount(t *testing.T) {
	products := fixtureProducts()
	crit := Criteria{Category: models.CategoryElectronics, MinPrice: f(50)}

	want := 0
	for _, p := range products {
		if p.Category == models.CategoryElectronics && p.Price >= 50 {
			want++
		}
	}

	for _, sortMode := range []string{SortRelevance, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc} {
		crit.Sort = sortMode
		assert.Len(t, Search(products, crit), want, "sort=%s", sortMode)
	}
}

func TestSearchTermMatchesNameDescriptionCategory(t *testing.T) {
	products := fixtureProducts()

	// Case-insensitive name match
	out := Search(products, Criteria{Term: "SMARTWATCH"})
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	// Description match
	out = Search(products, Criteria{Term: "alignment"})
	require.Len(t, out, 1)
	assert.Equal(t, "4", out[0].ID)

	// Category match
	out = Search(products, Criteria{Term: "fashion"})
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestSearchPriceAscOrdering(t *testing.T) {
	out := Search(fixtureProducts(), Criteria{Sort: SortPriceAsc})
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Price, out[i].Price)
	}
}

func TestSearchMinPriceThenSortScenario(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "A", Price: 10},
		{ID: "b", Name: "B", Price: 30},
		{ID: "c", Name: "C", Price: 20},
	}

	out := Search(products, Criteria{MinPrice: f(15)})
	require.Len(t, out, 2)

	out = Search(products, Criteria{MinPrice: f(15), Sort: SortPriceAsc})
	require.Len(t, out, 2)
	assert.Equal(t, 20.0, out[0].Price)
	assert.Equal(t, 30.0, out[1].Price)
}

func TestSearchRelevanceTiebreak(t *testing.T) {
	products := []models.Product{
		{ID: "cheap", Rating: 4.5, Price: 10},
		{ID: "top", Rating: 5.0, Price: 99},
		{ID: "dear", Rating: 4.5, Price: 50},
	}

	out := Search(products, Criteria{Sort: SortRelevance})
	require.Len(t, out, 3)
	assert.Equal(t, "top", out[0].ID)
	assert.Equal(t, "cheap", out[1].ID) // rating tie broken by price asc
	assert.Equal(t, "dear", out[2].ID)
}

func TestSearchStableOnTies(t *testing.T) {
	products := []models.Product{
		{ID: "first", Name: "Same", Price: 10, Rating: 4},
		{ID: "second", Name: "Same", Price: 10, Rating: 4},
		{ID: "third", Name: "Same", Price: 10, Rating: 4},
	}

	for _, sortMode := range []string{SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc, SortRelevance} {
		out := Search(products, Criteria{Sort: sortMode})
		require.Len(t, out, 3)
		assert.Equal(t, "first", out[0].ID, "sort=%s", sortMode)
		assert.Equal(t, "second", out[1].ID, "sort=%s", sortMode)
		assert.Equal(t, "third", out[2].ID, "sort=%s", sortMode)
	}
}

func TestSearchCategorySentinel(t *testing.T) {
	products := fixtureProducts()
	assert.Len(t, Search(products, Criteria{Category: models.CategoryAll}), len(products))
	assert.Len(t, Search(products, Criteria{Category: ""}), len(products))
	assert.Len(t, Search(products, Criteria{Category: models.CategoryElectronics}), 2)
}

func TestSearchMinRating(t *testing.T) {
	out := Search(fixtureProducts(), Criteria{MinRating: 4.3})
	require.Len(t, out, 2)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Rating, 4.3)
	}
}
