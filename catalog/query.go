package catalog

import (
	"sort"
	"strings"

	"github.com/everscale-dev/storefront-api/models"
)

// Sort modes accepted by Search.
const (
	SortRelevance  = "relevance" // rating desc, ties by price asc
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNameAsc    = "name-asc"
)

// Criteria are the catalog filter inputs. Nil price bounds mean unset;
// Category "All" (or empty) means no category filter; zero MinRating passes
// everything.
type Criteria struct {
	Term      string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating float64
	Sort      string
}

// Search filters and orders the collection. Pure: the input slice is never
// modified, the result holds only items from the input, and ties keep input
// order except where a sort mode defines its own tiebreak.
func Search(products []models.Product, crit Criteria) []models.Product {
	term := strings.ToLower(strings.TrimSpace(crit.Term))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matches(p, term, crit) {
			continue
		}
		out = append(out, p)
	}

	switch crit.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	default: // relevance
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Price < out[j].Price
		})
	}
	return out
}

func matches(p models.Product, term string, crit Criteria) bool {
	if term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			return false
		}
	}
	if crit.Category != "" && crit.Category != models.CategoryAll && p.Category != crit.Category {
		return false
	}
	if crit.MinPrice != nil && p.Price < *crit.MinPrice {
		return false
	}
	if crit.MaxPrice != nil && p.Price > *crit.MaxPrice {
		return false
	}
	if p.Rating < crit.MinRating {
		return false
	}
	return true
}
