package models

// Categories form a fixed set; "All" is the filter sentinel, never stored
// on a product.
const (
	CategoryAll         = "All"
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home"
	CategorySports      = "Sports"
	CategoryBooks       = "Books"
)

// Categories lists every assignable product category, in display order.
var Categories = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategorySports,
	CategoryBooks,
}

// Product is the unit of the catalog. IDs are opaque: seed products carry a
// string-prefixed id, remotely fetched ones keep their numeric id as text.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// ValidCategory reports whether cat is an assignable product category.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
