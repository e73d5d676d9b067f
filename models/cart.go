package models

const (
	MinQty = 1
	MaxQty = 999
)

// CartLine is a product snapshot plus quantity. Lines are keyed by product
// id inside the cart mapping; a line never persists with qty outside
// [MinQty, MaxQty].
type CartLine struct {
	Product
	Qty int `json:"qty"`
}

// ClampQty forces qty into the [MinQty, MaxQty] range.
func ClampQty(qty int) int {
	if qty < MinQty {
		return MinQty
	}
	if qty > MaxQty {
		return MaxQty
	}
	return qty
}

// LineTotal is the price of the line (price × qty).
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}
