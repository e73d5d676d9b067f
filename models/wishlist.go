package models

// WishlistEntry is a product snapshot; presence in the wishlist mapping is
// the whole state, there is no quantity.
type WishlistEntry struct {
	Product
}
