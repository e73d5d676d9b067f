package models

import "time"

// Review is a per-product customer review. Reviews are kept newest-first
// under a storage key derived from the product id.
type Review struct {
	ID     string    `json:"id"`
	Rating int       `json:"rating"` // 1..5
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
}

// ClampRating forces a review rating into [1,5].
func ClampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
