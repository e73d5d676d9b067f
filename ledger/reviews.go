package ledger

import (
	"strconv"
	"sync"
	"time"

	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/store"
)

// ReviewLedger keeps per-product review sequences, newest-first, each under
// its own derived key (reviews_<productId>).
type ReviewLedger struct {
	mu sync.Mutex
	kv store.KV
}

func NewReviewLedger(kv store.KV) *ReviewLedger {
	return &ReviewLedger{kv: kv}
}

func reviewKey(productID string) string {
	return "reviews_" + productID
}

// Add prepends a review for the product. Rating is clamped to [1,5].
func (r *ReviewLedger) Add(productID string, rating int, text string) models.Review {
	review := models.Review{
		ID:     strconv.FormatInt(time.Now().UnixMilli(), 10),
		Rating: models.ClampRating(rating),
		Text:   text,
		Date:   time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var reviews []models.Review
	r.kv.Load(reviewKey(productID), &reviews)
	reviews = append([]models.Review{review}, reviews...)
	r.kv.Save(reviewKey(productID), reviews)
	return review
}

// List returns the product's reviews, newest-first.
func (r *ReviewLedger) List(productID string) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()

	var reviews []models.Review
	r.kv.Load(reviewKey(productID), &reviews)
	return reviews
}
