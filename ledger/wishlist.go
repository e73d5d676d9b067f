package ledger

import (
	"sync"

	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/store"
)

const wishlistKey = "wishlist_v1"

// WishlistLedger maps product id → wishlist entry; presence is the whole
// state. Persisted on every mutation like the cart.
type WishlistLedger struct {
	mu      sync.Mutex
	kv      store.KV
	entries map[string]models.WishlistEntry
}

func NewWishlistLedger(kv store.KV) *WishlistLedger {
	entries := make(map[string]models.WishlistEntry)
	kv.Load(wishlistKey, &entries)
	return &WishlistLedger{kv: kv, entries: entries}
}

// Toggle adds the product if absent, removes it if present. Returns true
// when the product was added, false when removed, so the caller can emit
// the matching notification.
func (w *WishlistLedger) Toggle(p models.Product) (added bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entries[p.ID]; ok {
		delete(w.entries, p.ID)
		added = false
	} else {
		w.entries[p.ID] = models.WishlistEntry{Product: p}
		added = true
	}
	w.kv.Save(wishlistKey, w.entries)
	return added
}

// MoveToCart moves the entry for id into the cart with qty 1 and reports
// whether anything moved; unknown ids are a no-op. A true return tells the
// caller to navigate to the cart view.
func (w *WishlistLedger) MoveToCart(id string, cart *CartLedger) bool {
	w.mu.Lock()
	entry, ok := w.entries[id]
	if !ok {
		w.mu.Unlock()
		return false
	}
	delete(w.entries, id)
	w.kv.Save(wishlistKey, w.entries)
	w.mu.Unlock()

	cart.AddToCart(entry.Product, 1)
	return true
}

// Entries returns a copy of the mapping.
func (w *WishlistLedger) Entries() map[string]models.WishlistEntry {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make(map[string]models.WishlistEntry, len(w.entries))
	for id, e := range w.entries {
		out[id] = e
	}
	return out
}

// Has reports whether the product is wishlisted.
func (w *WishlistLedger) Has(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.entries[id]
	return ok
}
