package ledger

import (
	"sync"

	"github.com/everscale-dev/storefront-api/store"
)

// Session bundles one user's ledgers over a user-namespaced view of the
// store, so the fixed keys (cart_v1, wishlist_v1, orders_v1, reviews_*)
// stay scoped per user.
type Session struct {
	KV       store.KV
	Cart     *CartLedger
	Wishlist *WishlistLedger
	Orders   *OrderLedger
}

// NewSession loads (or starts) the ledgers for one user namespace.
// Reviews are store-wide, not per user, so they live outside the session.
func NewSession(kv store.KV) *Session {
	return &Session{
		KV:       kv,
		Cart:     NewCartLedger(kv),
		Wishlist: NewWishlistLedger(kv),
		Orders:   NewOrderLedger(kv),
	}
}

// Manager hands out per-user sessions, creating each one lazily on first
// use and caching it for the life of the process.
type Manager struct {
	mu       sync.Mutex
	kv       store.KV
	sessions map[string]*Session
}

func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv, sessions: make(map[string]*Session)}
}

// Session returns the ledgers for userID.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := NewSession(store.Namespaced(m.kv, "user:"+userID))
	m.sessions[userID] = s
	return s
}
