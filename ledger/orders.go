package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/store"
)

const ordersKey = "orders_v1"

// OrderLedger is the append-only, newest-first sequence of completed
// checkouts. The whole sequence is persisted on each append; orders are
// never modified or deleted.
type OrderLedger struct {
	mu     sync.Mutex
	kv     store.KV
	orders []models.Order
}

func NewOrderLedger(kv store.KV) *OrderLedger {
	var orders []models.Order
	kv.Load(ordersKey, &orders)
	return &OrderLedger{kv: kv, orders: orders}
}

// PlaceOrder builds an order from the cart snapshot and prepends it.
func (o *OrderLedger) PlaceOrder(snapshot []models.CartLine, total float64) models.Order {
	order := models.Order{
		ID:    generateOrderRef(),
		Items: snapshot,
		Total: total,
		Date:  time.Now(),
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.orders = append([]models.Order{order}, o.orders...)
	o.kv.Save(ordersKey, o.orders)
	return order
}

// Orders returns the persisted sequence verbatim, newest-first.
func (o *OrderLedger) Orders() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]models.Order, len(o.orders))
	copy(out, o.orders)
	return out
}

// generateOrderRef derives a unique order id from the current timestamp.
// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
