package ledger

import (
	"sync"

	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/store"
)

const cartKey = "cart_v1"

// CartLedger maps product id → cart line. Every mutation writes the whole
// mapping back to the store before returning; the persisted copy is the
// source of truth across restarts and is read once at construction.
type CartLedger struct {
	mu    sync.Mutex
	kv    store.KV
	lines map[string]models.CartLine
}

// NewCartLedger loads the persisted cart, or starts empty when nothing
// usable is stored.
func NewCartLedger(kv store.KV) *CartLedger {
	lines := make(map[string]models.CartLine)
	kv.Load(cartKey, &lines)
	return &CartLedger{kv: kv, lines: lines}
}

// AddToCart inserts a line for the product, or bumps the existing line's
// quantity. The resulting qty is always clamped to [1,999].
func (c *CartLedger) AddToCart(p models.Product, qty int) models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[p.ID]
	if ok {
		line.Qty = models.ClampQty(line.Qty + qty)
	} else {
		line = models.CartLine{Product: p, Qty: models.ClampQty(qty)}
	}
	c.lines[p.ID] = line
	c.kv.Save(cartKey, c.lines)
	return line
}

// UpdateQty overwrites the quantity of an existing line, clamped to
// [1,999]. Unknown ids are silently ignored.
func (c *CartLedger) UpdateQty(id string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[id]
	if !ok {
		return
	}
	line.Qty = models.ClampQty(qty)
	c.lines[id] = line
	c.kv.Save(cartKey, c.lines)
}

// RemoveItem deletes the line for id; no error if absent. The key is
// removed entirely, zero-qty lines never persist.
func (c *CartLedger) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.lines, id)
	c.kv.Save(cartKey, c.lines)
}

// ClearCart replaces the mapping with an empty one.
func (c *CartLedger) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = make(map[string]models.CartLine)
	c.kv.Save(cartKey, c.lines)
}

// Lines returns a copy of the mapping.
func (c *CartLedger) Lines() map[string]models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]models.CartLine, len(c.lines))
	for id, line := range c.lines {
		out[id] = line
	}
	return out
}

// Snapshot returns the lines as a slice, for order placement.
func (c *CartLedger) Snapshot() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line)
	}
	return out
}

// Total sums price × qty across all lines.
func (c *CartLedger) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.LineTotal()
	}
	return total
}
