package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everscale-dev/storefront-api/models"
)

func TestPlaceOrderAppendsNewestFirst(t *testing.T) {
	orders := NewOrderLedger(testKV())

	first := orders.PlaceOrder([]models.CartLine{{Product: product("p1", 10), Qty: 2}}, 20)
	assert.Equal(t, 20.0, first.Total)
	require.Len(t, first.Items, 1)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Date.IsZero())

	second := orders.PlaceOrder([]models.CartLine{{Product: product("p2", 5), Qty: 1}}, 5)

	list := orders.Orders()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	// Prior order is intact.
	assert.Equal(t, 20.0, list[1].Total)
	assert.Equal(t, "p1", list[1].Items[0].ID)
}

func TestOrdersPersistAcrossReload(t *testing.T) {
	kv := testKV()
	orders := NewOrderLedger(kv)
	placed := orders.PlaceOrder([]models.CartLine{{Product: product("p1", 10), Qty: 2}}, 20)

	reloaded := NewOrderLedger(kv)
	list := reloaded.Orders()
	require.Len(t, list, 1)
	assert.Equal(t, placed.ID, list[0].ID)
	assert.Equal(t, 20.0, list[0].Total)
}

func TestOrdersEmptyLedger(t *testing.T) {
	orders := NewOrderLedger(testKV())
	assert.Empty(t, orders.Orders())
}
