package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/notify"
)

// PlaceOrderHandler snapshots the cart into a new order, clears the cart,
// and broadcasts the order. Used for pay-on-delivery checkouts; card
// checkouts go through the checkout session flow instead.
// POST /user/orders
func PlaceOrderHandler(sessions *ledger.Manager, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sess := sessions.Session(userIDVal.(string))

		snapshot := sess.Cart.Snapshot()
		if len(snapshot) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		order := sess.Orders.PlaceOrder(snapshot, sess.Cart.Total())
		sess.Cart.ClearCart()
		hub.Broadcast("order:placed", order)

		c.JSON(http.StatusCreated, order)
	}
}

// GetUserOrdersHandler lists the user's orders, newest first.
// GET /user/orders
func GetUserOrdersHandler(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sess := sessions.Session(userIDVal.(string))
		c.JSON(http.StatusOK, sess.Orders.Orders())
	}
}

// GetAdminUserOrdersHandler lists any user's orders for the admin surface.
// GET /admin/orders/:user_id
func GetAdminUserOrdersHandler(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusOK, sessions.Session(userID).Orders.Orders())
	}
}
