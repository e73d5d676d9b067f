package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/notify"
)

type ToggleWishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GetWishlist returns the wishlist mapping.
// GET /user/wishlist
func GetWishlist(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": sess.Wishlist.Entries()})
	}
}

// ToggleWishlist adds the product when absent, removes it when present, and
// broadcasts the matching notification.
// POST /user/wishlist
func ToggleWishlist(sessions *ledger.Manager, cat *catalog.Store, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}

		var input ToggleWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := cat.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		if sess.Wishlist.Toggle(product) {
			hub.Broadcast("wishlist:added", product)
			c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to wishlist", "wishlisted": true})
			return
		}
		hub.Broadcast("wishlist:removed", product)
		c.JSON(http.StatusOK, gin.H{"message": product.Name + " removed from wishlist", "wishlisted": false})
	}
}

// MoveToCart moves a wishlist entry into the cart with qty 1 and tells the
// client to navigate to the cart view. Unknown ids are a no-op.
// POST /user/wishlist/:product_id/move-to-cart
func MoveToCart(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}

		if !sess.Wishlist.MoveToCart(c.Param("product_id"), sess.Cart) {
			c.JSON(http.StatusOK, gin.H{"message": "Item not in wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Moved to cart", "redirect": "/cart"})
	}
}
