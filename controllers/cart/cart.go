package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
}

type UpdateQtyInput struct {
	Qty int `json:"qty"`
}

func userSession(c *gin.Context, sessions *ledger.Manager) (*ledger.Session, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return sessions.Session(userIDVal.(string)), true
}

// GetUserCart returns the cart mapping plus its running total.
// GET /user/cart
func GetUserCart(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": sess.Cart.Lines(),
			"total": sess.Cart.Total(),
		})
	}
}

// AddCartItem adds a product to the cart, bumping qty when the line exists.
// Qty defaults to 1 and is clamped to [1,999].
// POST /user/cart
func AddCartItem(sessions *ledger.Manager, cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Qty == 0 {
			input.Qty = 1
		}

		product, err := cat.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		line := sess.Cart.AddToCart(product, input.Qty)
		c.JSON(http.StatusCreated, line)
	}
}

// UpdateCartItemQty overwrites a line's quantity, clamped to [1,999].
// Missing lines are ignored, matching the ledger contract.
// PUT /user/cart/:product_id
func UpdateCartItemQty(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}

		var input UpdateQtyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess.Cart.UpdateQty(c.Param("product_id"), input.Qty)
		c.JSON(http.StatusOK, gin.H{"items": sess.Cart.Lines()})
	}
}

// DeleteCartItem removes a line; absent ids are not an error.
// DELETE /user/cart/:product_id
func DeleteCartItem(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}
		sess.Cart.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// ClearUserCart empties the cart.
// DELETE /user/cart
func ClearUserCart(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := userSession(c, sessions)
		if !ok {
			return
		}
		sess.Cart.ClearCart()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
