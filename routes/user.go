package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/everscale-dev/storefront-api/controllers/cart"
	checkoutControllers "github.com/everscale-dev/storefront-api/controllers/checkout"
	orderControllers "github.com/everscale-dev/storefront-api/controllers/order"
	productControllers "github.com/everscale-dev/storefront-api/controllers/product"
	userControllers "github.com/everscale-dev/storefront-api/controllers/user"
	"github.com/everscale-dev/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus the checkout
// session endpoint. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(deps.Sessions))  // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(deps.Sessions)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(deps.Sessions))                       // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Sessions, deps.Catalog))        // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartItemQty(deps.Sessions))      // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Sessions))      // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(deps.Sessions))                  // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", cartControllers.GetWishlist(deps.Sessions))                                     // GET /user/wishlist
			wishlistGroup.POST("/", cartControllers.ToggleWishlist(deps.Sessions, deps.Catalog, deps.Notify))      // POST /user/wishlist
			wishlistGroup.POST("/:product_id/move-to-cart", cartControllers.MoveToCart(deps.Sessions))             // POST /user/wishlist/:product_id/move-to-cart
		}

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(deps.Sessions))              // GET /user/orders
		userGroup.POST("/orders", orderControllers.PlaceOrderHandler(deps.Sessions, deps.Notify))   // POST /user/orders

		// ──────────────── Reviews ────────────────
		userGroup.POST("/products/:id/reviews", productControllers.AddReview(deps.Catalog, deps.Reviews)) // POST /user/products/:id/reviews
	}

	// Checkout session endpoint keeps its historical top-level path.
	r.POST("/create-checkout-session", middleware.ValidateToken, checkoutControllers.CreateCheckoutSession(deps.Sessions))

	// Gateway confirmation callback (no auth; the gateway posts here).
	r.POST("/checkout/webhook", checkoutControllers.WebhookHandler(deps.Sessions, deps.Notify))
}
