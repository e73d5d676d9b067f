package routes

import (
	"github.com/gin-gonic/gin"

	contactControllers "github.com/everscale-dev/storefront-api/controllers/contact"
	productControllers "github.com/everscale-dev/storefront-api/controllers/product"
)

// SetupPublicRoutes registers the unauthenticated storefront surface.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(deps.Catalog))
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog))
	r.GET("/products/:id/reviews", productControllers.GetReviews(deps.Reviews))
	r.POST("/search", productControllers.SubmitSearch())

	// ──────────────── Contact ────────────────
	r.POST("/contact", contactControllers.SubmitContactForm())

	// ──────────────── Notifications ────────────────
	r.GET("/ws", deps.Notify.Handler)
}
