package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/everscale-dev/storefront-api/controllers/order"
	productControllers "github.com/everscale-dev/storefront-api/controllers/product"
	"github.com/everscale-dev/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.Catalog))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.Catalog))
			productAdmin.GET("", productControllers.GetProducts(deps.Catalog))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.Catalog))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.Catalog))
		}

		// ─────────── Order Lookup ───────────
		adminGroup.GET("/orders/:user_id", orderControllers.GetAdminUserOrdersHandler(deps.Sessions))
	}
}
