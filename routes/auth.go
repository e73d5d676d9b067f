package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/everscale-dev/storefront-api/controllers/user"
	"github.com/everscale-dev/storefront-api/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signin", userControllers.SignIn(deps.Identity, deps.Sessions, deps.AuthHub))
		authGroup.POST("/signup", userControllers.SignUp(deps.Identity, deps.Sessions, deps.AuthHub))
		authGroup.POST("/reset", userControllers.RequestPasswordReset(deps.Identity))
		authGroup.POST("/federated", userControllers.FederatedSignIn(deps.Sessions, deps.AuthHub))
		authGroup.POST("/guest", userControllers.CreateGuestSession())

		// Token-bearing auth endpoints
		authGroup.POST("/signout", middleware.ValidateToken, userControllers.SignOut(deps.AuthHub))
		authGroup.GET("/session", middleware.ValidateToken, userControllers.CurrentSession())
	}
}
