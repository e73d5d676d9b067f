package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/auth"
	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/notify"
)

// Deps carries the shared application state the handlers close over.
type Deps struct {
	Catalog  *catalog.Store
	Sessions *ledger.Manager
	Reviews  *ledger.ReviewLedger
	Identity *auth.Client
	AuthHub  *auth.Hub
	Notify   *notify.Hub
}

// SetupRoutes is the single entry-point that wires up the public, user, and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Public catalog + contact + notifications
	SetupPublicRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
