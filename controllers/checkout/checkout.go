package checkoutControllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/notify"
)

const pendingCheckoutKey = "pending_checkout"

// PendingCheckout is the transient record between session creation and the
// gateway's confirmation. It is deleted as soon as it is consumed.
type PendingCheckout struct {
	Ref       string            `json:"ref"`
	UserID    string            `json:"user_id"`
	Items     []models.CartLine `json:"items"`
	Total     float64           `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
}

type CreateSessionInput struct {
	Currency string `json:"currency"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// CreateCheckoutSession snapshots the cart, parks it as pending_checkout,
// and returns the gateway's redirect URL.
// POST /create-checkout-session
func CreateCheckoutSession(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		sess := sessions.Session(userID)

		var input CreateSessionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Currency == "" {
			input.Currency = "USD"
		}

		snapshot := sess.Cart.Snapshot()
		if len(snapshot) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		total := sess.Cart.Total()

		// The user id rides inside the ref so the webhook can find the
		// pending record without any other state.
		ref := userID + "|" + uuid.NewString()

		pending := PendingCheckout{
			Ref:       ref,
			UserID:    userID,
			Items:     snapshot,
			Total:     total,
			CreatedAt: time.Now(),
		}
		sess.KV.Save(pendingCheckoutKey, pending)

		url, gatewayRef, err := createGatewaySession(
			ref,
			fmt.Sprintf("%.2f", total),
			input.Currency,
			fmt.Sprintf("EverScale order (%d items)", len(snapshot)),
			input.Name,
			input.Email,
		)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url, "ref": gatewayRef})
	}
}

// WebhookHandler consumes the gateway confirmation: on an approved
// transaction it places the order from the pending record, deletes the
// record, clears the cart and broadcasts the order. Anything else leaves
// the pending record for a later attempt.
// POST /checkout/webhook
func WebhookHandler(sessions *ledger.Manager, hub *notify.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
			return
		}

		ref := c.PostForm("tran_cartid")
		tranStatus := c.PostForm("tran_status") // "A" = approved

		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing tran_cartid"})
			return
		}
		if tranStatus != "A" {
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		userID, _, ok := strings.Cut(ref, "|")
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed tran_cartid"})
			return
		}
		sess := sessions.Session(userID)

		var pending PendingCheckout
		if !sess.KV.Load(pendingCheckoutKey, &pending) || pending.Ref != ref {
			log.Printf("❌ No pending checkout for ref %s", ref)
			c.JSON(http.StatusNotFound, gin.H{"error": "no pending checkout for reference"})
			return
		}

		order := sess.Orders.PlaceOrder(pending.Items, pending.Total)
		sess.KV.Delete(pendingCheckoutKey)
		sess.Cart.ClearCart()
		hub.Broadcast("order:placed", order)

		log.Printf("✅ Order %s placed for checkout %s", order.ID, ref)
		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order_id": order.ID})
	}
}
