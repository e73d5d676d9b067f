package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/models"
)

const profileKey = "profile_v1"

type UpdateUserInput struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	Picture *string         `json:"picture"`
	Address *models.Address `json:"address"`
}

// GetUser returns the caller's profile.
// GET /user
func GetUser(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sess := sessions.Session(userIDVal.(string))

		var profile models.Profile
		if !sess.KV.Load(profileKey, &profile) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateUser applies a partial profile update; only the fields present in
// the payload change.
// PUT /user
func UpdateUser(sessions *ledger.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sess := sessions.Session(userIDVal.(string))

		var profile models.Profile
		if !sess.KV.Load(profileKey, &profile) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			profile.Name = *input.Name
		}
		if input.Phone != nil {
			profile.Phone = *input.Phone
		}
		if input.Picture != nil {
			profile.Picture = *input.Picture
		}
		if input.Address != nil {
			profile.Address = *input.Address
		}

		sess.KV.Save(profileKey, profile)
		c.JSON(http.StatusOK, profile)
	}
}
