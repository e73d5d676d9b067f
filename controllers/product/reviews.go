package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
)

type ReviewInput struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

// GetReviews lists a product's reviews, newest first.
// GET /products/:id/reviews
func GetReviews(reviews *ledger.ReviewLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reviews.List(c.Param("id")))
	}
}

// AddReview appends a review to a product.
// POST /products/:id/reviews
func AddReview(cat *catalog.Store, reviews *ledger.ReviewLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := cat.Get(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review := reviews.Add(id, input.Rating, input.Text)
		c.JSON(http.StatusCreated, review)
	}
}
