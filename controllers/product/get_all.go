package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/nav"
)

// GetProducts lists the catalog filtered and sorted by the query
// parameters (q, cat, min_price, max_price, min_rating, sort).
// GET /products
func GetProducts(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		crit := nav.ParseQuery(c.Request.URL.Query())
		results := catalog.Search(cat.Products(), crit)
		c.JSON(http.StatusOK, gin.H{
			"products": results,
			"count":    len(results),
		})
	}
}

// SearchInput is the explicit header-search submission.
type SearchInput struct {
	Term     string `json:"q"`
	Category string `json:"cat"`
}

// SubmitSearch turns an explicit search submission into the canonical
// catalog URL. Only this endpoint writes q/cat back; typing into filter
// controls never does.
// POST /search
func SubmitSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SearchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		query := nav.BuildQuery(input.Term, input.Category)
		redirect := "/products"
		if query != "" {
			redirect += "?" + query
		}
		c.JSON(http.StatusOK, gin.H{"redirect": redirect})
	}
}
