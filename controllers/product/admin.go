package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/models"
)

// ProductInput is the admin create/update payload.
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

func (in ProductInput) validate() string {
	if !models.ValidCategory(in.Category) {
		return "Unknown category: " + in.Category
	}
	if in.Price < 0 {
		return "Price must be non-negative"
	}
	if in.Rating < 0 || in.Rating > 5 {
		return "Rating must be between 0 and 5"
	}
	return ""
}

// CreateProduct adds a product to the in-memory catalog. Admin edits are
// not written through to the store and do not survive a restart.
// POST /admin/products
func CreateProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			ID:          "p-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
			Name:        input.Name,
			Category:    input.Category,
			Price:       input.Price,
			Rating:      input.Rating,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		cat.Create(product)
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct overwrites an existing product.
// PUT /admin/products/:id
func UpdateProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			ID:          id,
			Name:        input.Name,
			Category:    input.Category,
			Price:       input.Price,
			Rating:      input.Rating,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := cat.Update(product); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct removes a product from the catalog.
// DELETE /admin/products/:id
func DeleteProduct(cat *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := cat.Delete(id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
