package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/ledger"
	"github.com/everscale-dev/storefront-api/models"
	"github.com/everscale-dev/storefront-api/store"
)

func productRouter() (*gin.Engine, *catalog.Store) {
	gin.SetMode(gin.TestMode)
	cat := catalog.NewStore()
	reviews := ledger.NewReviewLedger(store.New(store.NewMemoryBackend()))

	r := gin.New()
	r.GET("/products", GetProducts(cat))
	r.GET("/products/:id", GetProductByID(cat))
	r.POST("/search", SubmitSearch())
	r.GET("/products/:id/reviews", GetReviews(reviews))
	r.POST("/products/:id/reviews", AddReview(cat, reviews))
	r.POST("/admin/products", CreateProduct(cat))
	r.PUT("/admin/products/:id", UpdateProduct(cat))
	r.DELETE("/admin/products/:id", DeleteProduct(cat))
	return r, cat
}

type listResponse struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
}

func TestGetProductsAppliesQueryParams(t *testing.T) {
	r, cat := productRouter()
	cat.Create(models.Product{ID: "cheap", Name: "Cheap Widget", Category: models.CategoryHome, Price: 5, Rating: 4})
	cat.Create(models.Product{ID: "dear", Name: "Dear Widget", Category: models.CategoryHome, Price: 500, Rating: 4})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products?q=widget&min_price=100&sort=price-asc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "dear", resp.Products[0].ID)
}

func TestGetProductByIDNotFound(t *testing.T) {
	r, _ := productRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products/ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitSearchBuildsRedirect(t *testing.T) {
	r, _ := productRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/search", strings.NewReader(`{"q": "lamp", "cat": "Home"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/products?cat=Home&q=lamp", resp["redirect"])

	// "All" is omitted from the query string.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/search", strings.NewReader(`{"q": "lamp", "cat": "All"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "/products?q=lamp", resp["redirect"])
}

func TestAdminCreateUpdateDelete(t *testing.T) {
	r, cat := productRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/products", strings.NewReader(
		`{"name": "New Thing", "category": "Home", "price": 12.5, "rating": 4.5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", "/admin/products/"+created.ID, strings.NewReader(
		`{"name": "Renamed Thing", "category": "Home", "price": 15}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := cat.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Thing", got.Name)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/admin/products/"+created.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, err = cat.Get(created.ID)
	assert.Error(t, err)
}

func TestAdminCreateRejectsBadCategory(t *testing.T) {
	r, _ := productRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/products", strings.NewReader(
		`{"name": "X", "category": "Nonsense", "price": 1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewsEndToEnd(t *testing.T) {
	r, cat := productRouter()
	cat.Create(models.Product{ID: "p1", Name: "Lamp", Category: models.CategoryHome, Price: 10})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products/p1/reviews", strings.NewReader(`{"rating": 5, "text": "bright"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products/p1/reviews", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)

	// Reviews on unknown products are rejected.
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/products/ghost/reviews", strings.NewReader(`{"rating": 5, "text": "?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
