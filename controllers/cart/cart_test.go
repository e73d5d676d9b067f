package cartControllers

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
	"github.com/everscale-dev/storefront-api/notify"
	"github.com/everscale-dev/storefront-api/store"
)

type testEnv struct {
	router   *gin.Engine
	sessions *ledger.Manager
	catalog  *catalog.Store
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	cat := catalog.NewStore()
	cat.Create(models.Product{ID: "p1", Name: "Desk Lamp", Category: models.CategoryHome, Price: 35})

	sessions := ledger.NewManager(store.New(store.NewMemoryBackend()))
	hub := notify.NewHub()

	r := gin.New()
	authed := func(c *gin.Context) { c.Set("user_id", "u1") }

	r.GET("/user/cart", authed, GetUserCart(sessions))
	r.POST("/user/cart", authed, AddCartItem(sessions, cat))
	r.PUT("/user/cart/:product_id", authed, UpdateCartItemQty(sessions))
	r.DELETE("/user/cart/:product_id", authed, DeleteCartItem(sessions))
	r.DELETE("/user/cart", authed, ClearUserCart(sessions))
	r.GET("/user/wishlist", authed, GetWishlist(sessions))
	r.POST("/user/wishlist", authed, ToggleWishlist(sessions, cat, hub))
	r.POST("/user/wishlist/:product_id/move-to-cart", authed, MoveToCart(sessions))

	return &testEnv{router: r, sessions: sessions, catalog: cat}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	e.router.ServeHTTP(w, req)
	return w
}

func TestAddCartItemEndpoint(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/user/cart", `{"product_id": "p1", "qty": 2}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var line models.CartLine
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	assert.Equal(t, "p1", line.ID)
	assert.Equal(t, 2, line.Qty)

	// Same product again increments.
	env.do("POST", "/user/cart", `{"product_id": "p1", "qty": 3}`)
	lines := env.sessions.Session("u1").Cart.Lines()
	assert.Equal(t, 5, lines["p1"].Qty)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	env := newTestEnv()
	w := env.do("POST", "/user/cart", `{"product_id": "ghost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQtyClampsThroughAPI(t *testing.T) {
	env := newTestEnv()
	env.do("POST", "/user/cart", `{"product_id": "p1", "qty": 5}`)

	env.do("PUT", "/user/cart/p1", `{"qty": 5000}`)
	assert.Equal(t, 999, env.sessions.Session("u1").Cart.Lines()["p1"].Qty)

	env.do("PUT", "/user/cart/p1", `{"qty": -1}`)
	assert.Equal(t, 1, env.sessions.Session("u1").Cart.Lines()["p1"].Qty)
}

func TestDeleteAndClearCart(t *testing.T) {
	env := newTestEnv()
	env.do("POST", "/user/cart", `{"product_id": "p1"}`)

	w := env.do("DELETE", "/user/cart/p1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.sessions.Session("u1").Cart.Lines())

	// Clearing an already empty cart succeeds.
	w = env.do("DELETE", "/user/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.sessions.Session("u1").Cart.Lines())
}

func TestToggleWishlistTwice(t *testing.T) {
	env := newTestEnv()

	w := env.do("POST", "/user/wishlist", `{"product_id": "p1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.sessions.Session("u1").Wishlist.Has("p1"))

	w = env.do("POST", "/user/wishlist", `{"product_id": "p1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, env.sessions.Session("u1").Wishlist.Has("p1"))
}

func TestMoveToCartEndpoint(t *testing.T) {
	env := newTestEnv()
	env.do("POST", "/user/wishlist", `{"product_id": "p1"}`)

	w := env.do("POST", "/user/wishlist/p1/move-to-cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/cart", resp["redirect"])

	sess := env.sessions.Session("u1")
	assert.False(t, sess.Wishlist.Has("p1"))
	assert.Equal(t, 1, sess.Cart.Lines()["p1"].Qty)
}

func TestUnauthorizedWithoutUserID(t *testing.T) {
	env := newTestEnv()

	// No auth middleware on this route.
	env.router.GET("/bare/cart", GetUserCart(env.sessions))
	w := env.do("GET", "/bare/cart", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
