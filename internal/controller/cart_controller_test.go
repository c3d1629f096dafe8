package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/masterdu/masterdu-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartControllerTest(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewCartController(service.NewCartService("85212345678"))

	router := gin.New()
	router.GET("/api/cart", ctrl.GetCart)
	router.POST("/api/cart/items", ctrl.AddItem)
	router.DELETE("/api/cart/items/:id", ctrl.RemoveItem)
	router.DELETE("/api/cart", ctrl.ClearCart)
	router.POST("/api/cart/drawer", ctrl.ToggleDrawer)
	router.POST("/api/cart/checkout", ctrl.Checkout)

	return router
}

func cartRequest(router *gin.Engine, method, path, session string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartController_GetCart_MintsSession(t *testing.T) {
	router := setupCartControllerTest(t)

	w := cartRequest(router, "GET", "/api/cart", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SessionHeader))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response["items"])
	assert.Equal(t, float64(0), response["total"])
	assert.Equal(t, false, response["drawerOpen"])
}

func TestCartController_AddItem(t *testing.T) {
	router := setupCartControllerTest(t)

	w := cartRequest(router, "POST", "/api/cart/items", "s1", AddToCartRequest{
		ID:    "svc-1",
		Name:  "祈福儀式",
		Price: 6800,
		Type:  "service",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", w.Header().Get(SessionHeader))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	items := response["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(6800), response["total"])
	assert.Equal(t, true, response["drawerOpen"])

	// Quantity defaults to 1 when omitted.
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), line["quantity"])
}

func TestCartController_AddItem_SameIDIncrements(t *testing.T) {
	router := setupCartControllerTest(t)

	item := AddToCartRequest{ID: "svc-1", Name: "祈福儀式", Price: 6800, Type: "service"}
	cartRequest(router, "POST", "/api/cart/items", "s1", item)
	w := cartRequest(router, "POST", "/api/cart/items", "s1", item)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	items := response["items"].([]interface{})
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, float64(2), line["quantity"])
}

func TestCartController_AddItem_InvalidPayload(t *testing.T) {
	router := setupCartControllerTest(t)

	w := cartRequest(router, "POST", "/api/cart/items", "s1", map[string]string{"name": "no id"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_RemoveAndClear(t *testing.T) {
	router := setupCartControllerTest(t)

	cartRequest(router, "POST", "/api/cart/items", "s1", AddToCartRequest{ID: "a", Name: "a", Price: 1, Type: "service"})
	cartRequest(router, "POST", "/api/cart/items", "s1", AddToCartRequest{ID: "b", Name: "b", Price: 2, Type: "course"})

	w := cartRequest(router, "DELETE", "/api/cart/items/a", "s1", nil)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["items"], 1)

	w = cartRequest(router, "DELETE", "/api/cart", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response["items"])
}

func TestCartController_ToggleDrawer(t *testing.T) {
	router := setupCartControllerTest(t)

	w := cartRequest(router, "POST", "/api/cart/drawer", "s1", nil)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["drawerOpen"])

	w = cartRequest(router, "POST", "/api/cart/drawer", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["drawerOpen"])
}

func TestCartController_Checkout(t *testing.T) {
	router := setupCartControllerTest(t)

	cartRequest(router, "POST", "/api/cart/items", "s1", AddToCartRequest{
		ID: "svc-1", Name: "祈福儀式", Price: 6800, Quantity: 2, Type: "service",
	})

	w := cartRequest(router, "POST", "/api/cart/checkout", "s1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	url := response["url"].(string)
	assert.Contains(t, url, "https://wa.me/85212345678?text=")

	// Checkout leaves the cart intact.
	w = cartRequest(router, "GET", "/api/cart", "s1", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["items"], 1)
}

func TestCartController_Checkout_EmptyCart(t *testing.T) {
	router := setupCartControllerTest(t)

	w := cartRequest(router, "POST", "/api/cart/checkout", "s1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "CART_EMPTY", response["error"])
}
