package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbo-seals/oilseal-api/store"
)

func setupProductRouter(t *testing.T) *gin.Engine {
	t.Helper()

	products := store.NewProductDBStore(testDB(t))
	ctl := NewProductController(products, testLogger())

	router := gin.New()
	router.GET("/api/products", ctl.List)
	router.GET("/api/products/:id", ctl.GetByID)
	router.GET("/api/products/sku/:sku", ctl.GetBySKU)
	router.POST("/api/products", ctl.Create)
	router.PUT("/api/products/:id", ctl.Update)
	router.DELETE("/api/products/:id", ctl.Delete)
	return router
}

func createProduct(t *testing.T, router *gin.Engine, sku string) map[string]interface{} {
	t.Helper()

	w, body := performRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"title":    "Rotary shaft seal " + sku,
		"size":     "30x42x11",
		"material": "NBR",
		"fits":     "agricultural gearboxes",
		"sku":      sku,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, "body: %v", body)
	product, ok := body["product"].(map[string]interface{})
	require.True(t, ok)
	return product
}

func TestProductCreate(t *testing.T) {
	router := setupProductRouter(t)

	w, body := performRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"title":       "Rotary shaft seal",
		"size":        "30x42x11",
		"material":    "NBR",
		"fits":        "agricultural gearboxes",
		"sku":         "SKU-1",
		"category":    "rotary",
		"description": "double lip with garter spring",
		"price":       4.2,
		"in_stock":    false,
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	product := body["product"].(map[string]interface{})
	assert.NotEmpty(t, product["id"])
	assert.Equal(t, "SKU-1", product["sku"])
	assert.Equal(t, 4.2, product["price"])
	assert.Equal(t, false, product["in_stock"])
}

func TestProductCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing sku",
			body: map[string]interface{}{"title": "Seal", "size": "10x20x5", "material": "NBR", "fits": "X"},
		},
		{
			name: "missing title",
			body: map[string]interface{}{"size": "10x20x5", "material": "NBR", "fits": "X", "sku": "SKU-1"},
		},
		{
			name: "zero price",
			body: map[string]interface{}{"title": "Seal", "size": "10x20x5", "material": "NBR", "fits": "X", "sku": "SKU-1", "price": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupProductRouter(t)
			w, body := performRequest(t, router, http.MethodPost, "/api/products", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid input", body["error"])
		})
	}
}

func TestProductCreateDuplicateSKU(t *testing.T) {
	router := setupProductRouter(t)
	original := createProduct(t, router, "SKU-1")

	w, body := performRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"title":    "Other seal",
		"size":     "12x22x7",
		"material": "FKM",
		"fits":     "Y",
		"sku":      "SKU-1",
	}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, body["error"], "SKU-1")

	// The first product is untouched
	w, body = performRequest(t, router, http.MethodGet, "/api/products/"+original["id"].(string), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := body["product"].(map[string]interface{})
	assert.Equal(t, original["title"], got["title"])
}

func TestProductGet(t *testing.T) {
	router := setupProductRouter(t)
	product := createProduct(t, router, "SKU-1")

	w, body := performRequest(t, router, http.MethodGet, "/api/products/"+product["id"].(string), nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, product["id"], body["product"].(map[string]interface{})["id"])

	w, body = performRequest(t, router, http.MethodGet, "/api/products/sku/SKU-1", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, product["id"], body["product"].(map[string]interface{})["id"])

	w, body = performRequest(t, router, http.MethodGet, "/api/products/missing-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", body["error"])

	w, _ = performRequest(t, router, http.MethodGet, "/api/products/sku/MISSING", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductList(t *testing.T) {
	router := setupProductRouter(t)
	createProduct(t, router, "SKU-1")
	createProduct(t, router, "SKU-2")

	w, body := performRequest(t, router, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["total"])
	assert.Len(t, body["products"], 2)
}

func TestProductListEmpty(t *testing.T) {
	router := setupProductRouter(t)

	w, body := performRequest(t, router, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["total"])
	products, ok := body["products"].([]interface{})
	require.True(t, ok, "products must be an array, got %v", body["products"])
	assert.Empty(t, products)
}

func TestProductListSearch(t *testing.T) {
	router := setupProductRouter(t)
	createProduct(t, router, "ROT-30")

	w, body := performRequest(t, router, http.MethodGet, "/api/products?search=rot-30", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])

	w, body = performRequest(t, router, http.MethodGet, "/api/products?search=piston", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["total"])
}

func TestProductListByCategory(t *testing.T) {
	router := setupProductRouter(t)

	w, _ := performRequest(t, router, http.MethodPost, "/api/products", map[string]interface{}{
		"title": "Rotary shaft seal", "size": "30x42x11", "material": "NBR",
		"fits": "X", "sku": "ROT-30", "category": "rotary",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	createProduct(t, router, "SKU-NO-CATEGORY")

	w, body := performRequest(t, router, http.MethodGet, "/api/products?category=rotary", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total"])
}

func TestProductUpdate(t *testing.T) {
	router := setupProductRouter(t)
	product := createProduct(t, router, "SKU-1")

	w, body := performRequest(t, router, http.MethodPut, "/api/products/"+product["id"].(string), map[string]interface{}{
		"title": "Renamed seal",
		"price": 9.99,
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	got := body["product"].(map[string]interface{})
	assert.Equal(t, "Renamed seal", got["title"])
	assert.Equal(t, 9.99, got["price"])
	assert.Equal(t, "NBR", got["material"])

	w, _ = performRequest(t, router, http.MethodPut, "/api/products/missing-id", map[string]interface{}{
		"title": "whatever",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductUpdateSKUConflict(t *testing.T) {
	router := setupProductRouter(t)
	createProduct(t, router, "SKU-1")
	p2 := createProduct(t, router, "SKU-2")

	w, _ := performRequest(t, router, http.MethodPut, "/api/products/"+p2["id"].(string), map[string]interface{}{
		"sku": "SKU-1",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductDelete(t *testing.T) {
	router := setupProductRouter(t)
	product := createProduct(t, router, "SKU-1")
	id := product["id"].(string)

	w, _ := performRequest(t, router, http.MethodDelete, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())

	w, _ = performRequest(t, router, http.MethodGet, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = performRequest(t, router, http.MethodDelete, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
