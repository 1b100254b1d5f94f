package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sbo-seals/oilseal-api/models"
	"github.com/sbo-seals/oilseal-api/store"
)

// ProductController serves the catalog. Reads are public; create, update and
// delete sit behind the admin gate (wired in the router).
type ProductController struct {
	store *store.ProductDBStore
	log   *slog.Logger
}

// NewProductController returns a controller over the given product store.
func NewProductController(s *store.ProductDBStore, log *slog.Logger) *ProductController {
	if log == nil {
		log = slog.Default()
	}
	return &ProductController{store: s, log: log}
}

// List handles GET /api/products, with optional ?search= or ?category=
func (ctl *ProductController) List(c *gin.Context) {
	var (
		products []models.Product
		total    int
		err      error
	)
	if search := c.Query("search"); search != "" {
		products, total, err = ctl.store.SearchProducts(search)
	} else if category := c.Query("category"); category != "" {
		products, total, err = ctl.store.ProductsByCategory(category)
	} else {
		products, total, err = ctl.store.ListProducts()
	}
	if err != nil {
		ctl.log.Error("failed to fetch products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
}

// GetByID handles GET /api/products/:id
func (ctl *ProductController) GetByID(c *gin.Context) {
	product, err := ctl.store.GetProduct(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctl.log.Error("failed to fetch product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetBySKU handles GET /api/products/sku/:sku
func (ctl *ProductController) GetBySKU(c *gin.Context) {
	product, err := ctl.store.GetProductBySKU(c.Param("sku"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctl.log.Error("failed to fetch product by sku", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Create handles POST /api/products
func (ctl *ProductController) Create(c *gin.Context) {
	var in models.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid input",
			"details": ValidationDetails(err),
		})
		return
	}

	product, err := ctl.store.CreateProduct(in)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctl.log.Error("failed to create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// Update handles PUT /api/products/:id
func (ctl *ProductController) Update(c *gin.Context) {
	var in models.UpdateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid input",
			"details": ValidationDetails(err),
		})
		return
	}

	product, err := ctl.store.UpdateProduct(c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctl.log.Error("failed to update product", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// Delete handles DELETE /api/products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	if err := ctl.store.DeleteProduct(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		ctl.log.Error("failed to delete product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}
