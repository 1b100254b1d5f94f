package models

import "time"

// Product is a catalog item. SKU is the business-unique key; the wire format
// keeps the snake_case field names the storefront already consumes.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Size        string    `json:"size"`
	Material    string    `json:"material"`
	Fits        string    `json:"fits"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductInput is the request body for POST /api/products.
type CreateProductInput struct {
	Title       string   `json:"title" binding:"required"`
	Size        string   `json:"size" binding:"required"`
	Material    string   `json:"material" binding:"required"`
	Fits        string   `json:"fits" binding:"required"`
	SKU         string   `json:"sku" binding:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	InStock     *bool    `json:"in_stock"`
}

// UpdateProductInput is the request body for PUT /api/products/:id. Only
// provided fields are written.
type UpdateProductInput struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Size        *string  `json:"size" binding:"omitempty,min=1"`
	Material    *string  `json:"material" binding:"omitempty,min=1"`
	Fits        *string  `json:"fits" binding:"omitempty,min=1"`
	SKU         *string  `json:"sku" binding:"omitempty,min=1"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	InStock     *bool    `json:"in_stock"`
}
