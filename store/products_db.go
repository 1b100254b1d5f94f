package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sbo-seals/oilseal-api/models"
)

// productRow is the persisted shape of a catalog item. The unique index on
// sku backs up the pre-insert existence check, so a check-then-insert race
// still resolves to a conflict instead of a duplicate row.
type productRow struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	Title       string `gorm:"not null"`
	Size        string `gorm:"not null"`
	Material    string `gorm:"not null"`
	Fits        string `gorm:"not null"`
	SKU         string `gorm:"column:sku;uniqueIndex;not null"`
	Category    *string
	Description *string `gorm:"type:text"`
	Price       *float64
	InStock     bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the product row
func (productRow) TableName() string {
	return "products"
}

func (r *productRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func productFromRow(r productRow) models.Product {
	p := models.Product{
		ID:        r.ID,
		Title:     r.Title,
		Size:      r.Size,
		Material:  r.Material,
		Fits:      r.Fits,
		SKU:       r.SKU,
		Price:     r.Price,
		InStock:   r.InStock,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Category != nil {
		p.Category = *r.Category
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	return p
}

func productToRow(p models.Product) productRow {
	r := productRow{
		ID:        p.ID,
		Title:     p.Title,
		Size:      p.Size,
		Material:  p.Material,
		Fits:      p.Fits,
		SKU:       p.SKU,
		Price:     p.Price,
		InStock:   p.InStock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Category != "" {
		r.Category = &p.Category
	}
	if p.Description != "" {
		r.Description = &p.Description
	}
	return r
}

// ProductDBStore persists catalog items in the hosted relational store. There
// is no fallback: without a configured database every method fails.
type ProductDBStore struct {
	db *gorm.DB
}

// NewProductDBStore returns a product adapter over db.
func NewProductDBStore(db *gorm.DB) *ProductDBStore {
	return &ProductDBStore{db: db}
}

func (s *ProductDBStore) list(q *gorm.DB) ([]models.Product, int, error) {
	var rows []productRow
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	products := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		products = append(products, productFromRow(r))
	}
	return products, len(products), nil
}

// ListProducts returns the whole catalog, newest first, with its total count.
func (s *ProductDBStore) ListProducts() ([]models.Product, int, error) {
	if s.db == nil {
		return nil, 0, ErrNotConfigured
	}
	return s.list(s.db.Model(&productRow{}))
}

// SearchProducts matches query as a case-insensitive substring of the title,
// SKU, compatibility text or category.
func (s *ProductDBStore) SearchProducts(query string) ([]models.Product, int, error) {
	if s.db == nil {
		return nil, 0, ErrNotConfigured
	}
	pattern := "%" + strings.ToLower(query) + "%"
	q := s.db.Model(&productRow{}).Where(
		"LOWER(title) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(fits) LIKE ? OR LOWER(category) LIKE ?",
		pattern, pattern, pattern, pattern,
	)
	return s.list(q)
}

// ProductsByCategory returns products whose category matches exactly.
func (s *ProductDBStore) ProductsByCategory(category string) ([]models.Product, int, error) {
	if s.db == nil {
		return nil, 0, ErrNotConfigured
	}
	return s.list(s.db.Model(&productRow{}).Where("category = ?", category))
}

// GetProduct returns the product with the given id, or ErrNotFound.
func (s *ProductDBStore) GetProduct(id string) (*models.Product, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var row productRow
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p := productFromRow(row)
	return &p, nil
}

// GetProductBySKU returns the product with the given business key, or
// ErrNotFound.
func (s *ProductDBStore) GetProductBySKU(sku string) (*models.Product, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	var row productRow
	if err := s.db.Where("sku = ?", sku).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	p := productFromRow(row)
	return &p, nil
}

// CreateProduct inserts a new catalog item. A duplicate SKU yields
// ErrConflict, either from the pre-insert check or from the unique index when
// two creates race past the check.
func (s *ProductDBStore) CreateProduct(in models.CreateProductInput) (*models.Product, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	if _, err := s.GetProductBySKU(in.SKU); err == nil {
		return nil, fmt.Errorf("product with SKU %s %w", in.SKU, ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	row := productToRow(models.Product{
		Title:       in.Title,
		Size:        in.Size,
		Material:    in.Material,
		Fits:        in.Fits,
		SKU:         in.SKU,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		InStock:     inStock,
	})
	if err := s.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("product with SKU %s %w", in.SKU, ErrConflict)
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	p := productFromRow(row)
	return &p, nil
}

// UpdateProduct applies a partial patch. A patched SKU that collides with
// another product yields ErrConflict; a missing id yields ErrNotFound.
func (s *ProductDBStore) UpdateProduct(id string, in models.UpdateProductInput) (*models.Product, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}
	existing, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if in.SKU != nil && *in.SKU != existing.SKU {
		if _, err := s.GetProductBySKU(*in.SKU); err == nil {
			return nil, fmt.Errorf("product with SKU %s %w", *in.SKU, ErrConflict)
		} else if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Size != nil {
		updates["size"] = *in.Size
	}
	if in.Material != nil {
		updates["material"] = *in.Material
	}
	if in.Fits != nil {
		updates["fits"] = *in.Fits
	}
	if in.SKU != nil {
		updates["sku"] = *in.SKU
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.InStock != nil {
		updates["in_stock"] = *in.InStock
	}

	if err := s.db.Model(&productRow{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("product with SKU %s %w", *in.SKU, ErrConflict)
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return s.GetProduct(id)
}

// DeleteProduct removes the row, reporting ErrNotFound when the id does not
// exist so the handler can answer 404 instead of silently succeeding.
func (s *ProductDBStore) DeleteProduct(id string) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	res := s.db.Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
