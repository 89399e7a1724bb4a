// internal/models/product.go
package models

import "time"

const lowStockThreshold = 15

// Product.Status is classified from Stock when the product is saved and
// stored with it, unlike InventoryItem.Status which is derived on read.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	SKU         string        `json:"sku,omitempty"`
	Supplier    string        `json:"supplier,omitempty"`
	Description string        `json:"description,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	LastUpdated string        `json:"last_updated,omitempty"`
}

func (p Product) GetID() string       { return p.ID }
func (p Product) DisplayName() string { return p.Name }
func (p Product) Clone() Product      { return p }

// ProductStatusFor classifies a stock level.
func ProductStatusFor(stock int) ProductStatus {
	switch {
	case stock <= 0:
		return ProductStatusOutOfStock
	case stock <= lowStockThreshold:
		return ProductStatusLowStock
	default:
		return ProductStatusInStock
	}
}

type NewProduct struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"min=0"`
	Stock       int     `json:"stock" validate:"min=0"`
	SKU         string  `json:"sku,omitempty"`
	Supplier    string  `json:"supplier,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

func (n NewProduct) Build(id string, now time.Time) Product {
	return Product{
		ID:          id,
		Name:        n.Name,
		Category:    n.Category,
		Price:       n.Price,
		Stock:       n.Stock,
		Status:      ProductStatusFor(n.Stock),
		SKU:         n.SKU,
		Supplier:    n.Supplier,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		LastUpdated: now.Format("2006-01-02"),
	}
}

type ProductPatch struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	SKU         *string  `json:"sku,omitempty"`
	Supplier    *string  `json:"supplier,omitempty"`
	Description *string  `json:"description,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
	if p.SKU != nil {
		product.SKU = *p.SKU
	}
	if p.Supplier != nil {
		product.Supplier = *p.Supplier
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
}
