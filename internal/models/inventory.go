// internal/models/inventory.go
package models

import "time"

type InventoryItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku,omitempty"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	Quantity     int       `json:"quantity"`
	UnitCost     float64   `json:"unit_cost"`
	ReorderPoint int       `json:"reorder_point"`
	LeadTimeDays int       `json:"lead_time_days"`
	Supplier     string    `json:"supplier"`
	LastUpdated  time.Time `json:"last_updated"`
}

func (i InventoryItem) GetID() string       { return i.ID }
func (i InventoryItem) DisplayName() string { return i.Name }
func (i InventoryItem) Clone() InventoryItem {
	return i
}

// Status is derived on every read from quantity and reorder point and is
// never stored on the record.
func (i InventoryItem) Status() StockStatus {
	return InventoryStatus(i.Quantity, i.ReorderPoint)
}

// Value is quantity multiplied by unit cost.
func (i InventoryItem) Value() float64 {
	return float64(i.Quantity) * i.UnitCost
}

func InventoryStatus(quantity, reorderPoint int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOutOfStock
	case quantity <= reorderPoint:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

type NewInventoryItem struct {
	Name         string  `json:"name" validate:"required,max=255"`
	SKU          string  `json:"sku,omitempty"`
	Category     string  `json:"category" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Quantity     int     `json:"quantity" validate:"min=0"`
	UnitCost     float64 `json:"unit_cost" validate:"min=0"`
	ReorderPoint int     `json:"reorder_point" validate:"min=0"`
	LeadTimeDays int     `json:"lead_time_days" validate:"min=0"`
	Supplier     string  `json:"supplier"`
}

func (n NewInventoryItem) Build(id string, now time.Time) InventoryItem {
	return InventoryItem{
		ID:           id,
		Name:         n.Name,
		SKU:          n.SKU,
		Category:     n.Category,
		Location:     n.Location,
		Quantity:     n.Quantity,
		UnitCost:     n.UnitCost,
		ReorderPoint: n.ReorderPoint,
		LeadTimeDays: n.LeadTimeDays,
		Supplier:     n.Supplier,
		LastUpdated:  now,
	}
}

type InventoryPatch struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	SKU          *string  `json:"sku,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Quantity     *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
	UnitCost     *float64 `json:"unit_cost,omitempty" validate:"omitempty,min=0"`
	ReorderPoint *int     `json:"reorder_point,omitempty" validate:"omitempty,min=0"`
	LeadTimeDays *int     `json:"lead_time_days,omitempty" validate:"omitempty,min=0"`
	Supplier     *string  `json:"supplier,omitempty"`
}

func (p InventoryPatch) Apply(item *InventoryItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.UnitCost != nil {
		item.UnitCost = *p.UnitCost
	}
	if p.ReorderPoint != nil {
		item.ReorderPoint = *p.ReorderPoint
	}
	if p.LeadTimeDays != nil {
		item.LeadTimeDays = *p.LeadTimeDays
	}
	if p.Supplier != nil {
		item.Supplier = *p.Supplier
	}
}
