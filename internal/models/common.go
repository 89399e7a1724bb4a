// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Record is implemented by every resource kept in a session store.
type Record[T any] interface {
	GetID() string
	DisplayName() string
	Clone() T
}

// Draft is a create payload that knows how to become a stored record.
type Draft[T any] interface {
	Build(id string, now time.Time) T
}

// Patch is a partial update; nil fields are left untouched.
type Patch[T any] interface {
	Apply(record *T)
}

// JSONB stores an arbitrary JSON document in a postgres jsonb column
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb scan type %T", value)
	}
	return nil
}

// KVEntry is the row type of the postgres key/value table
type KVEntry struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     JSONB     `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Enums
type StockStatus string

const (
	StockStatusNormal     StockStatus = "normal"
	StockStatusLow        StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

type ProductStatus string

const (
	ProductStatusInStock    ProductStatus = "In Stock"
	ProductStatusLowStock   ProductStatus = "Low Stock"
	ProductStatusOutOfStock ProductStatus = "Out of Stock"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type ShipmentMode string

const (
	ShipmentModeTruck ShipmentMode = "Truck"
	ShipmentModeShip  ShipmentMode = "Ship"
	ShipmentModeAir   ShipmentMode = "Air"
	ShipmentModeRail  ShipmentMode = "Rail"
)

type ShipmentStatus string

const (
	ShipmentStatusScheduled ShipmentStatus = "Scheduled"
	ShipmentStatusInTransit ShipmentStatus = "In Transit"
	ShipmentStatusDelivered ShipmentStatus = "Delivered"
	ShipmentStatusDelayed   ShipmentStatus = "Delayed"
	ShipmentStatusCancelled ShipmentStatus = "Cancelled"
)

type ShipmentPriority string

const (
	ShipmentPriorityLow    ShipmentPriority = "Low"
	ShipmentPriorityMedium ShipmentPriority = "Medium"
	ShipmentPriorityHigh   ShipmentPriority = "High"
)

// Pointer helpers for building patches
func String(v string) *string    { return &v }
func Int(v int) *int             { return &v }
func Float64(v float64) *float64 { return &v }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
