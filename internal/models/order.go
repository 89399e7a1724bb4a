// internal/models/order.go
package models

import "time"

type OrderCustomer struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name" validate:"required"`
	Location string `json:"location"`
}

type OrderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderNote struct {
	ID   int64     `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Order status changes are free-form; any status may follow any other.
type Order struct {
	ID                string        `json:"id"`
	Customer          OrderCustomer `json:"customer"`
	Products          []OrderLine   `json:"products,omitempty"`
	Status            OrderStatus   `json:"status"`
	Priority          string        `json:"priority,omitempty"`
	Total             float64       `json:"total"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery,omitempty"`
	Notes             []OrderNote   `json:"notes,omitempty"`
}

func (o Order) GetID() string       { return o.ID }
func (o Order) DisplayName() string { return o.ID }
func (o Order) Clone() Order {
	if o.Products != nil {
		o.Products = append([]OrderLine(nil), o.Products...)
	}
	if o.Notes != nil {
		o.Notes = append([]OrderNote(nil), o.Notes...)
	}
	return o
}
