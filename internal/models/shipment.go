// internal/models/shipment.go
package models

import "time"

// Shipment status and progress are independent: a Delivered shipment is not
// guaranteed to report progress 100.
type Shipment struct {
	ID            string           `json:"id"`
	Origin        string           `json:"origin"`
	Destination   string           `json:"destination"`
	Carrier       string           `json:"carrier"`
	Mode          ShipmentMode     `json:"mode"`
	Status        ShipmentStatus   `json:"status"`
	Progress      int              `json:"progress"`
	Cost          float64          `json:"cost"`
	Priority      ShipmentPriority `json:"priority"`
	DepartureDate string           `json:"departure_date,omitempty"`
	ETA           string           `json:"eta,omitempty"`
}

func (s Shipment) GetID() string       { return s.ID }
func (s Shipment) DisplayName() string { return s.ID }
func (s Shipment) Clone() Shipment     { return s }

type NewShipment struct {
	Origin        string           `json:"origin" validate:"required"`
	Destination   string           `json:"destination" validate:"required"`
	Carrier       string           `json:"carrier" validate:"required"`
	Mode          ShipmentMode     `json:"mode" validate:"required,oneof=Truck Ship Air Rail"`
	Status        ShipmentStatus   `json:"status" validate:"omitempty,oneof=Scheduled 'In Transit' Delivered Delayed Cancelled"`
	Progress      int              `json:"progress" validate:"min=0,max=100"`
	Cost          float64          `json:"cost" validate:"min=0"`
	Priority      ShipmentPriority `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DepartureDate string           `json:"departure_date,omitempty"`
	ETA           string           `json:"eta,omitempty"`
}

func (n NewShipment) Build(id string, _ time.Time) Shipment {
	status := n.Status
	if status == "" {
		status = ShipmentStatusScheduled
	}
	priority := n.Priority
	if priority == "" {
		priority = ShipmentPriorityMedium
	}
	return Shipment{
		ID:            id,
		Origin:        n.Origin,
		Destination:   n.Destination,
		Carrier:       n.Carrier,
		Mode:          n.Mode,
		Status:        status,
		Progress:      n.Progress,
		Cost:          n.Cost,
		Priority:      priority,
		DepartureDate: n.DepartureDate,
		ETA:           n.ETA,
	}
}

type ShipmentPatch struct {
	Origin        *string           `json:"origin,omitempty"`
	Destination   *string           `json:"destination,omitempty"`
	Carrier       *string           `json:"carrier,omitempty"`
	Mode          *ShipmentMode     `json:"mode,omitempty"`
	Status        *ShipmentStatus   `json:"status,omitempty"`
	Progress      *int              `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	Cost          *float64          `json:"cost,omitempty" validate:"omitempty,min=0"`
	Priority      *ShipmentPriority `json:"priority,omitempty"`
	DepartureDate *string           `json:"departure_date,omitempty"`
	ETA           *string           `json:"eta,omitempty"`
}

func (p ShipmentPatch) Apply(s *Shipment) {
	if p.Origin != nil {
		s.Origin = *p.Origin
	}
	if p.Destination != nil {
		s.Destination = *p.Destination
	}
	if p.Carrier != nil {
		s.Carrier = *p.Carrier
	}
	if p.Mode != nil {
		s.Mode = *p.Mode
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Progress != nil {
		s.Progress = *p.Progress
	}
	if p.Cost != nil {
		s.Cost = *p.Cost
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.DepartureDate != nil {
		s.DepartureDate = *p.DepartureDate
	}
	if p.ETA != nil {
		s.ETA = *p.ETA
	}
}
