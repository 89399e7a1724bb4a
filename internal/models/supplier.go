// internal/models/supplier.go
package models

import "time"

// Supplier.ReliabilityScore is expected to lie in [0,1] but is not validated.
type Supplier struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Contact           string   `json:"contact"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Location          string   `json:"location"`
	LeadTimeDays      int      `json:"lead_time_days"`
	ReliabilityScore  float64  `json:"reliability_score"`
	PaymentTerms      string   `json:"payment_terms"`
	ProductCategories []string `json:"product_categories"`
}

func (s Supplier) GetID() string       { return s.ID }
func (s Supplier) DisplayName() string { return s.Name }
func (s Supplier) Clone() Supplier {
	s.ProductCategories = cloneStrings(s.ProductCategories)
	return s
}

type NewSupplier struct {
	Name              string   `json:"name" validate:"required,max=255"`
	Contact           string   `json:"contact"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Location          string   `json:"location"`
	LeadTimeDays      int      `json:"lead_time_days" validate:"min=0"`
	ReliabilityScore  float64  `json:"reliability_score"`
	PaymentTerms      string   `json:"payment_terms"`
	ProductCategories []string `json:"product_categories"`
}

func (n NewSupplier) Build(id string, _ time.Time) Supplier {
	return Supplier{
		ID:                id,
		Name:              n.Name,
		Contact:           n.Contact,
		Email:             n.Email,
		Phone:             n.Phone,
		Location:          n.Location,
		LeadTimeDays:      n.LeadTimeDays,
		ReliabilityScore:  n.ReliabilityScore,
		PaymentTerms:      n.PaymentTerms,
		ProductCategories: cloneStrings(n.ProductCategories),
	}
}

type SupplierPatch struct {
	Name              *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Contact           *string  `json:"contact,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Location          *string  `json:"location,omitempty"`
	LeadTimeDays      *int     `json:"lead_time_days,omitempty" validate:"omitempty,min=0"`
	ReliabilityScore  *float64 `json:"reliability_score,omitempty"`
	PaymentTerms      *string  `json:"payment_terms,omitempty"`
	ProductCategories []string `json:"product_categories,omitempty"`
}

func (p SupplierPatch) Apply(s *Supplier) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Contact != nil {
		s.Contact = *p.Contact
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.LeadTimeDays != nil {
		s.LeadTimeDays = *p.LeadTimeDays
	}
	if p.ReliabilityScore != nil {
		s.ReliabilityScore = *p.ReliabilityScore
	}
	if p.PaymentTerms != nil {
		s.PaymentTerms = *p.PaymentTerms
	}
	if p.ProductCategories != nil {
		s.ProductCategories = cloneStrings(p.ProductCategories)
	}
}
