// internal/models/customer.go
package models

import "time"

type CustomerContact struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type Customer struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Location string          `json:"location"`
	Contact  CustomerContact `json:"contact"`
	Notes    string          `json:"notes,omitempty"`
}

func (c Customer) GetID() string       { return c.ID }
func (c Customer) DisplayName() string { return c.Name }
func (c Customer) Clone() Customer     { return c }

type NewCustomer struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Location string          `json:"location" validate:"required"`
	Contact  CustomerContact `json:"contact"`
	Notes    string          `json:"notes,omitempty"`
}

func (n NewCustomer) Build(id string, _ time.Time) Customer {
	return Customer{
		ID:       id,
		Name:     n.Name,
		Location: n.Location,
		Contact:  n.Contact,
		Notes:    n.Notes,
	}
}

type CustomerPatch struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Location *string          `json:"location,omitempty"`
	Contact  *CustomerContact `json:"contact,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Contact != nil {
		c.Contact = *p.Contact
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
