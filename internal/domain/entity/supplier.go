package entity

import "time"

// Supplier representa un proveedor (거래처 en los documentos originales).
// BusinessNumber es opcional: nil significa que no fue registrado.
type Supplier struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	BusinessNumber *string   `json:"business_number,omitempty"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GetID implementa Identifiable.
func (s Supplier) GetID() int { return s.ID }
