package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	BusinessNumber string `json:"business_number"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Note           string `json:"note"`
}

// UpdateSupplierRequest actualización parcial: solo se aplican los campos presentes.
// BusinessNumber vacío ("") elimina el número registrado.
type UpdateSupplierRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=200"`
	BusinessNumber *string `json:"business_number"`
	Address        *string `json:"address"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Note           *string `json:"note"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	BusinessNumber string    `json:"business_number"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SupplierImportRow fila de carga masiva (columnas en texto).
type SupplierImportRow struct {
	Line           int
	Name           string
	BusinessNumber string
	Address        string
	Phone          string
	Email          string
	Note           string
}
