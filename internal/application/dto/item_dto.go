package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem. Stock es el stock inicial.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	ItemCode    string          `json:"item_code" validate:"max=100"`
	Category    string          `json:"category"`
	SupplierID  *int            `json:"supplier_id" validate:"omitempty,gt=0"`
	Unit        string          `json:"unit"`
	Stock       decimal.Decimal `json:"stock"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
}

// UpdateItemRequest actualización parcial (sin Stock: solo cambia vía movimientos).
// ItemCode vacío elimina el código; ClearSupplier desvincula el proveedor.
type UpdateItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,max=200"`
	ItemCode      *string          `json:"item_code" validate:"omitempty,max=100"`
	Category      *string          `json:"category"`
	SupplierID    *int             `json:"supplier_id" validate:"omitempty,gt=0"`
	ClearSupplier bool             `json:"clear_supplier"`
	Unit          *string          `json:"unit"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	Description   *string          `json:"description"`
}

// ItemResponse salida de un ítem con el nombre del proveedor resuelto.
type ItemResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	ItemCode     string          `json:"item_code"`
	Category     string          `json:"category"`
	SupplierID   *int            `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Unit         string          `json:"unit"`
	Stock        decimal.Decimal `json:"stock"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	StockValue   decimal.Decimal `json:"stock_value"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemImportRow fila de carga masiva. Stock y UnitPrice vacíos se toman como 0.
type ItemImportRow struct {
	Line         int
	Name         string
	ItemCode     string
	Category     string
	SupplierName string
	Unit         string
	Stock        string
	UnitPrice    string
	Description  string
}
