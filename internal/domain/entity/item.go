package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un material o producto terminado del inventario.
// Stock solo se modifica a través del libro de stock (ledger), nunca en una edición directa.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	ItemCode    *string         `json:"item_code,omitempty"`
	Category    string          `json:"category"`
	SupplierID  *int            `json:"supplier_id"`
	Unit        string          `json:"unit"`
	Stock       decimal.Decimal `json:"stock"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// GetID implementa Identifiable.
func (i Item) GetID() int { return i.ID }

// StockValue valor del stock actual (stock * precio unitario).
func (i Item) StockValue() decimal.Decimal {
	return i.Stock.Mul(i.UnitPrice)
}
