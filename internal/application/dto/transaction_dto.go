package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTransactionRequest body para POST /api/transactions.
// TransactionDate en formato YYYY-MM-DD; vacío = hoy.
type RegisterTransactionRequest struct {
	Type            string          `json:"transaction_type" validate:"required"`
	ItemID          int             `json:"item_id" validate:"required,gt=0"`
	Quantity        decimal.Decimal `json:"quantity"`
	SupplierID      *int            `json:"supplier_id" validate:"omitempty,gt=0"`
	TransactionDate string          `json:"transaction_date"`
	Note            string          `json:"note"`
}

// TransactionFilter filtros de GET /api/transactions. Fechas YYYY-MM-DD inclusivas.
type TransactionFilter struct {
	Type   string `query:"type"`
	ItemID int    `query:"item_id" validate:"min=0"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int    `query:"offset" validate:"min=0"`
}

// Page devuelve la paginación del filtro con valores por defecto.
func (f TransactionFilter) Page() PageRequest {
	p := PageRequest{Limit: f.Limit, Offset: f.Offset}
	p.DefaultPage()
	return p
}

// TransactionResponse movimiento con referencias resueltas a nombres.
type TransactionResponse struct {
	ID              int             `json:"id"`
	TransactionType string          `json:"transaction_type"`
	ItemID          int             `json:"item_id"`
	ItemName        string          `json:"item_name"`
	ItemCode        string          `json:"item_code"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	SupplierID      *int            `json:"supplier_id"`
	SupplierName    string          `json:"supplier_name"`
	TransactionDate string          `json:"transaction_date"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionListResponse lista paginada, más recientes primero.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// TransactionImportRow fila de carga masiva.
type TransactionImportRow struct {
	Line         int
	Type         string
	ItemName     string
	Quantity     string
	SupplierName string
	Date         string
	Note         string
}
