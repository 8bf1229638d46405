package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	TransactionInbound  = "inbound"  // entrada
	TransactionOutbound = "outbound" // salida
)

// Transaction representa un movimiento de inventario (entrada o salida) del historial.
type Transaction struct {
	ID              int             `json:"id"`
	TransactionType string          `json:"transaction_type"`
	ItemID          int             `json:"item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	SupplierID      *int            `json:"supplier_id"`
	TransactionDate Date            `json:"transaction_date"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GetID implementa Identifiable.
func (t Transaction) GetID() int { return t.ID }

// ParseTransactionType normaliza el tipo de movimiento. Acepta los valores
// heredados de los documentos originales (입고 / 출고).
func ParseTransactionType(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case TransactionInbound, "in", "입고":
		return TransactionInbound, true
	case TransactionOutbound, "out", "출고":
		return TransactionOutbound, true
	}
	return "", false
}

// ReverseTransactionType devuelve el tipo contrario (usado al eliminar un movimiento).
func ReverseTransactionType(t string) string {
	if t == TransactionInbound {
		return TransactionOutbound
	}
	return TransactionInbound
}
