package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalItems      int             `json:"total_items"`
	TotalSuppliers  int             `json:"total_suppliers"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`

	// Movimientos de los últimos 30 días (por fecha de movimiento)
	RecentInbound  int `json:"recent_inbound"`
	RecentOutbound int `json:"recent_outbound"`

	TopItems           []StockValueDTO       `json:"top_items"` // top 10 por valor, solo stock > 0
	ValueByCategory    []CategoryValueDTO    `json:"value_by_category"`
	LowStock           []LowStockDTO         `json:"low_stock"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"` // últimos 20, más reciente primero
	DailyMovements     []DailyMovementDTO    `json:"daily_movements"`
}

// StockValueDTO valor de inventario de un ítem.
type StockValueDTO struct {
	ItemID     int             `json:"item_id"`
	Name       string          `json:"name"`
	ItemCode   string          `json:"item_code"`
	Category   string          `json:"category"`
	Stock      decimal.Decimal `json:"stock"`
	Unit       string          `json:"unit"`
	StockValue decimal.Decimal `json:"stock_value"`
}

// CategoryValueDTO valor agregado por categoría.
type CategoryValueDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// LowStockDTO ítem con stock por debajo del umbral configurado.
type LowStockDTO struct {
	ItemID int             `json:"item_id"`
	Name   string          `json:"name"`
	Stock  decimal.Decimal `json:"stock"`
	Unit   string          `json:"unit"`
}

// DailyMovementDTO cantidad de movimientos por día.
type DailyMovementDTO struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}
