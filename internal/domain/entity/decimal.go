package entity

import "github.com/shopspring/decimal"

// Cantidades, stock y precios se persisten como números JSON (`"stock": 10`), no como cadenas.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
