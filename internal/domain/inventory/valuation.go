package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

// TotalStockValue suma stock * precio unitario de todos los ítems.
func TotalStockValue(items []entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.StockValue())
	}
	return total
}

// CategoryValue valor de stock agregado por categoría.
type CategoryValue struct {
	Category string
	Value    decimal.Decimal
}

// StockValueByCategory agrupa el valor de stock por categoría (solo ítems con stock > 0),
// ordenado de mayor a menor valor.
func StockValueByCategory(items []entity.Item) []CategoryValue {
	byCat := make(map[string]decimal.Decimal)
	for _, it := range items {
		if !it.Stock.IsPositive() {
			continue
		}
		byCat[it.Category] = byCat[it.Category].Add(it.StockValue())
	}
	out := make([]CategoryValue, 0, len(byCat))
	for cat, v := range byCat {
		out = append(out, CategoryValue{Category: cat, Value: v})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopItemsByValue devuelve hasta n ítems con stock > 0 ordenados por valor de stock descendente.
func TopItemsByValue(items []entity.Item, n int) []entity.Item {
	withStock := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if it.Stock.IsPositive() {
			withStock = append(withStock, it)
		}
	}
	sort.SliceStable(withStock, func(i, j int) bool {
		return withStock[i].StockValue().GreaterThan(withStock[j].StockValue())
	})
	if n > 0 && len(withStock) > n {
		withStock = withStock[:n]
	}
	return withStock
}
