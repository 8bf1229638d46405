package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

// ApplyDelta aplica un movimiento de stock sobre la colección en memoria (servicio de dominio).
//
//	inbound:  stock += quantity
//	outbound: stock -= quantity; falla con ErrInsufficientStock si el resultado es negativo
//
// Un itemID inexistente no es error: devuelve found=false y no modifica nada.
// Ante cualquier error la colección queda intacta.
func ApplyDelta(items []entity.Item, itemID int, quantity decimal.Decimal, direction string, now time.Time) (found bool, err error) {
	if !quantity.IsPositive() {
		return false, domain.ErrInvalidQuantity
	}
	if direction != entity.TransactionInbound && direction != entity.TransactionOutbound {
		return false, domain.ErrInvalidTransactionType
	}
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		switch direction {
		case entity.TransactionInbound:
			items[i].Stock = items[i].Stock.Add(quantity)
		case entity.TransactionOutbound:
			newStock := items[i].Stock.Sub(quantity)
			if newStock.IsNegative() {
				return true, domain.ErrInsufficientStock
			}
			items[i].Stock = newStock
		}
		items[i].UpdatedAt = now
		return true, nil
	}
	return false, nil
}

// FindItem busca un ítem por ID.
func FindItem(items []entity.Item, id int) (*entity.Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	return nil, false
}

// FindSupplier busca un proveedor por ID.
func FindSupplier(suppliers []entity.Supplier, id int) (*entity.Supplier, bool) {
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], true
		}
	}
	return nil, false
}
