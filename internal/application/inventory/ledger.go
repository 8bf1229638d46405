package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/domain"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// StockLedger aplica movimientos de stock sobre el documento de ítems: cargar, aplicar, guardar.
// Debe llamarse dentro de TxRunner.Run con el repositorio de esa unidad de trabajo.
type StockLedger struct {
	log *logger.Logger
	now func() time.Time
}

// NewStockLedger construye el libro de stock.
func NewStockLedger(log *logger.Logger) *StockLedger {
	return &StockLedger{log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Apply suma (inbound) o resta (outbound) quantity al stock del ítem.
// Con ErrInsufficientStock (o cualquier error de validación) no se guarda nada.
// Un itemID inexistente no falla: se registra una advertencia y la colección se guarda igual.
func (l *StockLedger) Apply(ctx context.Context, items repository.ItemRepository, itemID int, quantity decimal.Decimal, direction string) error {
	list, err := items.Load(ctx)
	if err != nil {
		return err
	}
	found, err := domaininv.ApplyDelta(list, itemID, quantity, direction, l.now())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			l.log.Debug().Int("item_id", itemID).Str("quantity", quantity.String()).Msg("stock insuficiente, movimiento rechazado")
		}
		return err
	}
	if !found {
		l.log.Warn().Int("item_id", itemID).Str("direction", direction).Msg("movimiento sobre ítem inexistente, stock sin cambios")
	}
	return items.Save(ctx, list)
}
