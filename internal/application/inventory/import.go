package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

// Formatos de fecha aceptados en la carga masiva, en orden de prueba.
var importDateLayouts = []string{
	entity.DateLayout,
	"2006/01/02",
	"2006.01.02",
	"20060102",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseImportDate interpreta la fecha de una fila; vacía o ilegible devuelve fallback.
func ParseImportDate(s string, fallback entity.Date) entity.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return entity.NewDate(t)
		}
	}
	return fallback
}

// Import registra cada fila válida como un movimiento: se aplica al stock y se agrega al historial.
// Las filas inválidas o sin stock suficiente se omiten y se reportan; el historial se guarda una vez.
func (uc *TransactionUseCase) Import(ctx context.Context, rows []dto.TransactionImportRow) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Errors: []dto.ImportError{}}
	today := entity.NewDate(uc.now())

	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		txs, err := repos.Transactions.Load(ctx)
		if err != nil {
			return err
		}

		for _, row := range rows {
			txType, ok := entity.ParseTransactionType(row.Type)
			if !ok {
				report.Reject(row.Line, fmt.Sprintf("tipo de movimiento inválido %q: use inbound/outbound (입고/출고)", row.Type))
				continue
			}
			itemName := strings.TrimSpace(row.ItemName)
			item, ok := findItemByName(items, itemName)
			if !ok {
				report.Reject(row.Line, fmt.Sprintf("ítem %q no encontrado", itemName))
				continue
			}
			qty, err := decimal.NewFromString(strings.TrimSpace(row.Quantity))
			if err != nil {
				report.Reject(row.Line, fmt.Sprintf("cantidad no numérica: %q", row.Quantity))
				continue
			}
			if !qty.IsPositive() {
				report.Reject(row.Line, domain.ErrInvalidQuantity.Error())
				continue
			}
			var supplierID *int
			if name := strings.TrimSpace(row.SupplierName); name != "" {
				if s, ok := findSupplierByName(suppliers, name); ok {
					id := s.ID
					supplierID = &id
				}
			}

			if err := uc.ledger.Apply(ctx, repos.Items, item.ID, qty, txType); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					report.Reject(row.Line, fmt.Sprintf("stock insuficiente para la %s de %s unidades de %q", typeLabel(txType), qty, itemName))
					continue
				}
				return err
			}

			txs = append(txs, entity.Transaction{
				ID:              domaininv.NextID(txs),
				TransactionType: txType,
				ItemID:          item.ID,
				Quantity:        qty,
				SupplierID:      supplierID,
				TransactionDate: ParseImportDate(row.Date, today),
				Note:            row.Note,
				CreatedAt:       uc.now(),
			})
			report.Imported++
		}

		if report.Imported == 0 {
			return nil
		}
		return repos.Transactions.Save(ctx, txs)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("imported", report.Imported).Int("rejected", len(report.Errors)).Msg("carga masiva de movimientos")
	return report, nil
}

func findItemByName(items []entity.Item, name string) (entity.Item, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return entity.Item{}, false
}

func findSupplierByName(suppliers []entity.Supplier, name string) (entity.Supplier, bool) {
	for _, s := range suppliers {
		if s.Name == name {
			return s, true
		}
	}
	return entity.Supplier{}, false
}

// typeLabel "entrada" o "salida" para los mensajes de rechazo.
func typeLabel(txType string) string {
	if txType == entity.TransactionInbound {
		return "entrada"
	}
	return "salida"
}
