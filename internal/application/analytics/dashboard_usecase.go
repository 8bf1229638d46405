// Package analytics contiene los casos de uso del tablero de inventario.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

const (
	dashboardTopItems           = 10 // ítems en el ranking por valor
	dashboardRecentTransactions = 20
	dashboardWindowDays         = 30
	defaultCategory             = "Otros"
)

// DashboardUseCase genera el resumen del inventario a partir de los documentos.
type DashboardUseCase struct {
	tx                inventory.TxRunner
	lowStockThreshold decimal.Decimal
	now               func() time.Time
}

// NewDashboardUseCase construye el caso de uso. lowStockThreshold 0 desactiva la alerta de stock bajo.
func NewDashboardUseCase(tx inventory.TxRunner, lowStockThreshold int) *DashboardUseCase {
	return &DashboardUseCase{
		tx:                tx,
		lowStockThreshold: decimal.NewFromInt(int64(lowStockThreshold)),
		now:               func() time.Time { return time.Now().UTC() },
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
//  1. Totales: ítems, proveedores y valor de stock (stock * precio).
//  2. Movimientos de los últimos 30 días por tipo, y su serie diaria.
//  3. Top 10 por valor y valor por categoría (solo stock > 0).
//  4. Últimos 20 movimientos registrados, el más reciente primero.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		items     []entity.Item
		suppliers []entity.Supplier
		txs       []entity.Transaction
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if items, err = repos.Items.Load(ctx); err != nil {
			return err
		}
		if suppliers, err = repos.Suppliers.Load(ctx); err != nil {
			return err
		}
		txs, err = repos.Transactions.Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	today := entity.NewDate(uc.now())
	windowStart := entity.NewDate(today.AddDate(0, 0, -dashboardWindowDays))

	out := &dto.DashboardSummaryDTO{
		TotalItems:      len(items),
		TotalSuppliers:  len(suppliers),
		TotalStockValue: domaininv.TotalStockValue(items),
	}

	// ── Movimientos recientes ─────────────────────────────────────────────────
	daily := map[string]*dto.DailyMovementDTO{}
	for _, t := range txs {
		if t.TransactionDate.IsZero() || t.TransactionDate.Before(windowStart) {
			continue
		}
		txType, ok := entity.ParseTransactionType(t.TransactionType)
		if !ok {
			continue
		}
		key := t.TransactionDate.String()
		day, ok := daily[key]
		if !ok {
			day = &dto.DailyMovementDTO{Date: key}
			daily[key] = day
		}
		if txType == entity.TransactionInbound {
			out.RecentInbound++
			day.Inbound++
		} else {
			out.RecentOutbound++
			day.Outbound++
		}
	}
	out.DailyMovements = make([]dto.DailyMovementDTO, 0, len(daily))
	for _, d := range daily {
		out.DailyMovements = append(out.DailyMovements, *d)
	}
	sort.Slice(out.DailyMovements, func(i, j int) bool { return out.DailyMovements[i].Date < out.DailyMovements[j].Date })

	// ── Valor de inventario ───────────────────────────────────────────────────
	out.TopItems = make([]dto.StockValueDTO, 0, dashboardTopItems)
	for _, it := range domaininv.TopItemsByValue(items, dashboardTopItems) {
		v := dto.StockValueDTO{
			ItemID:     it.ID,
			Name:       it.Name,
			Category:   categoryOrDefault(it.Category),
			Stock:      it.Stock,
			Unit:       it.Unit,
			StockValue: it.StockValue(),
		}
		if it.ItemCode != nil {
			v.ItemCode = *it.ItemCode
		}
		out.TopItems = append(out.TopItems, v)
	}
	normalized := make([]entity.Item, len(items))
	for i, it := range items {
		it.Category = categoryOrDefault(it.Category)
		normalized[i] = it
	}
	byCategory := domaininv.StockValueByCategory(normalized)
	out.ValueByCategory = make([]dto.CategoryValueDTO, 0, len(byCategory))
	for _, c := range byCategory {
		out.ValueByCategory = append(out.ValueByCategory, dto.CategoryValueDTO{Category: c.Category, Value: c.Value})
	}

	// ── Stock bajo ────────────────────────────────────────────────────────────
	out.LowStock = []dto.LowStockDTO{}
	if uc.lowStockThreshold.IsPositive() {
		for _, it := range items {
			if it.Stock.LessThan(uc.lowStockThreshold) {
				out.LowStock = append(out.LowStock, dto.LowStockDTO{ItemID: it.ID, Name: it.Name, Stock: it.Stock, Unit: it.Unit})
			}
		}
		sort.SliceStable(out.LowStock, func(i, j int) bool { return out.LowStock[i].Stock.LessThan(out.LowStock[j].Stock) })
	}

	// ── Últimos movimientos (orden de registro) ───────────────────────────────
	start := max(len(txs)-dashboardRecentTransactions, 0)
	recent := make([]entity.Transaction, 0, len(txs)-start)
	for i := len(txs) - 1; i >= start; i-- {
		recent = append(recent, txs[i])
	}
	out.RecentTransactions = inventory.ToTransactionResponses(recent, items, suppliers)

	return out, nil
}

func categoryOrDefault(c string) string {
	if c == "" {
		return defaultCategory
	}
	return c
}
