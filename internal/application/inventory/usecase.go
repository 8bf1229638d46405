package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// TransactionUseCase registro manual, eliminación con reversa, consulta y carga masiva de movimientos.
type TransactionUseCase struct {
	tx     TxRunner
	ledger *StockLedger
	log    *logger.Logger
	now    func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(tx TxRunner, ledger *StockLedger, log *logger.Logger) *TransactionUseCase {
	return &TransactionUseCase{
		tx:     tx,
		ledger: ledger,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register aplica el movimiento al stock y, si tuvo éxito, lo agrega al historial.
// Con stock insuficiente no se modifica nada y se devuelve ErrInsufficientStock.
func (uc *TransactionUseCase) Register(ctx context.Context, in dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	txType, ok := entity.ParseTransactionType(in.Type)
	if !ok {
		return nil, domain.ErrInvalidTransactionType
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	date := entity.NewDate(uc.now())
	if in.TransactionDate != "" {
		d, err := entity.ParseDate(in.TransactionDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		date = d
	}

	var out dto.TransactionResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		if _, ok := domaininv.FindItem(items, in.ItemID); !ok {
			return fmt.Errorf("ítem %d: %w", in.ItemID, domain.ErrNotFound)
		}
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		if in.SupplierID != nil {
			if _, ok := domaininv.FindSupplier(suppliers, *in.SupplierID); !ok {
				return fmt.Errorf("proveedor %d: %w", *in.SupplierID, domain.ErrNotFound)
			}
		}

		if err := uc.ledger.Apply(ctx, repos.Items, in.ItemID, in.Quantity, txType); err != nil {
			return err
		}

		txs, err := repos.Transactions.Load(ctx)
		if err != nil {
			return err
		}
		t := entity.Transaction{
			ID:              domaininv.NextID(txs),
			TransactionType: txType,
			ItemID:          in.ItemID,
			Quantity:        in.Quantity,
			SupplierID:      in.SupplierID,
			TransactionDate: date,
			Note:            in.Note,
			CreatedAt:       uc.now(),
		}
		txs = append(txs, t)
		if err := repos.Transactions.Save(ctx, txs); err != nil {
			return err
		}
		out = ToTransactionResponse(t, items, suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("transaction_id", out.ID).Str("type", out.TransactionType).Int("item_id", out.ItemID).
		Str("quantity", out.Quantity.String()).Msg("movimiento registrado")
	return &out, nil
}

// Delete revierte el efecto del movimiento sobre el stock y lo elimina del historial.
// Si la reversa dejaría stock negativo el registro se conserva (ErrInsufficientStock).
func (uc *TransactionUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		txs, err := repos.Transactions.Load(ctx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range txs {
			if txs[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("movimiento %d: %w", id, domain.ErrNotFound)
		}
		t := txs[idx]
		original, ok := entity.ParseTransactionType(t.TransactionType)
		if !ok {
			return domain.ErrInvalidTransactionType
		}
		if err := uc.ledger.Apply(ctx, repos.Items, t.ItemID, t.Quantity, entity.ReverseTransactionType(original)); err != nil {
			return err
		}
		txs = append(txs[:idx], txs[idx+1:]...)
		if err := repos.Transactions.Save(ctx, txs); err != nil {
			return err
		}
		uc.log.Info().Int("transaction_id", id).Msg("movimiento eliminado y stock revertido")
		return nil
	})
}

// List devuelve los movimientos filtrados, del más reciente al más antiguo.
func (uc *TransactionUseCase) List(ctx context.Context, f dto.TransactionFilter) (*dto.TransactionListResponse, error) {
	var typeFilter string
	if f.Type != "" {
		t, ok := entity.ParseTransactionType(f.Type)
		if !ok {
			return nil, domain.ErrInvalidTransactionType
		}
		typeFilter = t
	}
	var from, to entity.Date
	var err error
	if f.From != "" {
		if from, err = entity.ParseDate(f.From); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	if f.To != "" {
		if to, err = entity.ParseDate(f.To); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	var (
		txs       []entity.Transaction
		items     []entity.Item
		suppliers []entity.Supplier
	)
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if txs, err = repos.Transactions.Load(ctx); err != nil {
			return err
		}
		if items, err = repos.Items.Load(ctx); err != nil {
			return err
		}
		suppliers, err = repos.Suppliers.Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Transaction, 0, len(txs))
	for _, t := range txs {
		if typeFilter != "" {
			if tt, _ := entity.ParseTransactionType(t.TransactionType); tt != typeFilter {
				continue
			}
		}
		if f.ItemID > 0 && t.ItemID != f.ItemID {
			continue
		}
		if !from.IsZero() && t.TransactionDate.Before(from) {
			continue
		}
		if !to.IsZero() && t.TransactionDate.After(to) {
			continue
		}
		filtered = append(filtered, t)
	}
	SortNewestFirst(filtered)

	page := f.Page()
	start, end := page.Window(len(filtered))
	resp := &dto.TransactionListResponse{
		Items: ToTransactionResponses(filtered[start:end], items, suppliers),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(filtered)},
	}
	return resp, nil
}

// SortNewestFirst ordena por fecha de movimiento descendente; a igual fecha, por ID descendente.
func SortNewestFirst(txs []entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].TransactionDate.Equal(txs[j].TransactionDate.Time) {
			return txs[i].TransactionDate.After(txs[j].TransactionDate)
		}
		return txs[i].ID > txs[j].ID
	})
}

// ToTransactionResponse resuelve ítem y proveedor del movimiento a nombres.
// Referencias colgantes se muestran como "desconocido"; sin proveedor, "ninguno".
func ToTransactionResponse(t entity.Transaction, items []entity.Item, suppliers []entity.Supplier) dto.TransactionResponse {
	txType := t.TransactionType
	if parsed, ok := entity.ParseTransactionType(txType); ok {
		txType = parsed
	}
	out := dto.TransactionResponse{
		ID:              t.ID,
		TransactionType: txType,
		ItemID:          t.ItemID,
		ItemName:        domaininv.UnknownName,
		Quantity:        t.Quantity,
		SupplierID:      t.SupplierID,
		SupplierName:    domaininv.NoneName,
		TransactionDate: t.TransactionDate.String(),
		Note:            t.Note,
		CreatedAt:       t.CreatedAt,
	}
	if item, ok := domaininv.FindItem(items, t.ItemID); ok {
		out.ItemName = item.Name
		out.Unit = item.Unit
		if item.ItemCode != nil {
			out.ItemCode = *item.ItemCode
		}
	}
	if t.SupplierID != nil {
		out.SupplierName = domaininv.UnknownName
		if s, ok := domaininv.FindSupplier(suppliers, *t.SupplierID); ok {
			out.SupplierName = s.Name
		}
	}
	return out
}

// ToTransactionResponses versión de lista de ToTransactionResponse.
func ToTransactionResponses(txs []entity.Transaction, items []entity.Item, suppliers []entity.Supplier) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, ToTransactionResponse(t, items, suppliers))
	}
	return out
}
