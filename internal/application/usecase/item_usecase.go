package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/internal/domain/validation"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// ItemUseCase casos de uso CRUD y carga masiva de ítems. Stock solo se fija al crear;
// después cambia únicamente con movimientos.
type ItemUseCase struct {
	tx  inventory.TxRunner
	log *logger.Logger
	now func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(tx inventory.TxRunner, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{tx: tx, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Create valida y persiste un ítem con su stock inicial.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Stock.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: stock y precio no pueden ser negativos", domain.ErrInvalidQuantity)
	}
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
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
		it := entity.Item{
			Name:        strings.TrimSpace(in.Name),
			ItemCode:    validation.OptionalString(in.ItemCode),
			Category:    in.Category,
			SupplierID:  in.SupplierID,
			Unit:        in.Unit,
			Stock:       in.Stock,
			UnitPrice:   in.UnitPrice,
			Description: in.Description,
		}
		if err := validation.ValidateItem(it, items); err != nil {
			return err
		}
		now := uc.now()
		it.ID = domaininv.NextID(items)
		it.CreatedAt, it.UpdatedAt = now, now
		if err := repos.Items.Save(ctx, append(items, it)); err != nil {
			return err
		}
		out = toItemResponse(it, suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("item_id", out.ID).Str("name", out.Name).Msg("ítem creado")
	return out, nil
}

// GetByID obtiene un ítem por ID (ErrNotFound si no existe).
func (uc *ItemUseCase) GetByID(ctx context.Context, id int) (*dto.ItemResponse, error) {
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		it, ok := domaininv.FindItem(items, id)
		if !ok {
			return fmt.Errorf("ítem %d: %w", id, domain.ErrNotFound)
		}
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		out = toItemResponse(*it, suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List devuelve los ítems ordenados por nombre; query filtra por nombre (sin distinguir mayúsculas).
func (uc *ItemUseCase) List(ctx context.Context, query string) ([]dto.ItemResponse, error) {
	var (
		items     []entity.Item
		suppliers []entity.Supplier
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if items, err = repos.Items.Load(ctx); err != nil {
			return err
		}
		suppliers, err = repos.Suppliers.Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		out = append(out, *toItemResponse(it, suppliers))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update aplica los campos presentes (nunca Stock) y vuelve a validar.
func (uc *ItemUseCase) Update(ctx context.Context, id int, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidQuantity)
	}
	var out *dto.ItemResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		current, ok := domaininv.FindItem(items, id)
		if !ok {
			return fmt.Errorf("ítem %d: %w", id, domain.ErrNotFound)
		}
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		it := *current
		if in.Name != nil {
			it.Name = strings.TrimSpace(*in.Name)
		}
		if in.ItemCode != nil {
			it.ItemCode = validation.OptionalString(*in.ItemCode)
		}
		if in.Category != nil {
			it.Category = *in.Category
		}
		switch {
		case in.ClearSupplier:
			it.SupplierID = nil
		case in.SupplierID != nil:
			if _, ok := domaininv.FindSupplier(suppliers, *in.SupplierID); !ok {
				return fmt.Errorf("proveedor %d: %w", *in.SupplierID, domain.ErrNotFound)
			}
			sid := *in.SupplierID
			it.SupplierID = &sid
		}
		if in.Unit != nil {
			it.Unit = *in.Unit
		}
		if in.UnitPrice != nil {
			it.UnitPrice = *in.UnitPrice
		}
		if in.Description != nil {
			it.Description = *in.Description
		}
		if err := validation.ValidateItem(it, items); err != nil {
			return err
		}
		it.UpdatedAt = uc.now()
		*current = it
		if err := repos.Items.Save(ctx, items); err != nil {
			return err
		}
		out = toItemResponse(it, suppliers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina el ítem. BOM y movimientos que lo referencian no se modifican:
// se muestran como "desconocido".
func (uc *ItemUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		for _, it := range items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(items) {
			return fmt.Errorf("ítem %d: %w", id, domain.ErrNotFound)
		}
		if err := repos.Items.Save(ctx, kept); err != nil {
			return err
		}
		uc.log.Info().Int("item_id", id).Msg("ítem eliminado")
		return nil
	})
}

// Import crea un ítem por fila válida. Proveedor por nombre (no encontrado = sin proveedor);
// stock y precio vacíos valen 0, ilegibles rechazan la fila.
func (uc *ItemUseCase) Import(ctx context.Context, rows []dto.ItemImportRow) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Errors: []dto.ImportError{}}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		now := uc.now()
		for _, row := range rows {
			name := strings.TrimSpace(row.Name)
			stock, err := parseOptionalDecimal(row.Stock)
			if err != nil {
				report.Reject(row.Line, fmt.Sprintf("stock no numérico '%s' - %s", row.Stock, name))
				continue
			}
			price, err := parseOptionalDecimal(row.UnitPrice)
			if err != nil {
				report.Reject(row.Line, fmt.Sprintf("precio unitario no numérico '%s' - %s", row.UnitPrice, name))
				continue
			}
			it := entity.Item{
				Name:        name,
				ItemCode:    validation.OptionalString(row.ItemCode),
				Category:    row.Category,
				Unit:        row.Unit,
				Stock:       stock,
				UnitPrice:   price,
				Description: row.Description,
			}
			if name := strings.TrimSpace(row.SupplierName); name != "" {
				for _, s := range suppliers {
					if s.Name == name {
						sid := s.ID
						it.SupplierID = &sid
						break
					}
				}
			}
			if err := validation.ValidateItem(it, items); err != nil {
				report.Reject(row.Line, fmt.Sprintf("%s - %s", err.Error(), it.Name))
				continue
			}
			if it.Stock.IsNegative() || it.UnitPrice.IsNegative() {
				report.Reject(row.Line, fmt.Sprintf("stock y precio no pueden ser negativos - %s", it.Name))
				continue
			}
			it.ID = domaininv.NextID(items)
			it.CreatedAt, it.UpdatedAt = now, now
			items = append(items, it)
			report.Imported++
		}
		if report.Imported == 0 {
			return nil
		}
		return repos.Items.Save(ctx, items)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("imported", report.Imported).Int("rejected", len(report.Errors)).Msg("carga masiva de ítems")
	return report, nil
}

// parseOptionalDecimal vacío = 0.
func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toItemResponse(it entity.Item, suppliers []entity.Supplier) *dto.ItemResponse {
	out := &dto.ItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		SupplierID:   it.SupplierID,
		SupplierName: domaininv.NoneName,
		Unit:         it.Unit,
		Stock:        it.Stock,
		UnitPrice:    it.UnitPrice,
		StockValue:   it.StockValue(),
		Description:  it.Description,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	if it.ItemCode != nil {
		out.ItemCode = *it.ItemCode
	}
	if it.SupplierID != nil {
		out.SupplierName = domaininv.UnknownName
		if s, ok := domaininv.FindSupplier(suppliers, *it.SupplierID); ok {
			out.SupplierName = s.Name
		}
	}
	return out
}
