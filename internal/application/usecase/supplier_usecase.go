package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/internal/domain/validation"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// SupplierUseCase casos de uso CRUD y carga masiva de proveedores.
type SupplierUseCase struct {
	tx  inventory.TxRunner
	log *logger.Logger
	now func() time.Time
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(tx inventory.TxRunner, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{tx: tx, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Create valida contra la colección actual, asigna ID y persiste.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	var created entity.Supplier
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		s := entity.Supplier{
			Name:           strings.TrimSpace(in.Name),
			BusinessNumber: validation.OptionalString(in.BusinessNumber),
			Address:        in.Address,
			Phone:          in.Phone,
			Email:          in.Email,
			Note:           in.Note,
		}
		if err := validation.ValidateSupplier(s, suppliers); err != nil {
			return err
		}
		now := uc.now()
		s.ID = domaininv.NextID(suppliers)
		s.CreatedAt, s.UpdatedAt = now, now
		if err := repos.Suppliers.Save(ctx, append(suppliers, s)); err != nil {
			return err
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("supplier_id", created.ID).Str("name", created.Name).Msg("proveedor creado")
	return toSupplierResponse(created), nil
}

// GetByID obtiene un proveedor por ID (ErrNotFound si no existe).
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int) (*dto.SupplierResponse, error) {
	var found entity.Supplier
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		s, ok := domaininv.FindSupplier(suppliers, id)
		if !ok {
			return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
		}
		found = *s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(found), nil
}

// List devuelve los proveedores ordenados por nombre; query filtra por nombre (sin distinguir mayúsculas).
func (uc *SupplierUseCase) List(ctx context.Context, query string) ([]dto.SupplierResponse, error) {
	var suppliers []entity.Supplier
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		suppliers, err = repos.Suppliers.Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
			continue
		}
		out = append(out, *toSupplierResponse(s))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update aplica los campos presentes y vuelve a validar. CreatedAt se conserva.
func (uc *SupplierUseCase) Update(ctx context.Context, id int, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	var updated entity.Supplier
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		current, ok := domaininv.FindSupplier(suppliers, id)
		if !ok {
			return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
		}
		s := *current
		if in.Name != nil {
			s.Name = strings.TrimSpace(*in.Name)
		}
		if in.BusinessNumber != nil {
			s.BusinessNumber = validation.OptionalString(*in.BusinessNumber)
		}
		if in.Address != nil {
			s.Address = *in.Address
		}
		if in.Phone != nil {
			s.Phone = *in.Phone
		}
		if in.Email != nil {
			s.Email = *in.Email
		}
		if in.Note != nil {
			s.Note = *in.Note
		}
		if err := validation.ValidateSupplier(s, suppliers); err != nil {
			return err
		}
		s.UpdatedAt = uc.now()
		*current = s
		if err := repos.Suppliers.Save(ctx, suppliers); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(updated), nil
}

// Delete elimina el proveedor. Ítems y movimientos que lo referencian no se modifican.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int) error {
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		kept := suppliers[:0]
		for _, s := range suppliers {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(suppliers) {
			return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
		}
		return repos.Suppliers.Save(ctx, kept)
	})
}

// Import valida cada fila contra la colección (incluidas las filas ya aceptadas) y guarda una sola vez.
func (uc *SupplierUseCase) Import(ctx context.Context, rows []dto.SupplierImportRow) (*dto.ImportReport, error) {
	report := &dto.ImportReport{Errors: []dto.ImportError{}}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		suppliers, err := repos.Suppliers.Load(ctx)
		if err != nil {
			return err
		}
		now := uc.now()
		for _, row := range rows {
			s := entity.Supplier{
				Name:           strings.TrimSpace(row.Name),
				BusinessNumber: validation.OptionalString(row.BusinessNumber),
				Address:        row.Address,
				Phone:          row.Phone,
				Email:          row.Email,
				Note:           row.Note,
			}
			if err := validation.ValidateSupplier(s, suppliers); err != nil {
				report.Reject(row.Line, fmt.Sprintf("%s - %s", err.Error(), s.Name))
				continue
			}
			s.ID = domaininv.NextID(suppliers)
			s.CreatedAt, s.UpdatedAt = now, now
			suppliers = append(suppliers, s)
			report.Imported++
		}
		if report.Imported == 0 {
			return nil
		}
		return repos.Suppliers.Save(ctx, suppliers)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("imported", report.Imported).Int("rejected", len(report.Errors)).Msg("carga masiva de proveedores")
	return report, nil
}

func toSupplierResponse(s entity.Supplier) *dto.SupplierResponse {
	out := &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		Email:     s.Email,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.BusinessNumber != nil {
		out.BusinessNumber = *s.BusinessNumber
	}
	return out
}
