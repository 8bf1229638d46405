package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// BOMUseCase gestión del BOM de un nivel: consulta, alta/baja/modificación de materiales y copia.
type BOMUseCase struct {
	tx  inventory.TxRunner
	log *logger.Logger
}

// NewBOMUseCase construye el caso de uso.
func NewBOMUseCase(tx inventory.TxRunner, log *logger.Logger) *BOMUseCase {
	return &BOMUseCase{tx: tx, log: log}
}

// bomState instantánea cargada dentro de una unidad de trabajo.
type bomState struct {
	items   []entity.Item
	bom     entity.BOMTable
	product *entity.Item
}

func (uc *BOMUseCase) load(ctx context.Context, repos repository.Repositories, productID int) (*bomState, error) {
	items, err := repos.Items.Load(ctx)
	if err != nil {
		return nil, err
	}
	product, ok := domaininv.FindItem(items, productID)
	if !ok {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	bom, err := repos.BOM.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &bomState{items: items, bom: bom, product: product}, nil
}

// Get devuelve el BOM del producto (lista vacía si no tiene).
func (uc *BOMUseCase) Get(ctx context.Context, productID int) (*dto.BOMResponse, error) {
	var out *dto.BOMResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		st, err := uc.load(ctx, repos, productID)
		if err != nil {
			return err
		}
		out = st.response()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableMaterials ítems que pueden agregarse: ni el propio producto ni materiales ya presentes.
func (uc *BOMUseCase) AvailableMaterials(ctx context.Context, productID int) ([]dto.MaterialOption, error) {
	var out []dto.MaterialOption
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		st, err := uc.load(ctx, repos, productID)
		if err != nil {
			return err
		}
		out = make([]dto.MaterialOption, 0, len(st.items))
		for _, it := range st.items {
			if it.ID == productID || st.bom.HasMaterial(productID, it.ID) {
				continue
			}
			opt := dto.MaterialOption{ID: it.ID, Name: it.Name, Unit: it.Unit, Stock: it.Stock}
			if it.ItemCode != nil {
				opt.ItemCode = *it.ItemCode
			}
			out = append(out, opt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddMaterial agrega un material al final del BOM del producto.
func (uc *BOMUseCase) AddMaterial(ctx context.Context, productID int, in dto.AddMaterialRequest) (*dto.BOMResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	if in.MaterialID == productID {
		return nil, domain.ErrSelfReference
	}
	return uc.mutate(ctx, productID, func(st *bomState) error {
		if _, ok := domaininv.FindItem(st.items, in.MaterialID); !ok {
			return fmt.Errorf("material %d: %w", in.MaterialID, domain.ErrNotFound)
		}
		if st.bom.HasMaterial(productID, in.MaterialID) {
			return domain.ErrDuplicateMaterial
		}
		components, _ := st.bom.Components(productID)
		st.bom.Set(productID, append(components, entity.BOMComponent{
			MaterialID: in.MaterialID,
			Quantity:   in.Quantity,
			Note:       in.Note,
		}))
		return nil
	})
}

// UpdateMaterial cambia cantidad y nota de un material existente en el BOM.
func (uc *BOMUseCase) UpdateMaterial(ctx context.Context, productID, materialID int, in dto.UpdateMaterialRequest) (*dto.BOMResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	return uc.mutate(ctx, productID, func(st *bomState) error {
		components, _ := st.bom.Components(productID)
		for i := range components {
			if components[i].MaterialID == materialID {
				components[i].Quantity = in.Quantity
				components[i].Note = in.Note
				return nil
			}
		}
		return fmt.Errorf("material %d en BOM: %w", materialID, domain.ErrNotFound)
	})
}

// RemoveMaterial quita un material; si la lista queda vacía el producto deja de tener BOM.
func (uc *BOMUseCase) RemoveMaterial(ctx context.Context, productID, materialID int) (*dto.BOMResponse, error) {
	return uc.mutate(ctx, productID, func(st *bomState) error {
		components, _ := st.bom.Components(productID)
		kept := make([]entity.BOMComponent, 0, len(components))
		for _, c := range components {
			if c.MaterialID != materialID {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(components) {
			return fmt.Errorf("material %d en BOM: %w", materialID, domain.ErrNotFound)
		}
		st.bom.Set(productID, kept)
		return nil
	})
}

// Copy copia el BOM de otro producto. overwrite reemplaza la lista; append agrega solo
// materiales ausentes. En ambos modos se omite el propio producto como material.
func (uc *BOMUseCase) Copy(ctx context.Context, productID int, in dto.CopyBOMRequest) (*dto.BOMResponse, error) {
	if in.SourceProductID == productID {
		return nil, domain.ErrSelfReference
	}
	if in.Mode != dto.CopyModeOverwrite && in.Mode != dto.CopyModeAppend {
		return nil, fmt.Errorf("%w: modo de copia %q", domain.ErrInvalidInput, in.Mode)
	}
	return uc.mutate(ctx, productID, func(st *bomState) error {
		source, ok := st.bom.Components(in.SourceProductID)
		if !ok {
			return fmt.Errorf("producto origen %d: %w", in.SourceProductID, domain.ErrNoBOMDefined)
		}
		var target []entity.BOMComponent
		if in.Mode == dto.CopyModeAppend {
			current, _ := st.bom.Components(productID)
			target = append(target, current...)
		}
		for _, c := range source {
			if c.MaterialID == productID || containsMaterial(target, c.MaterialID) {
				continue
			}
			target = append(target, c)
		}
		st.bom.Set(productID, target)
		return nil
	})
}

// mutate carga, aplica fn y guarda la tabla BOM dentro de una unidad de trabajo.
func (uc *BOMUseCase) mutate(ctx context.Context, productID int, fn func(st *bomState) error) (*dto.BOMResponse, error) {
	var out *dto.BOMResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		st, err := uc.load(ctx, repos, productID)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		if err := repos.BOM.Save(ctx, st.bom); err != nil {
			return err
		}
		out = st.response()
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("product_id", productID).Int("materials", len(out.Materials)).Msg("BOM actualizado")
	return out, nil
}

func (st *bomState) response() *dto.BOMResponse {
	components, _ := st.bom.Components(st.product.ID)
	out := &dto.BOMResponse{
		ProductID:   st.product.ID,
		ProductName: st.product.Name,
		Unit:        st.product.Unit,
		Materials:   make([]dto.BOMLineResponse, 0, len(components)),
	}
	for _, c := range components {
		line := dto.BOMLineResponse{
			MaterialID:   c.MaterialID,
			MaterialName: domaininv.UnknownName,
			Quantity:     c.Quantity,
			CurrentStock: decimal.Zero,
			Note:         c.Note,
		}
		if m, ok := domaininv.FindItem(st.items, c.MaterialID); ok {
			line.MaterialName = m.Name
			line.Unit = m.Unit
			line.CurrentStock = m.Stock
			if m.ItemCode != nil {
				line.ItemCode = *m.ItemCode
			}
		}
		out.Materials = append(out.Materials, line)
	}
	return out
}

func containsMaterial(components []entity.BOMComponent, materialID int) bool {
	for _, c := range components {
		if c.MaterialID == materialID {
			return true
		}
	}
	return false
}
