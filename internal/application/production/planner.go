// Package production calcula planes de producción a partir del BOM y los ejecuta contra el stock.
package production

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

// Planner calcula planes sin efectos secundarios.
type Planner struct {
	tx inventory.TxRunner
}

// NewPlanner construye el planificador.
func NewPlanner(tx inventory.TxRunner) *Planner {
	return &Planner{tx: tx}
}

// Plan calcula los materiales necesarios para fabricar quantity unidades del producto.
func (p *Planner) Plan(ctx context.Context, productID, quantity int) (*domaininv.ProductionPlan, error) {
	var plan *domaininv.ProductionPlan
	err := p.tx.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		if _, ok := domaininv.FindItem(items, productID); !ok {
			return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
		}
		bom, err := repos.BOM.Load(ctx)
		if err != nil {
			return err
		}
		plan, err = domaininv.ComputePlan(productID, quantity, bom, items)
		return err
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// ProductsWithBOM lista los productos que tienen BOM y siguen existiendo como ítem, por nombre.
func (p *Planner) ProductsWithBOM(ctx context.Context) ([]dto.ProductBOMSummary, error) {
	var (
		items []entity.Item
		bom   entity.BOMTable
	)
	err := p.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		if items, err = repos.Items.Load(ctx); err != nil {
			return err
		}
		bom, err = repos.BOM.Load(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProductBOMSummary, 0, len(bom))
	for _, id := range bom.ProductIDs() {
		item, ok := domaininv.FindItem(items, id)
		if !ok {
			continue
		}
		components, _ := bom.Components(id)
		summary := dto.ProductBOMSummary{
			ProductID:     id,
			ProductName:   item.Name,
			Unit:          item.Unit,
			MaterialCount: len(components),
		}
		if item.ItemCode != nil {
			summary.ItemCode = *item.ItemCode
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductName != out[j].ProductName {
			return out[i].ProductName < out[j].ProductName
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}
