package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
)

// Nombres mostrados para referencias débiles.
const (
	UnknownName = "desconocido" // la referencia apunta a un registro eliminado
	NoneName    = "ninguno"     // sin referencia
)

// PlanLine requerimiento de un material para una corrida de producción.
type PlanLine struct {
	MaterialID       int             `json:"material_id"`
	Name             string          `json:"name"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	Shortage         decimal.Decimal `json:"shortage"`
	Sufficient       bool            `json:"sufficient"`
}

// ProductionPlan plan calculado, sin efectos secundarios.
type ProductionPlan struct {
	ProductID   int        `json:"product_id"`
	ProductName string     `json:"product_name"`
	Unit        string     `json:"unit"`
	Quantity    int        `json:"quantity"`
	Materials   []PlanLine `json:"materials"`
	Feasible    bool       `json:"feasible"`
}

// Insufficient devuelve las líneas sin stock suficiente.
func (p *ProductionPlan) Insufficient() []PlanLine {
	var out []PlanLine
	for _, l := range p.Materials {
		if !l.Sufficient {
			out = append(out, l)
		}
	}
	return out
}

// ComputePlan explota el BOM de un nivel: required = cantidad por unidad * targetQty.
// Las líneas siguen el orden de inserción del BOM. Un material que ya no existe se
// tolera con stock 0 y nombre UnknownName.
func ComputePlan(productID, targetQty int, bom entity.BOMTable, items []entity.Item) (*ProductionPlan, error) {
	if targetQty <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	components, ok := bom.Components(productID)
	if !ok {
		return nil, domain.ErrNoBOMDefined
	}

	plan := &ProductionPlan{
		ProductID:   productID,
		ProductName: UnknownName,
		Quantity:    targetQty,
		Materials:   make([]PlanLine, 0, len(components)),
		Feasible:    true,
	}
	if product, found := FindItem(items, productID); found {
		plan.ProductName = product.Name
		plan.Unit = product.Unit
	}

	target := decimal.NewFromInt(int64(targetQty))
	for _, c := range components {
		line := PlanLine{
			MaterialID:       c.MaterialID,
			Name:             UnknownName,
			RequiredQuantity: c.Quantity.Mul(target),
			CurrentStock:     decimal.Zero,
		}
		if material, found := FindItem(items, c.MaterialID); found {
			line.Name = material.Name
			line.CurrentStock = material.Stock
		}
		line.Sufficient = line.CurrentStock.GreaterThanOrEqual(line.RequiredQuantity)
		if !line.Sufficient {
			line.Shortage = line.RequiredQuantity.Sub(line.CurrentStock)
			plan.Feasible = false
		}
		plan.Materials = append(plan.Materials, line)
	}
	return plan, nil
}
