package production

import (
	"context"

	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
)

// PlanPDFGenerator genera la hoja de producción imprimible de un plan.
type PlanPDFGenerator interface {
	GeneratePlanPDF(ctx context.Context, plan *domaininv.ProductionPlan) ([]byte, error)
}
