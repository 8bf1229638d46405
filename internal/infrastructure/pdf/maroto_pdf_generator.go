// Package pdf genera la hoja de producción (plan de materiales) en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + unidad    │  Cantidad + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Requerido | Stock | Faltante | Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: factible / materiales insuficientes + QR           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-bom/internal/application/production"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ production.PlanPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa production.PlanPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	now func() time.Time
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{now: time.Now}
}

// GeneratePlanPDF genera la hoja de producción y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePlanPDF(_ context.Context, plan *domaininv.ProductionPlan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("pdf: plan nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Plan de producción", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(plan.Materials)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(plan))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(plan *domaininv.ProductionPlan, at time.Time) core.Row {
	unit := nonEmpty(plan.Unit, "unidades")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(plan.ProductName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Producto #%d", plan.ProductID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PLAN DE PRODUCCIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d %s", plan.Quantity, unit), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Material", 4, align.Left),
		h("Requerido", 2, align.Right),
		h("Stock", 2, align.Right),
		h("Faltante", 2, align.Right),
		h("Estado", 2, align.Center),
	)
}

func tableRows(lines []domaininv.PlanLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		status, color := "OK", colorGray
		if !l.Sufficient {
			status, color = "FALTA", colorDanger
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatQty(l.RequiredQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatQty(l.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatQty(l.Shortage), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: color,
			})),
		))
	}
	return result
}

// summaryRow: veredicto del plan y QR con la referencia producto/cantidad.
func summaryRow(plan *domaininv.ProductionPlan) core.Row {
	verdict, color := "Stock suficiente: la producción puede ejecutarse.", colorPrimary
	if !plan.Feasible {
		verdict = fmt.Sprintf("Materiales insuficientes: %d de %d.", len(plan.Insufficient()), len(plan.Materials))
		color = colorDanger
	}
	ref := fmt.Sprintf("producto=%d;cantidad=%d", plan.ProductID, plan.Quantity)
	return row.New(40).Add(
		col.New(8).Add(
			text.New(verdict, props.Text{Style: fontstyle.Bold, Size: 10, Top: 4, Color: color}),
			text.New("Ref: "+ref, props.Text{Size: 7, Top: 12, Color: colorGray}),
		),
		col.New(4).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQty muestra cantidades sin ceros decimales sobrantes ("12.50" -> "12.5").
func formatQty(d decimal.Decimal) string {
	return d.String()
}
