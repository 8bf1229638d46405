package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
)

func TestGeneratePlanPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	g.now = func() time.Time { return time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC) }

	plan := &domaininv.ProductionPlan{
		ProductID:   1,
		ProductName: "Mesa",
		Quantity:    3,
		Materials: []domaininv.PlanLine{
			{MaterialID: 2, Name: "Tabla", RequiredQuantity: decimal.NewFromInt(12), CurrentStock: decimal.NewFromInt(20), Sufficient: true},
			{MaterialID: 3, Name: "Tornillo", RequiredQuantity: decimal.NewFromInt(48), CurrentStock: decimal.NewFromInt(10), Shortage: decimal.NewFromInt(38)},
		},
	}

	out, err := g.GeneratePlanPDF(context.Background(), plan)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePlanPDF_PlanNulo(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GeneratePlanPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestFormatQty(t *testing.T) {
	assert.Equal(t, "12.5", formatQty(decimal.RequireFromString("12.50")))
	assert.Equal(t, "0", formatQty(decimal.Zero))
}
