package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/domain"
	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

func TestItemUseCase_CRUD(t *testing.T) {
	tx, _ := newStore(t, []entity.Supplier{{ID: 1, Name: "Maderas"}}, nil)
	uc := NewItemUseCase(tx, logger.Nop())
	ctx := context.Background()

	it, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Tabla", ItemCode: "MAT-1", SupplierID: intPtr(1), Stock: dec(10), UnitPrice: dec(250)})
	require.NoError(t, err)
	assert.Equal(t, 1, it.ID)
	assert.Equal(t, "Maderas", it.SupplierName)
	assert.True(t, it.StockValue.Equal(dec(2500)))

	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "Tabla"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "Otra", ItemCode: "MAT-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemCode)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "Otra", SupplierID: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Create(ctx, dto.CreateItemRequest{Name: "Otra", Stock: dec(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	second, err := uc.Create(ctx, dto.CreateItemRequest{Name: "Tornillo"})
	require.NoError(t, err)
	assert.Equal(t, "ninguno", second.SupplierName)

	updated, err := uc.Update(ctx, 1, dto.UpdateItemRequest{Unit: strPtr("m"), ClearSupplier: true})
	require.NoError(t, err)
	assert.Equal(t, "m", updated.Unit)
	assert.Nil(t, updated.SupplierID)
	assert.True(t, updated.Stock.Equal(dec(10)), "la edición no toca el stock")

	_, err = uc.Update(ctx, 2, dto.UpdateItemRequest{ItemCode: strPtr("MAT-1")})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemCode)

	list, err := uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tabla", list[0].Name)

	require.NoError(t, uc.Delete(ctx, 2))
	_, err = uc.GetByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUseCase_ProveedorEliminadoSeMuestraDesconocido(t *testing.T) {
	tx, _ := newStore(t, nil, []entity.Item{{ID: 1, Name: "Tabla", SupplierID: intPtr(4)}})
	uc := NewItemUseCase(tx, logger.Nop())

	it, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "desconocido", it.SupplierName)
}

func TestItemUseCase_Import(t *testing.T) {
	tx, repos := newStore(t, []entity.Supplier{{ID: 1, Name: "Maderas"}}, []entity.Item{{ID: 1, Name: "Tabla", ItemCode: strPtr("MAT-1")}})
	uc := NewItemUseCase(tx, logger.Nop())
	ctx := context.Background()

	report, err := uc.Import(ctx, []dto.ItemImportRow{
		{Line: 2, Name: "Tornillo", SupplierName: "Maderas", Stock: "100", UnitPrice: "2.5"},
		{Line: 3, Name: "Cola", ItemCode: "MAT-1"},
		{Line: 4, Name: "Clavo", SupplierName: "Nadie", Stock: " ", UnitPrice: ""},
		{Line: 5, Name: "Lija", Stock: "-3"},
		{Line: 6, Name: "Tuerca", Stock: "abc", UnitPrice: "1"},
		{Line: 7, Name: "Arandela", Stock: "4", UnitPrice: "x1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Errors, 4)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Equal(t, 5, report.Errors[1].Line)
	assert.Equal(t, 6, report.Errors[2].Line)
	assert.Contains(t, report.Errors[2].Message, "stock no numérico")
	assert.Equal(t, 7, report.Errors[3].Line)
	assert.Contains(t, report.Errors[3].Message, "precio unitario no numérico")

	items, err := repos.Items.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 1, *items[1].SupplierID)
	assert.True(t, items[1].UnitPrice.Equal(decimalFromString(t, "2.5")))
	assert.Nil(t, items[2].SupplierID)
	assert.True(t, items[2].Stock.IsZero())
}
