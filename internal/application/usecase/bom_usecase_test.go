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

func bomFixture(t *testing.T) (*BOMUseCase, func() entity.BOMTable) {
	t.Helper()
	tx, repos := newStore(t, nil, []entity.Item{
		{ID: 1, Name: "Mesa"},
		{ID: 2, Name: "Tabla", Stock: dec(8)},
		{ID: 3, Name: "Tornillo"},
		{ID: 4, Name: "Silla"},
	})
	load := func() entity.BOMTable {
		bom, err := repos.BOM.Load(context.Background())
		require.NoError(t, err)
		return bom
	}
	return NewBOMUseCase(tx, logger.Nop()), load
}

func TestBOMUseCase_AddUpdateRemove(t *testing.T) {
	uc, load := bomFixture(t)
	ctx := context.Background()

	resp, err := uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 2, Quantity: dec(4), Note: "patas"})
	require.NoError(t, err)
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, "Tabla", resp.Materials[0].MaterialName)
	assert.True(t, resp.Materials[0].CurrentStock.Equal(dec(8)))

	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 3, Quantity: dec(16)})
	require.NoError(t, err)

	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 2, Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicateMaterial)
	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 1, Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrSelfReference)
	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 9, Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 4})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = uc.AddMaterial(ctx, 99, dto.AddMaterialRequest{MaterialID: 2, Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	available, err := uc.AvailableMaterials(ctx, 1)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 4, available[0].ID)

	resp, err = uc.UpdateMaterial(ctx, 1, 3, dto.UpdateMaterialRequest{Quantity: dec(12), Note: "M6"})
	require.NoError(t, err)
	assert.True(t, resp.Materials[1].Quantity.Equal(dec(12)))
	_, err = uc.UpdateMaterial(ctx, 1, 4, dto.UpdateMaterialRequest{Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	components, ok := load().Components(1)
	require.True(t, ok)
	assert.Equal(t, []int{2, 3}, []int{components[0].MaterialID, components[1].MaterialID})

	_, err = uc.RemoveMaterial(ctx, 1, 2)
	require.NoError(t, err)
	resp, err = uc.RemoveMaterial(ctx, 1, 3)
	require.NoError(t, err)
	assert.Empty(t, resp.Materials)
	_, ok = load().Components(1)
	assert.False(t, ok, "BOM vacío se elimina")
}

func TestBOMUseCase_Copy(t *testing.T) {
	uc, load := bomFixture(t)
	ctx := context.Background()

	_, err := uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 2, Quantity: dec(4)})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, 1, dto.AddMaterialRequest{MaterialID: 4, Quantity: dec(1)})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, 4, dto.AddMaterialRequest{MaterialID: 3, Quantity: dec(8)})
	require.NoError(t, err)
	_, err = uc.AddMaterial(ctx, 4, dto.AddMaterialRequest{MaterialID: 2, Quantity: dec(9)})
	require.NoError(t, err)

	// append: Tabla ya está en la silla, y la silla no puede ser material de sí misma.
	resp, err := uc.Copy(ctx, 4, dto.CopyBOMRequest{SourceProductID: 1, Mode: dto.CopyModeAppend})
	require.NoError(t, err)
	require.Len(t, resp.Materials, 2)
	assert.True(t, resp.Materials[1].Quantity.Equal(dec(9)))

	resp, err = uc.Copy(ctx, 4, dto.CopyBOMRequest{SourceProductID: 1, Mode: dto.CopyModeOverwrite})
	require.NoError(t, err)
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, 2, resp.Materials[0].MaterialID)
	assert.True(t, resp.Materials[0].Quantity.Equal(dec(4)))

	// El origen no cambia.
	src, _ := load().Components(1)
	assert.Len(t, src, 2)

	_, err = uc.Copy(ctx, 2, dto.CopyBOMRequest{SourceProductID: 3, Mode: dto.CopyModeOverwrite})
	assert.ErrorIs(t, err, domain.ErrNoBOMDefined)
	_, err = uc.Copy(ctx, 1, dto.CopyBOMRequest{SourceProductID: 1, Mode: dto.CopyModeAppend})
	assert.ErrorIs(t, err, domain.ErrSelfReference)
	_, err = uc.Copy(ctx, 2, dto.CopyBOMRequest{SourceProductID: 1, Mode: "merge"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
