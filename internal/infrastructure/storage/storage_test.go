package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/config"
)

func TestOpen_File(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageFile, DataDir: t.TempDir()}}
	ctx := context.Background()

	tx, closeFn, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	err = tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Suppliers.Save(ctx, []entity.Supplier{{ID: 1, Name: "Maderas"}})
	})
	require.NoError(t, err)

	var loaded []entity.Supplier
	require.NoError(t, tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		loaded, err = repos.Suppliers.Load(ctx)
		return err
	}))
	require.Len(t, loaded, 1)
	assert.Equal(t, "Maderas", loaded[0].Name)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}})
	assert.Error(t, err)
}
