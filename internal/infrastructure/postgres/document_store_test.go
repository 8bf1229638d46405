package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
	"github.com/jhoicas/inventario-bom/pkg/config"
)

func TestIsUndefinedTable(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, isUndefinedTable(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "42P01"})))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUndefinedTable(errors.New("42P01")))
}

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func TestDocumentStore_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `DELETE FROM inventory_documents`)
	require.NoError(t, err)

	runner := NewTxRunner(pool)
	err = runner.Run(ctx, func(repos repository.Repositories) error {
		items, err := repos.Items.Load(ctx)
		if err != nil {
			return err
		}
		items = append(items, entity.Item{ID: 1, Name: "Tabla", Stock: decimal.RequireFromString("4.5")})
		return repos.Items.Save(ctx, items)
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = runner.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Items.Save(ctx, nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	items, err := NewItemRepository(pool).Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1, "el rollback debe conservar el documento anterior")
	assert.True(t, items[0].Stock.Equal(decimal.RequireFromString("4.5")))
}
