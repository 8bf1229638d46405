package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/domain/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return s
}

func TestStore_LoadMissingDocuments(t *testing.T) {
	ctx := context.Background()
	repos := newTestStore(t).Repositories()

	suppliers, err := repos.Suppliers.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, suppliers)
	assert.NotNil(t, suppliers)

	items, err := repos.Items.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	bom, err := repos.BOM.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bom)
	assert.Empty(t, bom)

	txs, err := repos.Transactions.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repos := s.Repositories()
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	bn := "1234567890"
	code := "MAT-001"
	supplierID := 1

	suppliers := []entity.Supplier{{ID: 1, Name: "Maderas del Sur", BusinessNumber: &bn, CreatedAt: now, UpdatedAt: now}}
	items := []entity.Item{{
		ID: 1, Name: "Tabla", ItemCode: &code, SupplierID: &supplierID, Unit: "ea",
		Stock: decimal.RequireFromString("12.5"), UnitPrice: decimal.NewFromInt(3000), CreatedAt: now, UpdatedAt: now,
	}}
	bom := entity.BOMTable{"2": {{MaterialID: 1, Quantity: decimal.NewFromInt(2), Note: "corte"}}}
	txs := []entity.Transaction{{
		ID: 1, TransactionType: entity.TransactionInbound, ItemID: 1, Quantity: decimal.NewFromInt(5),
		TransactionDate: entity.NewDate(now), CreatedAt: now,
	}}

	require.NoError(t, repos.Suppliers.Save(ctx, suppliers))
	require.NoError(t, repos.Items.Save(ctx, items))
	require.NoError(t, repos.BOM.Save(ctx, bom))
	require.NoError(t, repos.Transactions.Save(ctx, txs))

	gotSuppliers, err := repos.Suppliers.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, suppliers, gotSuppliers)

	gotItems, err := repos.Items.Load(ctx)
	require.NoError(t, err)
	require.Len(t, gotItems, 1)
	assert.True(t, gotItems[0].Stock.Equal(items[0].Stock))
	assert.Equal(t, "MAT-001", *gotItems[0].ItemCode)
	assert.Equal(t, 1, *gotItems[0].SupplierID)

	gotBOM, err := repos.BOM.Load(ctx)
	require.NoError(t, err)
	components, ok := gotBOM.Components(2)
	require.True(t, ok)
	assert.Equal(t, 1, components[0].MaterialID)
	assert.True(t, components[0].Quantity.Equal(decimal.NewFromInt(2)))

	gotTxs, err := repos.Transactions.Load(ctx)
	require.NoError(t, err)
	require.Len(t, gotTxs, 1)
	assert.Equal(t, "2024-03-01", gotTxs[0].TransactionDate.String())

	_, err = os.Stat(filepath.Join(s.Dir(), "inventory_transactions.json"))
	assert.NoError(t, err)
}

func TestStore_NumerosSinComillas(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repos := s.Repositories()

	require.NoError(t, repos.Items.Save(ctx, []entity.Item{{ID: 1, Name: "Tabla", Stock: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(5)}}))
	require.NoError(t, repos.BOM.Save(ctx, entity.BOMTable{"2": {{MaterialID: 1, Quantity: decimal.RequireFromString("1.5")}}}))
	require.NoError(t, repos.Transactions.Save(ctx, []entity.Transaction{{ID: 1, TransactionType: entity.TransactionOutbound, ItemID: 1, Quantity: decimal.NewFromInt(3)}}))

	raw, err := os.ReadFile(filepath.Join(s.Dir(), "items.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"stock": 10,`)
	assert.Contains(t, string(raw), `"unit_price": 5,`)

	raw, err = os.ReadFile(filepath.Join(s.Dir(), "bom.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity": 1.5`)

	raw, err = os.ReadFile(filepath.Join(s.Dir(), "inventory_transactions.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity": 3,`)
}

func TestStore_LeeCantidadesEntreComillas(t *testing.T) {
	s := newTestStore(t)
	doc := `[{"id": 1, "name": "Tabla", "supplier_id": null, "stock": "7.5", "unit_price": 2}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "items.json"), []byte(doc), 0o644))

	items, err := s.Repositories().Items.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Stock.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(2)))
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Repositories().Items.Save(ctx, nil))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.json", entries[0].Name())

	data, err := os.ReadFile(filepath.Join(s.Dir(), "items.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestStore_CorruptDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "suppliers.json"), []byte("{no es json"), 0o644))

	_, err := s.Repositories().Suppliers.Load(context.Background())
	assert.Error(t, err)
}

func TestTxRunner_PropagatesError(t *testing.T) {
	runner := NewTxRunner(newTestStore(t))
	boom := errors.New("boom")

	err := runner.Run(context.Background(), func(repos repository.Repositories) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTxRunner_CanceledContext(t *testing.T) {
	runner := NewTxRunner(newTestStore(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := runner.Run(ctx, func(repository.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
