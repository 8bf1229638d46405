package analytics

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-bom/internal/domain/entity"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/memory"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDashboard_GetSummary(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	day := func(daysAgo int) entity.Date { return entity.NewDate(now.AddDate(0, 0, -daysAgo)) }

	require.NoError(t, repos.Suppliers.Save(ctx, []entity.Supplier{{ID: 1, Name: "Maderas"}}))
	require.NoError(t, repos.Items.Save(ctx, []entity.Item{
		{ID: 1, Name: "Tabla", Category: "Madera", Stock: dec(10), UnitPrice: dec(100)},
		{ID: 2, Name: "Tornillo", Stock: dec(3), UnitPrice: dec(5)},
		{ID: 3, Name: "Cola", Category: "Madera", Stock: dec(0), UnitPrice: dec(50)},
	}))
	var txs []entity.Transaction
	for i := 1; i <= 25; i++ {
		txs = append(txs, entity.Transaction{ID: i, TransactionType: entity.TransactionInbound, ItemID: 1, Quantity: dec(1), TransactionDate: day(40)})
	}
	txs = append(txs,
		entity.Transaction{ID: 26, TransactionType: "입고", ItemID: 2, Quantity: dec(1), TransactionDate: day(2)},
		entity.Transaction{ID: 27, TransactionType: entity.TransactionOutbound, ItemID: 1, Quantity: dec(1), TransactionDate: day(2)},
		entity.Transaction{ID: 28, TransactionType: entity.TransactionOutbound, ItemID: 9, Quantity: dec(1), TransactionDate: day(0)},
	)
	require.NoError(t, repos.Transactions.Save(ctx, txs))

	uc := NewDashboardUseCase(memory.NewTxRunner(store), 5)
	uc.now = func() time.Time { return now }

	s, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 1, s.TotalSuppliers)
	assert.True(t, s.TotalStockValue.Equal(dec(1015)), s.TotalStockValue.String())
	assert.Equal(t, 1, s.RecentInbound)
	assert.Equal(t, 2, s.RecentOutbound)

	require.Len(t, s.DailyMovements, 2)
	assert.Equal(t, "2024-06-28", s.DailyMovements[0].Date)
	assert.Equal(t, 1, s.DailyMovements[0].Inbound)
	assert.Equal(t, 1, s.DailyMovements[0].Outbound)

	require.Len(t, s.TopItems, 2)
	assert.Equal(t, "Tabla", s.TopItems[0].Name)
	assert.Equal(t, "Otros", s.TopItems[1].Category)

	require.Len(t, s.ValueByCategory, 2)
	assert.Equal(t, "Madera", s.ValueByCategory[0].Category)

	require.Len(t, s.LowStock, 2)
	assert.Equal(t, 3, s.LowStock[0].ItemID)
	assert.Equal(t, 2, s.LowStock[1].ItemID)

	require.Len(t, s.RecentTransactions, 20)
	assert.Equal(t, 28, s.RecentTransactions[0].ID)
	assert.Equal(t, "desconocido", s.RecentTransactions[0].ItemName)
	assert.Equal(t, 9, s.RecentTransactions[19].ID, fmt.Sprint(s.RecentTransactions[19]))
}

func TestDashboard_Vacio(t *testing.T) {
	uc := NewDashboardUseCase(memory.NewTxRunner(memory.NewStore()), 0)
	s, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.TotalItems)
	assert.True(t, s.TotalStockValue.IsZero())
	assert.Empty(t, s.RecentTransactions)
	assert.NotNil(t, s.LowStock)
}
