package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func TestSummary(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Items(), store.Requests(), store.Movements(), store.Balances())

	cat := &entity.Category{Name: "Insumos"}
	require.NoError(t, store.Categories().Create(cat))
	dep := &entity.Department{Name: "Operaciones"}
	require.NoError(t, store.Departments().Create(dep))
	locA := &entity.Location{Name: "Bodega", DepartmentID: dep.ID}
	require.NoError(t, store.Locations().Create(locA))
	locB := &entity.Location{Name: "Oficina", DepartmentID: dep.ID}
	require.NoError(t, store.Locations().Create(locB))

	// Dos artículos, uno con el total bajo su umbral.
	low := &entity.Item{Name: "Tóner", CategoryID: cat.ID, LowStockThreshold: 5}
	require.NoError(t, store.Items().Create(low))
	ok := &entity.Item{Name: "Resma", CategoryID: cat.ID, LowStockThreshold: 5}
	require.NoError(t, store.Items().Create(ok))
	require.NoError(t, store.Balances().Upsert(&entity.StockBalance{ItemID: low.ID, LocationID: locA.ID, Quantity: 2}))
	require.NoError(t, store.Balances().Upsert(&entity.StockBalance{ItemID: ok.ID, LocationID: locA.ID, Quantity: 20}))

	require.NoError(t, store.Requests().Create(&entity.StockRequest{
		ItemID: low.ID, ItemName: low.Name, Quantity: 1,
		FromLocationID: locA.ID, ToLocationID: locB.ID,
		RequestedBy: 1, Status: entity.RequestStatusPending, CreatedAt: time.Now(),
	}))
	require.NoError(t, store.Movements().Create(&entity.StockMovement{
		TransactionID: "tx-1", ItemID: ok.ID,
		FromLocationID: locA.ID, ToLocationID: locB.ID,
		Quantity: 1, Date: time.Now(), ReceivedBy: 1, CreatedAt: time.Now(),
	}))

	sum, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.TotalItems)
	assert.Equal(t, int64(1), sum.PendingRequests)
	assert.Equal(t, int64(1), sum.RecentMovements)

	require.Len(t, sum.LowStock, 1)
	assert.Equal(t, low.ID, sum.LowStock[0].ItemID)
	assert.Equal(t, int64(2), sum.LowStock[0].Total)
	assert.Equal(t, int64(5), sum.LowStock[0].Threshold)
}

func TestSummary_AlmacenVacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Items(), store.Requests(), store.Movements(), store.Balances())

	sum, err := uc.Summary()
	require.NoError(t, err)
	assert.Zero(t, sum.TotalItems)
	assert.Zero(t, sum.PendingRequests)
	assert.Zero(t, sum.RecentMovements)
	assert.Empty(t, sum.LowStock)
}
