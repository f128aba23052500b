package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestMoveStock_TrasladaEntreUbicaciones(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 25)

	mov, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locB.ID,
		Quantity:       10,
		ReceivedBy:     1,
	})
	require.NoError(t, err)
	require.NotNil(t, mov)
	assert.NotZero(t, mov.ID)
	assert.NotEmpty(t, mov.TransactionID)
	assert.False(t, mov.Date.IsZero())

	assert.Equal(t, int64(15), f.balance(t, f.item.ID, f.locA.ID))
	assert.Equal(t, int64(10), f.balance(t, f.item.ID, f.locB.ID))
	// El total del artículo no cambia con un traslado.
	assert.Equal(t, int64(25), f.totalByItem(t, f.item.ID))
}

func TestMoveStock_StockInsuficienteNoAlteraSaldos(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 15)
	f.setBalance(t, f.item.ID, f.locB.ID, 10)

	_, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locB.ID,
		Quantity:       20,
		ReceivedBy:     1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, int64(20), insufErr.Requested)
	assert.Equal(t, int64(15), insufErr.Available)
	assert.Equal(t, f.locA.ID, insufErr.LocationID)

	// Nada quedó aplicado: ni saldos ni movimiento.
	assert.Equal(t, int64(15), f.balance(t, f.item.ID, f.locA.ID))
	assert.Equal(t, int64(10), f.balance(t, f.item.ID, f.locB.ID))
	movs, err := f.store.Movements().List(50, 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestMoveStock_RechazoQuedaEnBitacora(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 5)

	_, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locB.ID,
		Quantity:       50,
		ReceivedBy:     7,
	})
	require.Error(t, err)

	entries := f.auditEntries(t)
	require.NotEmpty(t, entries)
	last := entries[0]
	assert.Equal(t, entity.AuditActionError, last.ActionType)
	assert.Equal(t, entity.AuditEntityMovement, last.EntityType)
	assert.Equal(t, int64(7), last.PerformedBy)
}

func TestMoveStock_ExitoQuedaEnBitacora(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 10)

	mov, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locB.ID,
		Quantity:       3,
		ReceivedBy:     2,
	})
	require.NoError(t, err)

	entries := f.auditEntries(t)
	require.NotEmpty(t, entries)
	last := entries[0]
	assert.Equal(t, entity.AuditActionCreate, last.ActionType)
	assert.Equal(t, entity.AuditEntityMovement, last.EntityType)
	assert.Equal(t, mov.ID, last.EntityID)
}

func TestMoveStock_MismaUbicacion(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 10)

	_, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locA.ID,
		Quantity:       5,
		ReceivedBy:     1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
}

func TestMoveStock_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()

	for _, qty := range []int64{0, -3} {
		_, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
			ItemID:         f.item.ID,
			FromLocationID: f.locA.ID,
			ToLocationID:   f.locB.ID,
			Quantity:       qty,
			ReceivedBy:     1,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestMoveStock_ReferenciasDesconocidas(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()

	_, err := engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         9999,
		FromLocationID: f.locA.ID,
		ToLocationID:   f.locB.ID,
		Quantity:       1,
		ReceivedBy:     1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = engine.MoveStock(context.Background(), ledger.MoveStockInput{
		ItemID:         f.item.ID,
		FromLocationID: 9999,
		ToLocationID:   f.locB.ID,
		Quantity:       1,
		ReceivedBy:     1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Traslados cruzados concurrentes entre las mismas dos ubicaciones: el total
// del artículo se conserva y ningún saldo queda negativo.
func TestMoveStock_TrasladosCruzadosConcurrentes(t *testing.T) {
	f := newFixture(t)
	engine := f.movements()
	f.setBalance(t, f.item.ID, f.locA.ID, 100)
	f.setBalance(t, f.item.ID, f.locB.ID, 100)

	const rounds = 20
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = engine.MoveStock(context.Background(), ledger.MoveStockInput{
				ItemID: f.item.ID, FromLocationID: f.locA.ID, ToLocationID: f.locB.ID,
				Quantity: 3, ReceivedBy: 1,
			})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, _ = engine.MoveStock(context.Background(), ledger.MoveStockInput{
				ItemID: f.item.ID, FromLocationID: f.locB.ID, ToLocationID: f.locA.ID,
				Quantity: 3, ReceivedBy: 1,
			})
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(200), f.totalByItem(t, f.item.ID))
	assert.GreaterOrEqual(t, f.balance(t, f.item.ID, f.locA.ID), int64(0))
	assert.GreaterOrEqual(t, f.balance(t, f.item.ID, f.locB.ID), int64(0))
}
