package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestRecordDiscard_DecrementaSaldo(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()
	f.setBalance(t, f.item.ID, f.locA.ID, 20)

	rec, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:      f.item.ID,
		LocationID:  f.locA.ID,
		Quantity:    8,
		Reason:      entity.DiscardReasonDamaged,
		DiscardedBy: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.Date.IsZero())

	assert.Equal(t, int64(12), f.balance(t, f.item.ID, f.locA.ID))
}

func TestRecordDiscard_StockInsuficiente(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()
	f.setBalance(t, f.item.ID, f.locA.ID, 5)

	_, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:      f.item.ID,
		LocationID:  f.locA.ID,
		Quantity:    6,
		Reason:      entity.DiscardReasonExpired,
		DiscardedBy: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, int64(6), insufErr.Requested)
	assert.Equal(t, int64(5), insufErr.Available)

	// El saldo y el libro de descartes quedan como estaban.
	assert.Equal(t, int64(5), f.balance(t, f.item.ID, f.locA.ID))
	discards, err := f.store.Discards().List(50, 0)
	require.NoError(t, err)
	assert.Empty(t, discards)
}

func TestRecordDiscard_MotivoInvalido(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()
	f.setBalance(t, f.item.ID, f.locA.ID, 10)

	_, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:      f.item.ID,
		LocationID:  f.locA.ID,
		Quantity:    1,
		Reason:      "lost",
		DiscardedBy: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordDiscard_LoteDesconocido(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()
	f.setBalance(t, f.item.ID, f.locA.ID, 10)

	_, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:           f.item.ID,
		LocationID:       f.locA.ID,
		Quantity:         1,
		Reason:           entity.DiscardReasonOther,
		ProcurementLotID: 9999,
		DiscardedBy:      1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), f.balance(t, f.item.ID, f.locA.ID))
}

func TestRecordDiscard_VinculaLoteDeOrigen(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()
	dl := f.discardLedger()

	lot, err := pl.RecordProcurement(context.Background(), ledger.RecordProcurementInput{
		ItemID:                f.item.ID,
		Type:                  entity.ProcurementTypePurchase,
		Quantity:              10,
		RecordedBy:            1,
		DestinationLocationID: f.locA.ID,
	})
	require.NoError(t, err)

	rec, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:           f.item.ID,
		LocationID:       f.locA.ID,
		Quantity:         2,
		Reason:           entity.DiscardReasonExpired,
		ProcurementLotID: lot.ID,
		DiscardedBy:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, lot.ID, rec.ProcurementLotID)
	assert.Equal(t, int64(8), f.balance(t, f.item.ID, f.locA.ID))
}

func TestRecordDiscard_AdvierteStockBajo(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()

	// Umbral 10: el descarte deja el total en 6, por debajo del umbral.
	f.item.LowStockThreshold = 10
	require.NoError(t, f.store.Items().Update(f.item))
	f.setBalance(t, f.item.ID, f.locA.ID, 12)

	_, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:      f.item.ID,
		LocationID:  f.locA.ID,
		Quantity:    6,
		Reason:      entity.DiscardReasonObsolete,
		DiscardedBy: 1,
	})
	require.NoError(t, err)

	entries := f.auditEntries(t)
	require.NotEmpty(t, entries)
	warning := entries[0]
	assert.Equal(t, entity.AuditActionWarning, warning.ActionType)
	assert.Equal(t, entity.AuditEntityItem, warning.EntityType)
	assert.Equal(t, f.item.ID, warning.EntityID)
	assert.Contains(t, warning.Details, "stock bajo")
}

func TestRecordDiscard_SinAdvertenciaConUmbralCero(t *testing.T) {
	f := newFixture(t)
	dl := f.discardLedger()
	f.setBalance(t, f.item.ID, f.locA.ID, 3)

	_, err := dl.RecordDiscard(context.Background(), ledger.RecordDiscardInput{
		ItemID:      f.item.ID,
		LocationID:  f.locA.ID,
		Quantity:    2,
		Reason:      entity.DiscardReasonDamaged,
		DiscardedBy: 1,
	})
	require.NoError(t, err)

	for _, e := range f.auditEntries(t) {
		assert.NotEqual(t, entity.AuditActionWarning, e.ActionType)
	}
}
