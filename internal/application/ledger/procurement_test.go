package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestRecordProcurement_AcreditaSaldoDestino(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()

	lot, err := pl.RecordProcurement(context.Background(), ledger.RecordProcurementInput{
		ItemID:                f.item.ID,
		Type:                  entity.ProcurementTypePurchase,
		Supplier:              "Distribuidora Norte",
		Quantity:              40,
		UnitPrice:             decimal.RequireFromString("12.50"),
		DocumentType:          entity.DocumentTypePurchaseOrder,
		RecordedBy:            1,
		DestinationLocationID: f.locA.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, lot)
	assert.NotZero(t, lot.ID)
	assert.False(t, lot.Date.IsZero())

	assert.Equal(t, int64(40), f.balance(t, f.item.ID, f.locA.ID))

	// El precio total es derivado, nunca almacenado.
	assert.True(t, lot.TotalPrice().Equal(decimal.RequireFromString("500")),
		"total %s", lot.TotalPrice())
}

func TestRecordProcurement_AcumulaSobreSaldoExistente(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()
	f.setBalance(t, f.item.ID, f.locA.ID, 10)

	_, err := pl.RecordProcurement(context.Background(), ledger.RecordProcurementInput{
		ItemID:                f.item.ID,
		Type:                  entity.ProcurementTypeDonation,
		Quantity:              5,
		RecordedBy:            1,
		DestinationLocationID: f.locA.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(15), f.balance(t, f.item.ID, f.locA.ID))
}

func TestRecordProcurement_Validaciones(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()

	cases := []struct {
		name string
		in   ledger.RecordProcurementInput
		want error
	}{
		{
			name: "tipo desconocido",
			in: ledger.RecordProcurementInput{
				ItemID: f.item.ID, Type: "loan", Quantity: 1, DestinationLocationID: f.locA.ID,
			},
			want: domain.ErrValidation,
		},
		{
			name: "cantidad cero",
			in: ledger.RecordProcurementInput{
				ItemID: f.item.ID, Type: entity.ProcurementTypePurchase, Quantity: 0, DestinationLocationID: f.locA.ID,
			},
			want: domain.ErrValidation,
		},
		{
			name: "precio negativo",
			in: ledger.RecordProcurementInput{
				ItemID: f.item.ID, Type: entity.ProcurementTypePurchase, Quantity: 1,
				UnitPrice: decimal.RequireFromString("-1"), DestinationLocationID: f.locA.ID,
			},
			want: domain.ErrValidation,
		},
		{
			name: "artículo desconocido",
			in: ledger.RecordProcurementInput{
				ItemID: 9999, Type: entity.ProcurementTypePurchase, Quantity: 1, DestinationLocationID: f.locA.ID,
			},
			want: domain.ErrValidation,
		},
		{
			name: "ubicación desconocida",
			in: ledger.RecordProcurementInput{
				ItemID: f.item.ID, Type: entity.ProcurementTypePurchase, Quantity: 1, DestinationLocationID: 9999,
			},
			want: domain.ErrValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pl.RecordProcurement(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Ningún intento rechazado tocó saldos.
	assert.Equal(t, int64(0), f.totalByItem(t, f.item.ID))
}

func TestAmend_CorrigeMetadatos(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()

	lot, err := pl.RecordProcurement(context.Background(), ledger.RecordProcurementInput{
		ItemID:                f.item.ID,
		Type:                  entity.ProcurementTypePurchase,
		Supplier:              "Proveedor equivocado",
		Quantity:              10,
		UnitPrice:             decimal.RequireFromString("3.00"),
		RecordedBy:            1,
		DestinationLocationID: f.locA.ID,
	})
	require.NoError(t, err)

	supplier := "Distribuidora Norte"
	price := decimal.RequireFromString("3.25")
	notes := "corrección de factura"
	amended, err := pl.Amend(context.Background(), lot.ID, ledger.AmendLotInput{
		Supplier:  &supplier,
		UnitPrice: &price,
		Notes:     &notes,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, supplier, amended.Supplier)
	assert.True(t, amended.UnitPrice.Equal(price))
	assert.Equal(t, notes, amended.Notes)

	// La corrección no toca cantidad ni saldo.
	assert.Equal(t, int64(10), amended.Quantity)
	assert.Equal(t, int64(10), f.balance(t, f.item.ID, f.locA.ID))

	// Queda rastro de la corrección en la bitácora.
	entries := f.auditEntries(t)
	require.NotEmpty(t, entries)
	assert.Equal(t, entity.AuditActionUpdate, entries[0].ActionType)
	assert.Equal(t, entity.AuditEntityProcurement, entries[0].EntityType)
}

func TestAmend_RechazaCamposInmutables(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()

	lot, err := pl.RecordProcurement(context.Background(), ledger.RecordProcurementInput{
		ItemID:                f.item.ID,
		Type:                  entity.ProcurementTypePurchase,
		Quantity:              10,
		RecordedBy:            1,
		DestinationLocationID: f.locA.ID,
	})
	require.NoError(t, err)

	qty := int64(99)
	itemID := int64(42)
	locID := f.locB.ID

	for _, patch := range []ledger.AmendLotInput{
		{Quantity: &qty},
		{ItemID: &itemID},
		{DestinationLocationID: &locID},
	} {
		_, err := pl.Amend(context.Background(), lot.ID, patch, 2)
		assert.ErrorIs(t, err, domain.ErrImmutableField)
	}

	// El lote sigue intacto.
	stored, err := f.store.Procurements().GetByID(lot.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stored.Quantity)
	assert.Equal(t, f.item.ID, stored.ItemID)
	assert.Equal(t, f.locA.ID, stored.DestinationLocationID)
}

func TestAmend_LoteInexistente(t *testing.T) {
	f := newFixture(t)
	pl := f.procurements()

	supplier := "alguien"
	_, err := pl.Amend(context.Background(), 9999, ledger.AmendLotInput{Supplier: &supplier}, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
