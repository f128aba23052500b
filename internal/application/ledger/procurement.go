package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProcurementLedger registra adquisiciones (compra, donación, traslado
// entrante) que crean stock en una ubicación destino.
type ProcurementLedger struct {
	tx        TxRunner
	items     repository.ItemRepository
	locations repository.LocationRepository
	recorder  *audit.Recorder
}

// NewProcurementLedger construye el libro de adquisiciones.
func NewProcurementLedger(
	tx TxRunner,
	items repository.ItemRepository,
	locations repository.LocationRepository,
	recorder *audit.Recorder,
) *ProcurementLedger {
	return &ProcurementLedger{tx: tx, items: items, locations: locations, recorder: recorder}
}

// RecordProcurementInput entrada para registrar una adquisición.
type RecordProcurementInput struct {
	ItemID                int64
	Type                  string
	Supplier              string
	Quantity              int64
	UnitPrice             decimal.Decimal
	Date                  time.Time
	DocumentType          string
	Notes                 string
	RecordedBy            int64
	DestinationLocationID int64
}

// RecordProcurement crea el lote y acredita el saldo del destino en la misma
// transacción; luego anota la creación en la bitácora.
func (l *ProcurementLedger) RecordProcurement(ctx context.Context, in RecordProcurementInput) (*entity.ProcurementLot, error) {
	if !entity.ValidProcurementType(in.Type) {
		return nil, &domain.ValidationError{Field: "type", Reason: "debe ser purchase, donation o transfer-in"}
	}
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser mayor que cero"}
	}
	if in.UnitPrice.IsNegative() {
		return nil, &domain.ValidationError{Field: "unit_price", Reason: "no puede ser negativo"}
	}
	item, err := l.items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.ValidationError{Field: "item_id", Reason: fmt.Sprintf("artículo %d desconocido", in.ItemID)}
	}
	loc, err := l.locations.GetByID(in.DestinationLocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, &domain.ValidationError{Field: "destination_location_id", Reason: fmt.Sprintf("ubicación %d desconocida", in.DestinationLocationID)}
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	lot := &entity.ProcurementLot{
		ItemID:                in.ItemID,
		Type:                  in.Type,
		Supplier:              in.Supplier,
		Quantity:              in.Quantity,
		UnitPrice:             in.UnitPrice,
		Date:                  date,
		DocumentType:          in.DocumentType,
		Notes:                 in.Notes,
		RecordedBy:            in.RecordedBy,
		DestinationLocationID: in.DestinationLocationID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	err = l.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Procurements.Create(lot); err != nil {
			return err
		}
		bal, err := r.Balances.GetForUpdate(in.ItemID, in.DestinationLocationID)
		if err != nil {
			return err
		}
		bal.Quantity += in.Quantity
		bal.UpdatedAt = now
		return r.Balances.Upsert(bal)
	})
	if err != nil {
		return nil, err
	}

	l.recorder.Record(entity.AuditActionCreate, entity.AuditEntityProcurement, lot.ID, in.RecordedBy,
		fmt.Sprintf("adquisición (%s) de %d unidad(es) del artículo %d en ubicación %d, total %s",
			lot.Type, lot.Quantity, lot.ItemID, lot.DestinationLocationID, lot.TotalPrice().StringFixed(2)))
	return lot, nil
}

// AmendLotInput corrección administrativa de un lote. Solo proveedor, precio
// unitario, fecha, tipo de documento y notas son corregibles; intentar tocar
// cantidad, artículo o destino falla con ErrImmutableField.
type AmendLotInput struct {
	Supplier     *string
	UnitPrice    *decimal.Decimal
	Date         *time.Time
	DocumentType *string
	Notes        *string

	// Presentes solo para poder rechazar el intento de forma explícita.
	Quantity              *int64
	ItemID                *int64
	DestinationLocationID *int64
}

// Amend aplica la corrección y la anota en la bitácora; la historia previa no
// se muta en silencio, la entrada de update es el rastro de la corrección.
func (l *ProcurementLedger) Amend(ctx context.Context, lotID int64, patch AmendLotInput, amendedBy int64) (*entity.ProcurementLot, error) {
	switch {
	case patch.Quantity != nil:
		return nil, fmt.Errorf("%w: quantity", domain.ErrImmutableField)
	case patch.ItemID != nil:
		return nil, fmt.Errorf("%w: item_id", domain.ErrImmutableField)
	case patch.DestinationLocationID != nil:
		return nil, fmt.Errorf("%w: destination_location_id", domain.ErrImmutableField)
	}
	if patch.UnitPrice != nil && patch.UnitPrice.IsNegative() {
		return nil, &domain.ValidationError{Field: "unit_price", Reason: "no puede ser negativo"}
	}

	var lot *entity.ProcurementLot
	err := l.tx.Run(ctx, func(r TxRepos) error {
		var err error
		lot, err = r.Procurements.GetByID(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return fmt.Errorf("%w: lote %d", domain.ErrNotFound, lotID)
		}
		if patch.Supplier != nil {
			lot.Supplier = *patch.Supplier
		}
		if patch.UnitPrice != nil {
			lot.UnitPrice = *patch.UnitPrice
		}
		if patch.Date != nil {
			lot.Date = *patch.Date
		}
		if patch.DocumentType != nil {
			lot.DocumentType = *patch.DocumentType
		}
		if patch.Notes != nil {
			lot.Notes = *patch.Notes
		}
		lot.UpdatedAt = time.Now()
		return r.Procurements.Update(lot)
	})
	if err != nil {
		return nil, err
	}

	l.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityProcurement, lot.ID, amendedBy,
		fmt.Sprintf("corrección administrativa del lote %d (metadatos)", lot.ID))
	return lot, nil
}
