package ledger

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DiscardLedger da de baja cantidad en una ubicación. Junto con la corrección
// administrativa, es la única operación que reduce el total de un artículo.
type DiscardLedger struct {
	tx        TxRunner
	items     repository.ItemRepository
	locations repository.LocationRepository
	lots      repository.ProcurementRepository
	balances  repository.BalanceRepository
	recorder  *audit.Recorder
}

// NewDiscardLedger construye el libro de descartes.
func NewDiscardLedger(
	tx TxRunner,
	items repository.ItemRepository,
	locations repository.LocationRepository,
	lots repository.ProcurementRepository,
	balances repository.BalanceRepository,
	recorder *audit.Recorder,
) *DiscardLedger {
	return &DiscardLedger{tx: tx, items: items, locations: locations, lots: lots, balances: balances, recorder: recorder}
}

// RecordDiscardInput entrada para registrar un descarte.
type RecordDiscardInput struct {
	ItemID           int64
	LocationID       int64
	Quantity         int64
	Reason           string
	ProcurementLotID int64 // 0 = sin lote; el vínculo es informativo
	Date             time.Time
	DiscardedBy      int64
	Notes            string
}

// RecordDiscard valida el saldo disponible, lo decrementa y crea el registro
// en la misma transacción. Si el total del artículo queda bajo su umbral se
// anota además una advertencia de stock bajo.
func (l *DiscardLedger) RecordDiscard(ctx context.Context, in RecordDiscardInput) (*entity.DiscardRecord, error) {
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser mayor que cero"}
	}
	if !entity.ValidDiscardReason(in.Reason) {
		return nil, &domain.ValidationError{Field: "reason", Reason: "debe ser damaged, expired, obsolete u other"}
	}
	item, err := l.items.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.ValidationError{Field: "item_id", Reason: fmt.Sprintf("artículo %d desconocido", in.ItemID)}
	}
	loc, err := l.locations.GetByID(in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, &domain.ValidationError{Field: "location_id", Reason: fmt.Sprintf("ubicación %d desconocida", in.LocationID)}
	}
	if in.ProcurementLotID != 0 {
		lot, err := l.lots.GetByID(in.ProcurementLotID)
		if err != nil {
			return nil, err
		}
		if lot == nil {
			return nil, fmt.Errorf("%w: lote %d", domain.ErrNotFound, in.ProcurementLotID)
		}
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	rec := &entity.DiscardRecord{
		ItemID:           in.ItemID,
		LocationID:       in.LocationID,
		Quantity:         in.Quantity,
		Reason:           in.Reason,
		ProcurementLotID: in.ProcurementLotID,
		Date:             date,
		DiscardedBy:      in.DiscardedBy,
		Notes:            in.Notes,
		CreatedAt:        now,
	}

	err = l.tx.Run(ctx, func(r TxRepos) error {
		bal, err := r.Balances.GetForUpdate(in.ItemID, in.LocationID)
		if err != nil {
			return err
		}
		if bal.Quantity < in.Quantity {
			return &domain.InsufficientStockError{
				ItemID:     in.ItemID,
				LocationID: in.LocationID,
				Requested:  in.Quantity,
				Available:  bal.Quantity,
			}
		}
		bal.Quantity -= in.Quantity
		bal.UpdatedAt = now
		if err := r.Balances.Upsert(bal); err != nil {
			return err
		}
		return r.Discards.Create(rec)
	})
	if err != nil {
		return nil, err
	}

	l.recorder.Record(entity.AuditActionCreate, entity.AuditEntityDiscard, rec.ID, in.DiscardedBy,
		fmt.Sprintf("descarte (%s) de %d unidad(es) del artículo %d en ubicación %d",
			rec.Reason, rec.Quantity, rec.ItemID, rec.LocationID))

	l.checkLowStock(item, in.DiscardedBy)
	return rec, nil
}

// checkLowStock anota una advertencia si el total del artículo quedó bajo el
// umbral. Los traslados no pasan por aquí: no cambian el total.
func (l *DiscardLedger) checkLowStock(item *entity.Item, performedBy int64) {
	if item.LowStockThreshold <= 0 {
		return
	}
	total, err := l.balances.TotalByItem(item.ID)
	if err != nil || total >= item.LowStockThreshold {
		return
	}
	l.recorder.RecordWithMeta(entity.AuditActionWarning, entity.AuditEntityItem, item.ID, performedBy,
		fmt.Sprintf("stock bajo: %q quedó en %d unidad(es), umbral %d", item.Name, total, item.LowStockThreshold),
		map[string]string{
			"low_stock": "1",
			"item_name": item.Name,
			"total":     strconv.FormatInt(total, 10),
		})
}
