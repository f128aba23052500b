package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementEngine valida y aplica traslados de cantidad entre dos ubicaciones.
// Es el único dueño de escritura de los saldos durante un traslado: decremento
// y incremento ocurren en la misma transacción, por lo que la suma de saldos
// de un artículo no cambia nunca por un traslado.
type MovementEngine struct {
	tx        TxRunner
	items     repository.ItemRepository
	locations repository.LocationRepository
	recorder  *audit.Recorder
}

// NewMovementEngine construye el motor de traslados.
func NewMovementEngine(
	tx TxRunner,
	items repository.ItemRepository,
	locations repository.LocationRepository,
	recorder *audit.Recorder,
) *MovementEngine {
	return &MovementEngine{tx: tx, items: items, locations: locations, recorder: recorder}
}

// MoveStockInput entrada para registrar un traslado.
type MoveStockInput struct {
	ItemID         int64
	FromLocationID int64
	ToLocationID   int64
	Quantity       int64
	Date           time.Time
	ReceivedBy     int64
	Notes          string
}

// MoveStock valida el traslado, lo aplica atómicamente y registra el
// movimiento en la bitácora. Un rechazo por stock insuficiente deja los dos
// saldos exactamente como estaban y queda anotado como entrada de error.
func (e *MovementEngine) MoveStock(ctx context.Context, in MoveStockInput) (*entity.StockMovement, error) {
	if in.FromLocationID == in.ToLocationID {
		return nil, fmt.Errorf("%w: origen y destino coinciden (ubicación %d)", domain.ErrInvalidMovement, in.FromLocationID)
	}
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser mayor que cero"}
	}
	if err := e.checkRefs(in); err != nil {
		return nil, err
	}

	var mov *entity.StockMovement
	err := e.tx.Run(ctx, func(r TxRepos) error {
		m, err := e.MoveInTx(r, in)
		if err != nil {
			return err
		}
		mov = m
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			// El intento fallido queda en la bitácora; la operación de negocio
			// ya fue rechazada y se reporta tal cual al llamador.
			e.recorder.Record(entity.AuditActionError, entity.AuditEntityMovement, in.ItemID, in.ReceivedBy, err.Error())
		}
		return nil, err
	}

	e.recorder.Record(entity.AuditActionCreate, entity.AuditEntityMovement, mov.ID, in.ReceivedBy,
		fmt.Sprintf("traslado de %d unidad(es) del artículo %d: ubicación %d → %d",
			mov.Quantity, mov.ItemID, mov.FromLocationID, mov.ToLocationID))
	return mov, nil
}

// MoveInTx aplica el traslado dentro de la transacción del llamador (la usa
// también la aprobación de solicitudes). Bloquea las dos filas de saldo en
// orden ascendente de ubicación para que dos traslados opuestos concurrentes
// no puedan interbloquearse.
func (e *MovementEngine) MoveInTx(r TxRepos, in MoveStockInput) (*entity.StockMovement, error) {
	first, second := in.FromLocationID, in.ToLocationID
	if second < first {
		first, second = second, first
	}
	firstBal, err := r.Balances.GetForUpdate(in.ItemID, first)
	if err != nil {
		return nil, err
	}
	secondBal, err := r.Balances.GetForUpdate(in.ItemID, second)
	if err != nil {
		return nil, err
	}

	from, to := firstBal, secondBal
	if in.FromLocationID != first {
		from, to = secondBal, firstBal
	}

	if from.Quantity < in.Quantity {
		return nil, &domain.InsufficientStockError{
			ItemID:     in.ItemID,
			LocationID: in.FromLocationID,
			Requested:  in.Quantity,
			Available:  from.Quantity,
		}
	}

	now := time.Now()
	from.Quantity -= in.Quantity
	to.Quantity += in.Quantity
	from.UpdatedAt = now
	to.UpdatedAt = now
	if err := r.Balances.Upsert(from); err != nil {
		return nil, err
	}
	if err := r.Balances.Upsert(to); err != nil {
		return nil, err
	}

	date := in.Date
	if date.IsZero() {
		date = now
	}
	mov := &entity.StockMovement{
		TransactionID:  uuid.New().String(),
		ItemID:         in.ItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Date:           date,
		ReceivedBy:     in.ReceivedBy,
		Notes:          in.Notes,
		CreatedAt:      now,
	}
	if err := r.Movements.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// checkRefs verifica que artículo y ambas ubicaciones existan.
func (e *MovementEngine) checkRefs(in MoveStockInput) error {
	item, err := e.items.GetByID(in.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: artículo %d", domain.ErrNotFound, in.ItemID)
	}
	for _, locID := range []int64{in.FromLocationID, in.ToLocationID} {
		loc, err := e.locations.GetByID(locID)
		if err != nil {
			return err
		}
		if loc == nil {
			return fmt.Errorf("%w: ubicación %d", domain.ErrNotFound, locID)
		}
	}
	return nil
}
