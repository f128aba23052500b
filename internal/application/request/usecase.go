package request

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Workflow implementa la máquina de estados de solicitudes de traslado:
// pending → approved | rejected, ambos terminales. La aprobación ejecuta el
// traslado dentro de la misma transacción que cambia el estado, de modo que
// si el traslado falla la solicitud sigue pendiente.
type Workflow struct {
	tx        ledger.TxRunner
	engine    *ledger.MovementEngine
	items     repository.ItemRepository
	locations repository.LocationRepository
	requests  repository.StockRequestRepository
	recorder  *audit.Recorder
}

// NewWorkflow construye el flujo de solicitudes.
func NewWorkflow(
	tx ledger.TxRunner,
	engine *ledger.MovementEngine,
	items repository.ItemRepository,
	locations repository.LocationRepository,
	requests repository.StockRequestRepository,
	recorder *audit.Recorder,
) *Workflow {
	return &Workflow{tx: tx, engine: engine, items: items, locations: locations, requests: requests, recorder: recorder}
}

// SubmitInput entrada para crear una solicitud. El artículo llega por nombre
// (así lo captura la UI) y se resuelve contra el registro al crearla.
type SubmitInput struct {
	ItemName       string
	Quantity       int64
	FromLocationID int64
	ToLocationID   int64
	Reason         string
	RequestedBy    int64
}

// Submit crea la solicitud en estado pending. No toca ningún saldo; solo
// queda la entrada de bitácora que dispara la notificación a administradores.
func (w *Workflow) Submit(ctx context.Context, in SubmitInput) (*entity.StockRequest, error) {
	if in.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser mayor que cero"}
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, &domain.ValidationError{Field: "to_location_id", Reason: "origen y destino coinciden"}
	}
	item, err := w.items.GetByName(in.ItemName)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.ValidationError{Field: "item_name", Reason: fmt.Sprintf("artículo %q desconocido", in.ItemName)}
	}
	for _, locID := range []int64{in.FromLocationID, in.ToLocationID} {
		loc, err := w.locations.GetByID(locID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, &domain.ValidationError{Field: "location_id", Reason: fmt.Sprintf("ubicación %d desconocida", locID)}
		}
	}

	req := &entity.StockRequest{
		ItemID:         item.ID,
		ItemName:       item.Name,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Reason:         in.Reason,
		RequestedBy:    in.RequestedBy,
		Status:         entity.RequestStatusPending,
		CreatedAt:      time.Now(),
	}
	if err := w.requests.Create(req); err != nil {
		return nil, err
	}

	w.recorder.RecordWithMeta(entity.AuditActionCreate, entity.AuditEntityRequest, req.ID, in.RequestedBy,
		fmt.Sprintf("solicitud de %d unidad(es) de %q: ubicación %d → %d", req.Quantity, req.ItemName, req.FromLocationID, req.ToLocationID),
		map[string]string{
			"notify_admins": "1",
			"item_name":     req.ItemName,
			"quantity":      strconv.FormatInt(req.Quantity, 10),
		})
	return req, nil
}

// Approve ejecuta el traslado de la solicitud y la marca aprobada, todo en una
// transacción. Si el traslado falla (p. ej. stock insuficiente) nada queda
// aplicado: la solicitud permanece pendiente y el error se devuelve al
// aprobador tal cual, sin reintentos automáticos.
func (w *Workflow) Approve(ctx context.Context, requestID, approverID int64) (*entity.StockRequest, error) {
	if err := w.checkLocations(requestID); err != nil {
		return nil, err
	}

	var req *entity.StockRequest
	var mov *entity.StockMovement
	err := w.tx.Run(ctx, func(r ledger.TxRepos) error {
		var err error
		req, err = r.Requests.GetByIDForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, requestID)
		}
		if req.Resolved() {
			return &domain.InvalidStateError{RequestID: req.ID, Status: req.Status}
		}

		mov, err = w.engine.MoveInTx(r, ledger.MoveStockInput{
			ItemID:         req.ItemID,
			FromLocationID: req.FromLocationID,
			ToLocationID:   req.ToLocationID,
			Quantity:       req.Quantity,
			ReceivedBy:     req.RequestedBy,
			Notes:          fmt.Sprintf("solicitud %d aprobada", req.ID),
		})
		if err != nil {
			return err
		}

		now := time.Now()
		req.Status = entity.RequestStatusApproved
		req.ResolvedBy = approverID
		req.ResolvedAt = &now
		return r.Requests.Update(req)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			w.recorder.Record(entity.AuditActionError, entity.AuditEntityRequest, requestID, approverID, err.Error())
		}
		return nil, err
	}

	w.recorder.Record(entity.AuditActionCreate, entity.AuditEntityMovement, mov.ID, approverID,
		fmt.Sprintf("traslado de %d unidad(es) del artículo %d por solicitud %d", mov.Quantity, mov.ItemID, req.ID))
	w.recorder.RecordWithMeta(entity.AuditActionUpdate, entity.AuditEntityRequest, req.ID, approverID,
		fmt.Sprintf("solicitud %d aprobada", req.ID),
		map[string]string{
			"notify_user_id": strconv.FormatInt(req.RequestedBy, 10),
			"resolution":     entity.RequestStatusApproved,
			"item_name":      req.ItemName,
		})
	return req, nil
}

// Reject marca la solicitud como rechazada. Sin efecto sobre saldos.
func (w *Workflow) Reject(ctx context.Context, requestID, approverID int64, reason string) (*entity.StockRequest, error) {
	var req *entity.StockRequest
	err := w.tx.Run(ctx, func(r ledger.TxRepos) error {
		var err error
		req, err = r.Requests.GetByIDForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, requestID)
		}
		if req.Resolved() {
			return &domain.InvalidStateError{RequestID: req.ID, Status: req.Status}
		}
		now := time.Now()
		req.Status = entity.RequestStatusRejected
		req.ResolvedBy = approverID
		req.ResolveNote = reason
		req.ResolvedAt = &now
		return r.Requests.Update(req)
	})
	if err != nil {
		return nil, err
	}

	w.recorder.RecordWithMeta(entity.AuditActionUpdate, entity.AuditEntityRequest, req.ID, approverID,
		fmt.Sprintf("solicitud %d rechazada", req.ID),
		map[string]string{
			"notify_user_id": strconv.FormatInt(req.RequestedBy, 10),
			"resolution":     entity.RequestStatusRejected,
			"item_name":      req.ItemName,
		})
	return req, nil
}

// Get devuelve una solicitud por ID.
func (w *Workflow) Get(requestID int64) (*entity.StockRequest, error) {
	req, err := w.requests.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, requestID)
	}
	return req, nil
}

// List lista solicitudes, opcionalmente por estado.
func (w *Workflow) List(status string, limit, offset int) ([]*entity.StockRequest, error) {
	if status != "" && status != entity.RequestStatusPending &&
		status != entity.RequestStatusApproved && status != entity.RequestStatusRejected {
		return nil, &domain.ValidationError{Field: "status", Reason: "estado desconocido"}
	}
	return w.requests.List(status, limit, offset)
}

// ListByUser lista las solicitudes creadas por un usuario.
func (w *Workflow) ListByUser(userID int64, limit, offset int) ([]*entity.StockRequest, error) {
	return w.requests.ListByUser(userID, limit, offset)
}

// checkLocations revalida que las ubicaciones de la solicitud sigan existiendo
// (una ubicación con saldo cero pudo borrarse mientras la solicitud esperaba).
func (w *Workflow) checkLocations(requestID int64) error {
	req, err := w.requests.GetByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return fmt.Errorf("%w: solicitud %d", domain.ErrNotFound, requestID)
	}
	if !req.Resolved() {
		for _, locID := range []int64{req.FromLocationID, req.ToLocationID} {
			loc, err := w.locations.GetByID(locID)
			if err != nil {
				return err
			}
			if loc == nil {
				return fmt.Errorf("%w: ubicación %d", domain.ErrNotFound, locID)
			}
		}
	}
	return nil
}
