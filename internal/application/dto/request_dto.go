package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SubmitRequestRequest entrada para solicitar un traslado. El artículo se
// identifica por nombre; se resuelve a su ID en el momento del envío.
type SubmitRequestRequest struct {
	ItemName       string `json:"item_name" validate:"required,min=1,max=200"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	FromLocationID int64  `json:"from_location_id" validate:"required,gt=0"`
	ToLocationID   int64  `json:"to_location_id" validate:"required,gt=0"`
	Reason         string `json:"reason"`
}

// ResolveRequestRequest nota opcional al aprobar o rechazar.
type ResolveRequestRequest struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

// StockRequestResponse salida de una solicitud.
type StockRequestResponse struct {
	ID             int64      `json:"id"`
	ItemID         int64      `json:"item_id"`
	ItemName       string     `json:"item_name"`
	Quantity       int64      `json:"quantity"`
	FromLocationID int64      `json:"from_location_id"`
	ToLocationID   int64      `json:"to_location_id"`
	Reason         string     `json:"reason"`
	RequestedBy    int64      `json:"requested_by"`
	Status         string     `json:"status"`
	ResolvedBy     int64      `json:"resolved_by,omitempty"`
	ResolveNote    string     `json:"resolve_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
}

// NewStockRequestResponse mapea la entidad solicitud.
func NewStockRequestResponse(r *entity.StockRequest) StockRequestResponse {
	return StockRequestResponse{
		ID:             r.ID,
		ItemID:         r.ItemID,
		ItemName:       r.ItemName,
		Quantity:       r.Quantity,
		FromLocationID: r.FromLocationID,
		ToLocationID:   r.ToLocationID,
		Reason:         r.Reason,
		RequestedBy:    r.RequestedBy,
		Status:         r.Status,
		ResolvedBy:     r.ResolvedBy,
		ResolveNote:    r.ResolveNote,
		CreatedAt:      r.CreatedAt,
		ResolvedAt:     r.ResolvedAt,
	}
}
