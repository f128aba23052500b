package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RecordProcurementRequest entrada para registrar un lote de adquisición.
type RecordProcurementRequest struct {
	ItemID                int64           `json:"item_id" validate:"required,gt=0"`
	Type                  string          `json:"type" validate:"required,oneof=purchase donation transfer-in"`
	Supplier              string          `json:"supplier"`
	Quantity              int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	Date                  time.Time       `json:"date"`
	DocumentType          string          `json:"document_type"`
	Notes                 string          `json:"notes"`
	DestinationLocationID int64           `json:"destination_location_id" validate:"required,gt=0"`
}

// AmendProcurementRequest corrección administrativa de un lote. Los campos
// quantity, item_id y destination_location_id se aceptan en el cuerpo solo
// para poder rechazarlos con un error claro.
type AmendProcurementRequest struct {
	Supplier     *string          `json:"supplier"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Date         *time.Time       `json:"date"`
	DocumentType *string          `json:"document_type"`
	Notes        *string          `json:"notes"`

	Quantity              *int64 `json:"quantity"`
	ItemID                *int64 `json:"item_id"`
	DestinationLocationID *int64 `json:"destination_location_id"`
}

// ProcurementResponse salida de un lote de adquisición.
type ProcurementResponse struct {
	ID                    int64           `json:"id"`
	ItemID                int64           `json:"item_id"`
	Type                  string          `json:"type"`
	Supplier              string          `json:"supplier"`
	Quantity              int64           `json:"quantity"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	Date                  time.Time       `json:"date"`
	DocumentType          string          `json:"document_type"`
	Notes                 string          `json:"notes"`
	RecordedBy            int64           `json:"recorded_by"`
	DestinationLocationID int64           `json:"destination_location_id"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// NewProcurementResponse mapea la entidad lote; el total siempre se deriva.
func NewProcurementResponse(p *entity.ProcurementLot) ProcurementResponse {
	return ProcurementResponse{
		ID:                    p.ID,
		ItemID:                p.ItemID,
		Type:                  p.Type,
		Supplier:              p.Supplier,
		Quantity:              p.Quantity,
		UnitPrice:             p.UnitPrice,
		TotalPrice:            p.TotalPrice(),
		Date:                  p.Date,
		DocumentType:          p.DocumentType,
		Notes:                 p.Notes,
		RecordedBy:            p.RecordedBy,
		DestinationLocationID: p.DestinationLocationID,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// MoveStockRequest entrada para trasladar stock entre ubicaciones.
type MoveStockRequest struct {
	ItemID         int64     `json:"item_id" validate:"required,gt=0"`
	FromLocationID int64     `json:"from_location_id" validate:"required,gt=0"`
	ToLocationID   int64     `json:"to_location_id" validate:"required,gt=0"`
	Quantity       int64     `json:"quantity" validate:"required,gt=0"`
	Date           time.Time `json:"date"`
	Notes          string    `json:"notes"`
}

// MovementResponse salida de un traslado.
type MovementResponse struct {
	ID             int64     `json:"id"`
	TransactionID  string    `json:"transaction_id"`
	ItemID         int64     `json:"item_id"`
	FromLocationID int64     `json:"from_location_id"`
	ToLocationID   int64     `json:"to_location_id"`
	Quantity       int64     `json:"quantity"`
	Date           time.Time `json:"date"`
	ReceivedBy     int64     `json:"received_by"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewMovementResponse mapea la entidad traslado.
func NewMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:             m.ID,
		TransactionID:  m.TransactionID,
		ItemID:         m.ItemID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Quantity:       m.Quantity,
		Date:           m.Date,
		ReceivedBy:     m.ReceivedBy,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
	}
}

// RecordDiscardRequest entrada para registrar un descarte.
type RecordDiscardRequest struct {
	ItemID           int64     `json:"item_id" validate:"required,gt=0"`
	LocationID       int64     `json:"location_id" validate:"required,gt=0"`
	Quantity         int64     `json:"quantity" validate:"required,gt=0"`
	Reason           string    `json:"reason" validate:"required,oneof=damaged expired obsolete other"`
	ProcurementLotID int64     `json:"procurement_lot_id" validate:"omitempty,gt=0"`
	Date             time.Time `json:"date"`
	Notes            string    `json:"notes"`
}

// DiscardResponse salida de un descarte.
type DiscardResponse struct {
	ID               int64     `json:"id"`
	ItemID           int64     `json:"item_id"`
	LocationID       int64     `json:"location_id"`
	Quantity         int64     `json:"quantity"`
	Reason           string    `json:"reason"`
	ProcurementLotID int64     `json:"procurement_lot_id,omitempty"`
	Date             time.Time `json:"date"`
	DiscardedBy      int64     `json:"discarded_by"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewDiscardResponse mapea la entidad descarte.
func NewDiscardResponse(d *entity.DiscardRecord) DiscardResponse {
	return DiscardResponse{
		ID:               d.ID,
		ItemID:           d.ItemID,
		LocationID:       d.LocationID,
		Quantity:         d.Quantity,
		Reason:           d.Reason,
		ProcurementLotID: d.ProcurementLotID,
		Date:             d.Date,
		DiscardedBy:      d.DiscardedBy,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
	}
}

// BalanceResponse saldo de un artículo en una ubicación.
type BalanceResponse struct {
	ItemID     int64     `json:"item_id"`
	LocationID int64     `json:"location_id"`
	Quantity   int64     `json:"quantity"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewBalanceResponse mapea la entidad saldo.
func NewBalanceResponse(b *entity.StockBalance) BalanceResponse {
	return BalanceResponse{
		ItemID:     b.ItemID,
		LocationID: b.LocationID,
		Quantity:   b.Quantity,
		UpdatedAt:  b.UpdatedAt,
	}
}
