package entity

import "time"

// Estados de una solicitud de traslado. pending es el único estado no terminal.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// StockRequest es una solicitud de traslado iniciada por un usuario, que
// requiere aprobación de un administrador antes de ejecutar el movimiento.
// Una vez resuelta (approved/rejected) es inmutable.
type StockRequest struct {
	ID             int64
	ItemID         int64
	ItemName       string // nombre con el que se solicitó, se conserva para mostrar
	Quantity       int64
	FromLocationID int64
	ToLocationID   int64
	Reason         string
	RequestedBy    int64
	Status         string // pending | approved | rejected
	ResolvedBy     int64  // 0 mientras esté pendiente
	ResolveNote    string // motivo de rechazo, opcional
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

// Resolved indica si la solicitud alcanzó un estado terminal.
func (r *StockRequest) Resolved() bool {
	return r.Status == RequestStatusApproved || r.Status == RequestStatusRejected
}
