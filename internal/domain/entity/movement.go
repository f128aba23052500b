package entity

import "time"

// StockMovement representa un traslado de cantidad entre dos ubicaciones.
// Solo se crea tras validar saldo suficiente en la ubicación origen; el par
// decremento/incremento se aplica en la misma transacción (conservación).
type StockMovement struct {
	ID             int64
	TransactionID  string // agrupa las dos caras del traslado en la bitácora
	ItemID         int64
	FromLocationID int64
	ToLocationID   int64
	Quantity       int64
	Date           time.Time
	ReceivedBy     int64
	Notes          string
	CreatedAt      time.Time
}
