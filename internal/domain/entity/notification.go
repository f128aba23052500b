package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeStockRequest = "stockRequest"
	NotificationTypeSystem       = "system"
	NotificationTypeInventory    = "inventory"
)

// Notification es un aviso dirigido a un usuario, materializado por el
// despachador suscrito a la bitácora. La entrega (correo, push) queda fuera.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	Type      string // stockRequest | system | inventory
	Read      bool
	Details   string // JSON libre para la UI
	CreatedAt time.Time
}
