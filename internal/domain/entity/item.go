package entity

import "time"

// Item representa un artículo inventariable.
// LowStockThreshold = 0 desactiva la alerta de stock bajo.
type Item struct {
	ID                int64
	Name              string
	Description       string
	CategoryID        int64
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
