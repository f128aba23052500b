package entity

import "time"

// StockBalance es el saldo actual de un artículo en una ubicación.
// Invariante: Quantity >= 0 en todo momento. Solo lo mutan las operaciones
// de adquisición, movimiento y descarte; nunca se edita directamente.
type StockBalance struct {
	ItemID     int64
	LocationID int64
	Quantity   int64
	UpdatedAt  time.Time
}

// LowStockItem fila de reporte: total de un artículo por debajo de su umbral.
type LowStockItem struct {
	ItemID    int64
	ItemName  string
	Threshold int64
	Total     int64
}
