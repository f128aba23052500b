package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// LowStockRow artículo cuyo total está por debajo de su umbral.
type LowStockRow struct {
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	Threshold int64  `json:"threshold"`
	Total     int64  `json:"total"`
}

// DashboardResponse resumen para la pantalla principal.
type DashboardResponse struct {
	TotalItems      int64         `json:"total_items"`
	PendingRequests int64         `json:"pending_requests"`
	RecentMovements int64         `json:"recent_movements"`
	LowStock        []LowStockRow `json:"low_stock"`
}

// NewLowStockRows mapea el reporte de stock bajo.
func NewLowStockRows(items []*entity.LowStockItem) []LowStockRow {
	rows := make([]LowStockRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, LowStockRow{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Threshold: it.Threshold,
			Total:     it.Total,
		})
	}
	return rows
}
