package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// BalanceRepository define el puerto para consultar y actualizar saldos por
// artículo+ubicación. Las escrituras solo ocurren dentro de transacciones del
// motor de libro mayor; el resto de componentes únicamente lee.
type BalanceRepository interface {
	// Get devuelve el saldo; si la pareja no existe devuelve un saldo en cero.
	Get(itemID, locationID int64) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila para actualización (SELECT FOR UPDATE).
	// Los traslados deben pedir las dos filas en orden ascendente de ubicación.
	GetForUpdate(itemID, locationID int64) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	TotalByItem(itemID int64) (int64, error)
	TotalByLocation(locationID int64) (int64, error)
	ListByItem(itemID int64) ([]*entity.StockBalance, error)
	ListByLocation(locationID int64) ([]*entity.StockBalance, error)
	// ListBelowThreshold totales por artículo bajo su umbral de stock bajo.
	ListBelowThreshold() ([]*entity.LowStockItem, error)
}
