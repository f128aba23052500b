package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia de traslados.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByItem(itemID int64) ([]*entity.StockMovement, error)
	CountSince(days int) (int64, error)
}
