package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DiscardRepository define el puerto de persistencia de descartes.
type DiscardRepository interface {
	Create(record *entity.DiscardRecord) error
	GetByID(id int64) (*entity.DiscardRecord, error)
	List(limit, offset int) ([]*entity.DiscardRecord, error)
}
