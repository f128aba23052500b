package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia de categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Category, error)
}
