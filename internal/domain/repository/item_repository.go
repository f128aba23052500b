package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia de artículos.
// Create asigna el ID (secuencia monótona, nunca reutilizada).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id int64) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Item, error)
	Count() (int64, error)
	CountByCategory(categoryID int64) (int64, error)
}
