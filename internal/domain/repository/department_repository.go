package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DepartmentRepository define el puerto de persistencia de dependencias.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	GetByID(id int64) (*entity.Department, error)
	Update(department *entity.Department) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Department, error)
}
