package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia de ubicaciones.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Location, error)
	CountByDepartment(departmentID int64) (int64, error)
}
