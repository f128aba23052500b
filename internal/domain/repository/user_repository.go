package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.User, error)
	// ListAdmins devuelve los administradores (destinatarios de notificaciones).
	ListAdmins() ([]*entity.User, error)
	CountByDepartment(departmentID int64) (int64, error)
}
