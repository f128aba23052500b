package registry

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// UpdateUserInput parche parcial de usuario. La contraseña se cambia por el
// flujo de auth, no por aquí.
type UpdateUserInput struct {
	Name         *string
	Email        *string
	Role         *string
	DepartmentID *int64
}

// UpdateUser aplica un parche parcial.
func (g *Registry) UpdateUser(id int64, patch UpdateUserInput, performedBy int64) (*entity.User, error) {
	user, err := g.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
		}
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			return nil, &domain.ValidationError{Field: "email", Reason: "requerido"}
		}
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		if *patch.Role != entity.RoleAdmin && *patch.Role != entity.RoleUser {
			return nil, &domain.ValidationError{Field: "role", Reason: "debe ser admin o user"}
		}
		user.Role = *patch.Role
	}
	if patch.DepartmentID != nil {
		dep, err := g.departments.GetByID(*patch.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dep == nil {
			return nil, &domain.ValidationError{Field: "department_id", Reason: fmt.Sprintf("dependencia %d desconocida", *patch.DepartmentID)}
		}
		user.DepartmentID = *patch.DepartmentID
	}
	user.UpdatedAt = time.Now()
	if err := g.users.Update(user); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityUser, user.ID, performedBy,
		fmt.Sprintf("usuario %q actualizado", user.Email))
	return user, nil
}

// DeleteUser borra un usuario. Sus registros históricos (lotes, movimientos,
// bitácora) conservan el ID como referencia.
func (g *Registry) DeleteUser(id, performedBy int64) error {
	user, err := g.users.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: usuario %d", domain.ErrNotFound, id)
	}
	if err := g.users.Delete(id); err != nil {
		return err
	}
	g.recorder.Record(entity.AuditActionDelete, entity.AuditEntityUser, id, performedBy,
		fmt.Sprintf("usuario %q eliminado", user.Email))
	return nil
}

// GetUser devuelve un usuario por ID.
func (g *Registry) GetUser(id int64) (*entity.User, error) {
	user, err := g.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %d", domain.ErrNotFound, id)
	}
	return user, nil
}

// ListUsers lista usuarios con paginación.
func (g *Registry) ListUsers(limit, offset int) ([]*entity.User, error) {
	return g.users.List(limit, offset)
}
