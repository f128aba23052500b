package registry

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateDepartment crea una dependencia.
func (g *Registry) CreateDepartment(name, contactEmail string, performedBy int64) (*entity.Department, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
	}
	now := time.Now()
	dep := &entity.Department{Name: name, ContactEmail: contactEmail, CreatedAt: now, UpdatedAt: now}
	if err := g.departments.Create(dep); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionCreate, entity.AuditEntityDepartment, dep.ID, performedBy,
		fmt.Sprintf("dependencia %q creada", dep.Name))
	return dep, nil
}

// UpdateDepartmentInput parche parcial de dependencia.
type UpdateDepartmentInput struct {
	Name         *string
	ContactEmail *string
}

// UpdateDepartment aplica un parche parcial.
func (g *Registry) UpdateDepartment(id int64, patch UpdateDepartmentInput, performedBy int64) (*entity.Department, error) {
	dep, err := g.departments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, fmt.Errorf("%w: dependencia %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
		}
		dep.Name = *patch.Name
	}
	if patch.ContactEmail != nil {
		dep.ContactEmail = *patch.ContactEmail
	}
	dep.UpdatedAt = time.Now()
	if err := g.departments.Update(dep); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityDepartment, dep.ID, performedBy,
		fmt.Sprintf("dependencia %q actualizada", dep.Name))
	return dep, nil
}

// DeleteDepartment borra una dependencia; se bloquea mientras existan
// usuarios o ubicaciones que la referencien.
func (g *Registry) DeleteDepartment(id, performedBy int64) error {
	dep, err := g.departments.GetByID(id)
	if err != nil {
		return err
	}
	if dep == nil {
		return fmt.Errorf("%w: dependencia %d", domain.ErrNotFound, id)
	}
	userCount, err := g.users.CountByDepartment(id)
	if err != nil {
		return err
	}
	if userCount > 0 {
		return &domain.ReferentialIntegrityError{
			EntityType: entity.AuditEntityDepartment, ID: id, Dependents: "usuario(s)", Count: userCount,
		}
	}
	locCount, err := g.locations.CountByDepartment(id)
	if err != nil {
		return err
	}
	if locCount > 0 {
		return &domain.ReferentialIntegrityError{
			EntityType: entity.AuditEntityDepartment, ID: id, Dependents: "ubicación(es)", Count: locCount,
		}
	}
	if err := g.departments.Delete(id); err != nil {
		return err
	}
	g.recorder.Record(entity.AuditActionDelete, entity.AuditEntityDepartment, id, performedBy,
		fmt.Sprintf("dependencia %q eliminada", dep.Name))
	return nil
}

// GetDepartment devuelve una dependencia por ID.
func (g *Registry) GetDepartment(id int64) (*entity.Department, error) {
	dep, err := g.departments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, fmt.Errorf("%w: dependencia %d", domain.ErrNotFound, id)
	}
	return dep, nil
}

// ListDepartments lista dependencias con paginación.
func (g *Registry) ListDepartments(limit, offset int) ([]*entity.Department, error) {
	return g.departments.List(limit, offset)
}
