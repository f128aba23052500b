package registry

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateLocation crea una ubicación validando la dependencia.
func (g *Registry) CreateLocation(name, description string, departmentID, performedBy int64) (*entity.Location, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
	}
	dep, err := g.departments.GetByID(departmentID)
	if err != nil {
		return nil, err
	}
	if dep == nil {
		return nil, &domain.ValidationError{Field: "department_id", Reason: fmt.Sprintf("dependencia %d desconocida", departmentID)}
	}
	now := time.Now()
	loc := &entity.Location{Name: name, Description: description, DepartmentID: departmentID, CreatedAt: now, UpdatedAt: now}
	if err := g.locations.Create(loc); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionCreate, entity.AuditEntityLocation, loc.ID, performedBy,
		fmt.Sprintf("ubicación %q creada", loc.Name))
	return loc, nil
}

// UpdateLocationInput parche parcial de ubicación.
type UpdateLocationInput struct {
	Name         *string
	Description  *string
	DepartmentID *int64
}

// UpdateLocation aplica un parche parcial.
func (g *Registry) UpdateLocation(id int64, patch UpdateLocationInput, performedBy int64) (*entity.Location, error) {
	loc, err := g.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: ubicación %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
		}
		loc.Name = *patch.Name
	}
	if patch.Description != nil {
		loc.Description = *patch.Description
	}
	if patch.DepartmentID != nil {
		dep, err := g.departments.GetByID(*patch.DepartmentID)
		if err != nil {
			return nil, err
		}
		if dep == nil {
			return nil, &domain.ValidationError{Field: "department_id", Reason: fmt.Sprintf("dependencia %d desconocida", *patch.DepartmentID)}
		}
		loc.DepartmentID = *patch.DepartmentID
	}
	loc.UpdatedAt = time.Now()
	if err := g.locations.Update(loc); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityLocation, loc.ID, performedBy,
		fmt.Sprintf("ubicación %q actualizada", loc.Name))
	return loc, nil
}

// DeleteLocation borra una ubicación; se bloquea mientras su saldo de stock
// sea mayor que cero (estado vivo del libro, no contador).
func (g *Registry) DeleteLocation(id, performedBy int64) error {
	loc, err := g.locations.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return fmt.Errorf("%w: ubicación %d", domain.ErrNotFound, id)
	}
	total, err := g.balances.TotalByLocation(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return &domain.ReferentialIntegrityError{
			EntityType: entity.AuditEntityLocation, ID: id, Dependents: "unidad(es) en stock", Count: total,
		}
	}
	if err := g.locations.Delete(id); err != nil {
		return err
	}
	g.recorder.Record(entity.AuditActionDelete, entity.AuditEntityLocation, id, performedBy,
		fmt.Sprintf("ubicación %q eliminada", loc.Name))
	return nil
}

// GetLocation devuelve una ubicación por ID.
func (g *Registry) GetLocation(id int64) (*entity.Location, error) {
	loc, err := g.locations.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: ubicación %d", domain.ErrNotFound, id)
	}
	return loc, nil
}

// ListLocations lista ubicaciones con paginación.
func (g *Registry) ListLocations(limit, offset int) ([]*entity.Location, error) {
	return g.locations.List(limit, offset)
}
