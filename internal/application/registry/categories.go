package registry

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateCategory crea una categoría.
func (g *Registry) CreateCategory(name, description string, performedBy int64) (*entity.Category, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
	}
	now := time.Now()
	cat := &entity.Category{Name: name, Description: description, CreatedAt: now, UpdatedAt: now}
	if err := g.categories.Create(cat); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionCreate, entity.AuditEntityCategory, cat.ID, performedBy,
		fmt.Sprintf("categoría %q creada", cat.Name))
	return cat, nil
}

// UpdateCategoryInput parche parcial de categoría.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// UpdateCategory aplica un parche parcial.
func (g *Registry) UpdateCategory(id int64, patch UpdateCategoryInput, performedBy int64) (*entity.Category, error) {
	cat, err := g.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
		}
		cat.Name = *patch.Name
	}
	if patch.Description != nil {
		cat.Description = *patch.Description
	}
	cat.UpdatedAt = time.Now()
	if err := g.categories.Update(cat); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityCategory, cat.ID, performedBy,
		fmt.Sprintf("categoría %q actualizada", cat.Name))
	return cat, nil
}

// DeleteCategory borra una categoría; se bloquea mientras algún artículo la
// referencie. El conteo se consulta en vivo, no sobre un contador cacheado.
func (g *Registry) DeleteCategory(id, performedBy int64) error {
	cat, err := g.categories.GetByID(id)
	if err != nil {
		return err
	}
	if cat == nil {
		return fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	count, err := g.items.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ReferentialIntegrityError{
			EntityType: entity.AuditEntityCategory, ID: id, Dependents: "artículo(s)", Count: count,
		}
	}
	if err := g.categories.Delete(id); err != nil {
		return err
	}
	g.recorder.Record(entity.AuditActionDelete, entity.AuditEntityCategory, id, performedBy,
		fmt.Sprintf("categoría %q eliminada", cat.Name))
	return nil
}

// GetCategory devuelve una categoría por ID.
func (g *Registry) GetCategory(id int64) (*entity.Category, error) {
	cat, err := g.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, id)
	}
	return cat, nil
}

// ListCategories lista categorías con paginación.
func (g *Registry) ListCategories(limit, offset int) ([]*entity.Category, error) {
	return g.categories.List(limit, offset)
}
