package registry

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateItemInput alta de artículo.
type CreateItemInput struct {
	Name              string
	Description       string
	CategoryID        int64
	LowStockThreshold int64
}

// CreateItem crea un artículo validando nombre y categoría.
func (g *Registry) CreateItem(in CreateItemInput, performedBy int64) (*entity.Item, error) {
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
	}
	if in.LowStockThreshold < 0 {
		return nil, &domain.ValidationError{Field: "low_stock_threshold", Reason: "no puede ser negativo"}
	}
	cat, err := g.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, &domain.ValidationError{Field: "category_id", Reason: fmt.Sprintf("categoría %d desconocida", in.CategoryID)}
	}

	now := time.Now()
	item := &entity.Item{
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := g.items.Create(item); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionCreate, entity.AuditEntityItem, item.ID, performedBy,
		fmt.Sprintf("artículo %q creado", item.Name))
	return item, nil
}

// UpdateItemInput parche parcial de artículo; nil = sin cambio.
type UpdateItemInput struct {
	Name              *string
	Description       *string
	CategoryID        *int64
	LowStockThreshold *int64
}

// UpdateItem aplica un parche parcial.
func (g *Registry) UpdateItem(id int64, patch UpdateItemInput, performedBy int64) (*entity.Item, error) {
	item, err := g.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %d", domain.ErrNotFound, id)
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, &domain.ValidationError{Field: "name", Reason: "requerido"}
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		cat, err := g.categories.GetByID(*patch.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, &domain.ValidationError{Field: "category_id", Reason: fmt.Sprintf("categoría %d desconocida", *patch.CategoryID)}
		}
		item.CategoryID = *patch.CategoryID
	}
	if patch.LowStockThreshold != nil {
		if *patch.LowStockThreshold < 0 {
			return nil, &domain.ValidationError{Field: "low_stock_threshold", Reason: "no puede ser negativo"}
		}
		item.LowStockThreshold = *patch.LowStockThreshold
	}
	item.UpdatedAt = time.Now()
	if err := g.items.Update(item); err != nil {
		return nil, err
	}
	g.recorder.Record(entity.AuditActionUpdate, entity.AuditEntityItem, item.ID, performedBy,
		fmt.Sprintf("artículo %q actualizado", item.Name))
	return item, nil
}

// DeleteItem borra un artículo; se bloquea mientras tenga stock vivo.
func (g *Registry) DeleteItem(id, performedBy int64) error {
	item, err := g.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: artículo %d", domain.ErrNotFound, id)
	}
	total, err := g.balances.TotalByItem(id)
	if err != nil {
		return err
	}
	if total > 0 {
		return &domain.ReferentialIntegrityError{
			EntityType: entity.AuditEntityItem, ID: id, Dependents: "unidad(es) en stock", Count: total,
		}
	}
	if err := g.items.Delete(id); err != nil {
		return err
	}
	g.recorder.Record(entity.AuditActionDelete, entity.AuditEntityItem, id, performedBy,
		fmt.Sprintf("artículo %q eliminado", item.Name))
	return nil
}

// GetItem devuelve un artículo por ID.
func (g *Registry) GetItem(id int64) (*entity.Item, error) {
	item, err := g.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: artículo %d", domain.ErrNotFound, id)
	}
	return item, nil
}

// ListItems lista artículos con paginación.
func (g *Registry) ListItems(limit, offset int) ([]*entity.Item, error) {
	return g.items.List(limit, offset)
}
