package registry

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Registry mantiene los registros canónicos (artículos, categorías,
// dependencias, ubicaciones, usuarios) con chequeos de integridad referencial
// en los borrados. Los chequeos se computan sobre el estado vivo de los libros
// (saldos, conteos), nunca sobre contadores cacheados.
type Registry struct {
	items       repository.ItemRepository
	categories  repository.CategoryRepository
	departments repository.DepartmentRepository
	locations   repository.LocationRepository
	users       repository.UserRepository
	balances    repository.BalanceRepository
	recorder    *audit.Recorder
}

// NewRegistry construye el registro de entidades.
func NewRegistry(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	departments repository.DepartmentRepository,
	locations repository.LocationRepository,
	users repository.UserRepository,
	balances repository.BalanceRepository,
	recorder *audit.Recorder,
) *Registry {
	return &Registry{
		items:       items,
		categories:  categories,
		departments: departments,
		locations:   locations,
		users:       users,
		balances:    balances,
		recorder:    recorder,
	}
}

// DeleteEntity despacha el borrado por tipo de entidad. Es el contrato único
// que expone el registro hacia la capa externa.
func (g *Registry) DeleteEntity(entityType string, id, performedBy int64) error {
	switch entityType {
	case entity.AuditEntityItem:
		return g.DeleteItem(id, performedBy)
	case entity.AuditEntityCategory:
		return g.DeleteCategory(id, performedBy)
	case entity.AuditEntityDepartment:
		return g.DeleteDepartment(id, performedBy)
	case entity.AuditEntityLocation:
		return g.DeleteLocation(id, performedBy)
	case entity.AuditEntityUser:
		return g.DeleteUser(id, performedBy)
	}
	return &domain.ValidationError{Field: "entity_type", Reason: fmt.Sprintf("tipo %q desconocido", entityType)}
}
