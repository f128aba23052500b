package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AuditFilter filtros del listado de bitácora; campos vacíos no filtran.
type AuditFilter struct {
	ActionType string
	EntityType string
	From       *time.Time
	To         *time.Time
}

// AuditRepository define el puerto de la bitácora: solo anexar y consultar.
type AuditRepository interface {
	// Append asigna ID monótono creciente y persiste la entrada.
	Append(entry *entity.AuditEntry) error
	List(filter AuditFilter, limit, offset int) ([]*entity.AuditEntry, error)
	Count(filter AuditFilter) (int64, error)
}
