package entity

import "time"

// Tipos de acción de la bitácora.
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionInfo    = "info"
	AuditActionWarning = "warning"
	AuditActionError   = "error"
)

// Tipos de entidad auditables.
const (
	AuditEntityItem        = "item"
	AuditEntityCategory    = "category"
	AuditEntityDepartment  = "department"
	AuditEntityLocation    = "location"
	AuditEntityUser        = "user"
	AuditEntityProcurement = "procurement"
	AuditEntityMovement    = "movement"
	AuditEntityDiscard     = "discard"
	AuditEntityRequest     = "stock_request"
)

// AuditEntry es una entrada inmutable de la bitácora. El ID lo asigna el
// almacenamiento de forma monótona creciente; nunca se actualiza ni borra.
type AuditEntry struct {
	ID          int64
	ActionType  string
	EntityType  string
	EntityID    int64
	PerformedBy int64
	Timestamp   time.Time
	Details     string
}
