package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AuditListRequest filtros del listado de bitácora (query params).
type AuditListRequest struct {
	ActionType string     `query:"action_type" validate:"omitempty,oneof=create update delete info warning error"`
	EntityType string     `query:"entity_type"`
	From       *time.Time `query:"from"`
	To         *time.Time `query:"to"`
	PageRequest
}

// AuditEntryResponse salida de una entrada de bitácora.
type AuditEntryResponse struct {
	ID          int64     `json:"id"`
	ActionType  string    `json:"action_type"`
	EntityType  string    `json:"entity_type"`
	EntityID    int64     `json:"entity_id"`
	PerformedBy int64     `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details,omitempty"`
}

// NewAuditEntryResponse mapea la entidad de bitácora.
func NewAuditEntryResponse(e *entity.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          e.ID,
		ActionType:  e.ActionType,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		PerformedBy: e.PerformedBy,
		Timestamp:   e.Timestamp,
		Details:     e.Details,
	}
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotificationResponse mapea la entidad notificación.
func NewNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		Details:   n.Details,
		CreatedAt: n.CreatedAt,
	}
}
