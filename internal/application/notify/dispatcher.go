package notify

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Dispatcher materializa notificaciones a partir de los eventos de bitácora:
// administradores al crearse una solicitud, el solicitante al resolverse, y
// administradores ante advertencias de stock bajo. La lógica de negocio no
// sabe de notificaciones; solo emite eventos.
type Dispatcher struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	log           *logger.Logger
}

// NewDispatcher construye el despachador.
func NewDispatcher(users repository.UserRepository, notifications repository.NotificationRepository, log *logger.Logger) *Dispatcher {
	return &Dispatcher{users: users, notifications: notifications, log: log}
}

var _ audit.Subscriber = (*Dispatcher)(nil)

// OnAudit enruta el evento. Un fallo aquí solo se loguea: las notificaciones
// nunca bloquean ni revierten la operación de negocio que las originó.
func (d *Dispatcher) OnAudit(ev audit.Event) {
	entry := ev.Entry
	switch {
	case entry.EntityType == entity.AuditEntityRequest && entry.ActionType == entity.AuditActionCreate:
		d.notifyAdmins(entity.NotificationTypeStockRequest,
			fmt.Sprintf("Nueva solicitud de stock: %s", ev.Meta["item_name"]), entry.Details)
	case entry.EntityType == entity.AuditEntityRequest && entry.ActionType == entity.AuditActionUpdate:
		userID, err := strconv.ParseInt(ev.Meta["notify_user_id"], 10, 64)
		if err != nil {
			return
		}
		d.notifyUser(userID, entity.NotificationTypeStockRequest,
			fmt.Sprintf("Tu solicitud de %s fue %s", ev.Meta["item_name"], resolutionText(ev.Meta["resolution"])),
			entry.Details)
	case entry.EntityType == entity.AuditEntityItem && entry.ActionType == entity.AuditActionWarning && ev.Meta["low_stock"] == "1":
		d.notifyAdmins(entity.NotificationTypeInventory,
			fmt.Sprintf("Stock bajo: %s (%s unidades)", ev.Meta["item_name"], ev.Meta["total"]), entry.Details)
	}
}

func resolutionText(status string) string {
	if status == entity.RequestStatusApproved {
		return "aprobada"
	}
	return "rechazada"
}

func (d *Dispatcher) notifyAdmins(notifType, message, details string) {
	admins, err := d.users.ListAdmins()
	if err != nil {
		d.log.Error().Err(err).Msg("listar administradores para notificar")
		return
	}
	for _, admin := range admins {
		d.notifyUser(admin.ID, notifType, message, details)
	}
}

func (d *Dispatcher) notifyUser(userID int64, notifType, message, details string) {
	n := &entity.Notification{
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		Details:   details,
		CreatedAt: time.Now(),
	}
	if err := d.notifications.Create(n); err != nil {
		d.log.Error().Err(err).Int64("user_id", userID).Msg("crear notificación")
	}
}
