package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia de notificaciones.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID int64, limit, offset int) ([]*entity.Notification, error)
	MarkRead(id, userID int64) error
	MarkAllRead(userID int64) error
	CountUnread(userID int64) (int64, error)
}
