package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, type, read, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		n.UserID, n.Message, n.Type, n.Read, n.Details, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser lista las notificaciones de un usuario, recientes primero.
func (r *NotificationRepo) ListByUser(userID int64, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, type, read, details, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Type, &n.Read, &n.Details, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead marca como leída una notificación del usuario.
func (r *NotificationRepo) MarkRead(id, userID int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(context.Background(), query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca como leídas todas las del usuario.
func (r *NotificationRepo) MarkAllRead(userID int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`
	_, err := r.q.Exec(context.Background(), query, userID)
	if err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// CountUnread cuenta las no leídas de un usuario.
func (r *NotificationRepo) CountUnread(userID int64) (int64, error) {
	var n int64
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}
