package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// NotificationHandler maneja las notificaciones del usuario autenticado.
type NotificationHandler struct {
	repo repository.NotificationRepository
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

// List lista las notificaciones propias, recientes primero.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	notes, err := h.repo.ListByUser(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	unread, err := h.repo.CountUnread(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.NotificationResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, dto.NewNotificationResponse(n))
	}
	return c.JSON(fiber.Map{"items": out, "unread": unread})
}

// MarkRead marca una notificación propia como leída.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.repo.MarkRead(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead marca todas las propias como leídas.
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.repo.MarkAllRead(GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
