package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// AuditHandler maneja la consulta y exportación de la bitácora.
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler construye el handler.
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// filterFromQuery arma el filtro desde los query params. Las fechas van en
// RFC 3339; una fecha mal formada se responde como 400.
func filterFromQuery(c *fiber.Ctx) (repository.AuditFilter, bool) {
	filter := repository.AuditFilter{
		ActionType: c.Query("action_type"),
		EntityType: c.Query("entity_type"),
	}
	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: q.name + " debe ser RFC 3339"})
			return filter, false
		}
		*q.dst = &t
	}
	return filter, true
}

// List lista entradas de bitácora con filtros y paginación.
func (h *AuditHandler) List(c *fiber.Ctx) error {
	filter, ok := filterFromQuery(c)
	if !ok {
		return nil
	}
	limit, offset := pageParams(c)
	entries, total, err := h.recorder.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewAuditEntryResponse(e))
	}
	return c.JSON(fiber.Map{
		"items": out,
		"page":  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}

// Export descarga la bitácora filtrada como archivo XLSX.
func (h *AuditHandler) Export(c *fiber.Ctx) error {
	filter, ok := filterFromQuery(c)
	if !ok {
		return nil
	}
	data, err := h.recorder.ExportXLSX(filter)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bitacora.xlsx"`)
	return c.Send(data)
}
