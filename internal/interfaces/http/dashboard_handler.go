package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// DashboardHandler expone el resumen para la pantalla principal.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve totales y el reporte de stock bajo.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	sum, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DashboardResponse{
		TotalItems:      sum.TotalItems,
		PendingRequests: sum.PendingRequests,
		RecentMovements: sum.RecentMovements,
		LowStock:        dto.NewLowStockRows(sum.LowStock),
	})
}
