package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP de traslados.
type MovementHandler struct {
	engine    *ledger.MovementEngine
	movements repository.MovementRepository
}

// NewMovementHandler construye el handler.
func NewMovementHandler(engine *ledger.MovementEngine, movements repository.MovementRepository) *MovementHandler {
	return &MovementHandler{engine: engine, movements: movements}
}

// Create ejecuta un traslado directo entre ubicaciones.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MoveStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	mov, err := h.engine.MoveStock(c.UserContext(), ledger.MoveStockInput{
		ItemID:         in.ItemID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		Date:           in.Date,
		ReceivedBy:     GetUserID(c),
		Notes:          in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(mov))
}

// GetByID devuelve un traslado.
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	mov, err := h.movements.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if mov == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "traslado no encontrado"})
	}
	return c.JSON(dto.NewMovementResponse(mov))
}

// List lista traslados; acepta ?item_id= para filtrar por artículo.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	if itemID := c.QueryInt("item_id", 0); itemID > 0 {
		movs, err := h.movements.ListByItem(int64(itemID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(mapMovements(movs))
	}
	limit, offset := pageParams(c)
	movs, err := h.movements.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapMovements(movs))
}

func mapMovements(movs []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.NewMovementResponse(m))
	}
	return out
}
