package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DiscardHandler maneja las peticiones HTTP de descartes.
type DiscardHandler struct {
	uc       *ledger.DiscardLedger
	discards repository.DiscardRepository
}

// NewDiscardHandler construye el handler.
func NewDiscardHandler(uc *ledger.DiscardLedger, discards repository.DiscardRepository) *DiscardHandler {
	return &DiscardHandler{uc: uc, discards: discards}
}

// Create registra un descarte y decrementa el saldo de la ubicación.
func (h *DiscardHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordDiscardRequest
	if !parseBody(c, &in) {
		return nil
	}
	rec, err := h.uc.RecordDiscard(c.UserContext(), ledger.RecordDiscardInput{
		ItemID:           in.ItemID,
		LocationID:       in.LocationID,
		Quantity:         in.Quantity,
		Reason:           in.Reason,
		ProcurementLotID: in.ProcurementLotID,
		Date:             in.Date,
		DiscardedBy:      GetUserID(c),
		Notes:            in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDiscardResponse(rec))
}

// GetByID devuelve un descarte.
func (h *DiscardHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	rec, err := h.discards.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "descarte no encontrado"})
	}
	return c.JSON(dto.NewDiscardResponse(rec))
}

// List lista descartes.
func (h *DiscardHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	recs, err := h.discards.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DiscardResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.NewDiscardResponse(rec))
	}
	return c.JSON(out)
}
