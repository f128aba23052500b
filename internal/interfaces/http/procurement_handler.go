package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProcurementHandler maneja las peticiones HTTP de adquisiciones.
type ProcurementHandler struct {
	uc   *ledger.ProcurementLedger
	lots repository.ProcurementRepository
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *ledger.ProcurementLedger, lots repository.ProcurementRepository) *ProcurementHandler {
	return &ProcurementHandler{uc: uc, lots: lots}
}

// Create registra un lote y acredita el saldo del destino.
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordProcurementRequest
	if !parseBody(c, &in) {
		return nil
	}
	lot, err := h.uc.RecordProcurement(c.UserContext(), ledger.RecordProcurementInput{
		ItemID:                in.ItemID,
		Type:                  in.Type,
		Supplier:              in.Supplier,
		Quantity:              in.Quantity,
		UnitPrice:             in.UnitPrice,
		Date:                  in.Date,
		DocumentType:          in.DocumentType,
		Notes:                 in.Notes,
		RecordedBy:            GetUserID(c),
		DestinationLocationID: in.DestinationLocationID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProcurementResponse(lot))
}

// Amend corrige metadatos de un lote; cantidad, artículo y destino son
// inmutables y el intento devuelve error.
func (h *ProcurementHandler) Amend(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.AmendProcurementRequest
	if !parseBody(c, &in) {
		return nil
	}
	lot, err := h.uc.Amend(c.UserContext(), id, ledger.AmendLotInput{
		Supplier:              in.Supplier,
		UnitPrice:             in.UnitPrice,
		Date:                  in.Date,
		DocumentType:          in.DocumentType,
		Notes:                 in.Notes,
		Quantity:              in.Quantity,
		ItemID:                in.ItemID,
		DestinationLocationID: in.DestinationLocationID,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProcurementResponse(lot))
}

// GetByID devuelve un lote.
func (h *ProcurementHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	lot, err := h.lots.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if lot == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(dto.NewProcurementResponse(lot))
}

// List lista lotes; acepta ?item_id= para filtrar por artículo.
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	if itemID := c.QueryInt("item_id", 0); itemID > 0 {
		lots, err := h.lots.ListByItem(int64(itemID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(mapLots(lots))
	}
	limit, offset := pageParams(c)
	lots, err := h.lots.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapLots(lots))
}

func mapLots(lots []*entity.ProcurementLot) []dto.ProcurementResponse {
	out := make([]dto.ProcurementResponse, 0, len(lots))
	for _, l := range lots {
		out = append(out, dto.NewProcurementResponse(l))
	}
	return out
}
