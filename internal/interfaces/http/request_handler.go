package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/request"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RequestHandler maneja las peticiones HTTP de solicitudes de traslado.
type RequestHandler struct {
	uc *request.Workflow
}

// NewRequestHandler construye el handler.
func NewRequestHandler(uc *request.Workflow) *RequestHandler {
	return &RequestHandler{uc: uc}
}

// Submit crea una solicitud pendiente.
func (h *RequestHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRequestRequest
	if !parseBody(c, &in) {
		return nil
	}
	req, err := h.uc.Submit(c.UserContext(), request.SubmitInput{
		ItemName:       in.ItemName,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Reason:         in.Reason,
		RequestedBy:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewStockRequestResponse(req))
}

// Approve aprueba una solicitud pendiente y ejecuta el traslado. Si el
// traslado falla, la solicitud sigue pendiente.
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	req, err := h.uc.Approve(c.UserContext(), id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockRequestResponse(req))
}

// Reject rechaza una solicitud pendiente sin tocar saldos.
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.ResolveRequestRequest
	if !parseBody(c, &in) {
		return nil
	}
	req, err := h.uc.Reject(c.UserContext(), id, GetUserID(c), in.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockRequestResponse(req))
}

// GetByID devuelve una solicitud.
func (h *RequestHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	req, err := h.uc.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewStockRequestResponse(req))
}

// List lista solicitudes; acepta ?status=pending|approved|rejected.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	reqs, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapRequests(reqs))
}

// Mine lista las solicitudes del usuario autenticado.
func (h *RequestHandler) Mine(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	reqs, err := h.uc.ListByUser(GetUserID(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapRequests(reqs))
}

func mapRequests(reqs []*entity.StockRequest) []dto.StockRequestResponse {
	out := make([]dto.StockRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.NewStockRequestResponse(r))
	}
	return out
}
