package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/registry"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// LocationHandler maneja las peticiones HTTP de ubicaciones.
type LocationHandler struct {
	reg      *registry.Registry
	balances repository.BalanceRepository
}

// NewLocationHandler construye el handler.
func NewLocationHandler(reg *registry.Registry, balances repository.BalanceRepository) *LocationHandler {
	return &LocationHandler{reg: reg, balances: balances}
}

// Create crea una ubicación.
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if !parseBody(c, &in) {
		return nil
	}
	loc, err := h.reg.CreateLocation(in.Name, in.Description, in.DepartmentID, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewLocationResponse(loc))
}

// GetByID devuelve una ubicación.
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	loc, err := h.reg.GetLocation(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLocationResponse(loc))
}

// List lista ubicaciones.
func (h *LocationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	locs, err := h.reg.ListLocations(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LocationResponse, 0, len(locs))
	for _, loc := range locs {
		out = append(out, dto.NewLocationResponse(loc))
	}
	return c.JSON(out)
}

// Update aplica un parche parcial.
func (h *LocationHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateLocationRequest
	if !parseBody(c, &in) {
		return nil
	}
	loc, err := h.reg.UpdateLocation(id, registry.UpdateLocationInput{
		Name:         in.Name,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewLocationResponse(loc))
}

// Delete elimina una ubicación sin stock.
func (h *LocationHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.reg.DeleteLocation(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balances devuelve los saldos por artículo de una ubicación.
func (h *LocationHandler) Balances(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if _, err := h.reg.GetLocation(id); err != nil {
		return respondError(c, err)
	}
	balances, err := h.balances.ListByLocation(id)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.NewBalanceResponse(b))
	}
	return c.JSON(out)
}
