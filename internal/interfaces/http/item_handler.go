package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/registry"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemHandler maneja las peticiones HTTP de artículos.
type ItemHandler struct {
	reg      *registry.Registry
	balances repository.BalanceRepository
}

// NewItemHandler construye el handler.
func NewItemHandler(reg *registry.Registry, balances repository.BalanceRepository) *ItemHandler {
	return &ItemHandler{reg: reg, balances: balances}
}

// Create crea un artículo.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.reg.CreateItem(registry.CreateItemInput{
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		LowStockThreshold: in.LowStockThreshold,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewItemResponse(item))
}

// GetByID devuelve un artículo.
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	item, err := h.reg.GetItem(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// List lista artículos.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, err := h.reg.ListItems(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewItemResponse(it))
	}
	return c.JSON(out)
}

// Update aplica un parche parcial.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.reg.UpdateItem(id, registry.UpdateItemInput{
		Name:              in.Name,
		Description:       in.Description,
		CategoryID:        in.CategoryID,
		LowStockThreshold: in.LowStockThreshold,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewItemResponse(item))
}

// Delete elimina un artículo sin stock.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.reg.DeleteItem(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balances devuelve los saldos por ubicación de un artículo.
func (h *ItemHandler) Balances(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if _, err := h.reg.GetItem(id); err != nil {
		return respondError(c, err)
	}
	balances, err := h.balances.ListByItem(id)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.NewBalanceResponse(b))
	}
	return c.JSON(out)
}
