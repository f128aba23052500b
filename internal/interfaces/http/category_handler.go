package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/registry"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	reg *registry.Registry
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(reg *registry.Registry) *CategoryHandler {
	return &CategoryHandler{reg: reg}
}

// Create crea una categoría.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	cat, err := h.reg.CreateCategory(in.Name, in.Description, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryResponse(cat))
}

// GetByID devuelve una categoría.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	cat, err := h.reg.GetCategory(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCategoryResponse(cat))
}

// List lista categorías.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	cats, err := h.reg.ListCategories(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, dto.NewCategoryResponse(cat))
	}
	return c.JSON(out)
}

// Update aplica un parche parcial.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateCategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	cat, err := h.reg.UpdateCategory(id, registry.UpdateCategoryInput{
		Name:        in.Name,
		Description: in.Description,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCategoryResponse(cat))
}

// Delete elimina una categoría sin artículos.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.reg.DeleteCategory(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
