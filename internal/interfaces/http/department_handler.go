package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/registry"
)

// DepartmentHandler maneja las peticiones HTTP de dependencias.
type DepartmentHandler struct {
	reg *registry.Registry
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(reg *registry.Registry) *DepartmentHandler {
	return &DepartmentHandler{reg: reg}
}

// Create crea una dependencia.
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepartmentRequest
	if !parseBody(c, &in) {
		return nil
	}
	dep, err := h.reg.CreateDepartment(in.Name, in.ContactEmail, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDepartmentResponse(dep))
}

// GetByID devuelve una dependencia.
func (h *DepartmentHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	dep, err := h.reg.GetDepartment(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDepartmentResponse(dep))
}

// List lista dependencias.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	deps, err := h.reg.ListDepartments(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.DepartmentResponse, 0, len(deps))
	for _, dep := range deps {
		out = append(out, dto.NewDepartmentResponse(dep))
	}
	return c.JSON(out)
}

// Update aplica un parche parcial.
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateDepartmentRequest
	if !parseBody(c, &in) {
		return nil
	}
	dep, err := h.reg.UpdateDepartment(id, registry.UpdateDepartmentInput{
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewDepartmentResponse(dep))
}

// Delete elimina una dependencia sin usuarios ni ubicaciones.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.reg.DeleteDepartment(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
