package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/registry"
)

// UserHandler maneja las peticiones HTTP de usuarios. El alta pasa por
// /auth/register; aquí solo hay lectura, parche y baja.
type UserHandler struct {
	reg *registry.Registry
}

// NewUserHandler construye el handler.
func NewUserHandler(reg *registry.Registry) *UserHandler {
	return &UserHandler{reg: reg}
}

// GetByID devuelve un usuario.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	user, err := h.reg.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

// List lista usuarios.
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	users, err := h.reg.ListUsers(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return c.JSON(out)
}

// Update aplica un parche parcial.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	var in dto.UpdateUserRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, err := h.reg.UpdateUser(id, registry.UpdateUserInput{
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewUserResponse(user))
}

// Delete elimina un usuario.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return nil
	}
	if err := h.reg.DeleteUser(id, GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
