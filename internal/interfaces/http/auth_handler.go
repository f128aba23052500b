package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario y devuelve el token de sesión.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, token, err := h.uc.Register(auth.RegisterInput{
		Name:         in.Name,
		Email:        in.Email,
		Password:     in.Password,
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Login autentica por email y contraseña.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	user, token, err := h.uc.Login(in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)})
}
