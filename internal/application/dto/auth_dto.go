package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=admin user"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse respuesta de registro/login: usuario más token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de la contraseña.
type UserResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateUserRequest parche parcial de usuario.
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin user"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,gt=0"`
}

// NewUserResponse mapea la entidad a su representación pública.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		DepartmentID: u.DepartmentID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
