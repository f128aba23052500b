package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un usuario de la aplicación.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | user
	DepartmentID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario puede aprobar solicitudes y administrar el registro.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
