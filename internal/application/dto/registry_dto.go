package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Description       string `json:"description"`
	CategoryID        int64  `json:"category_id" validate:"required,gt=0"`
	LowStockThreshold int64  `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// UpdateItemRequest parche parcial de artículo.
type UpdateItemRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description"`
	CategoryID        *int64  `json:"category_id" validate:"omitempty,gt=0"`
	LowStockThreshold *int64  `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	CategoryID        int64     `json:"category_id"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewItemResponse mapea la entidad artículo.
func NewItemResponse(it *entity.Item) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		CategoryID:        it.CategoryID,
		LowStockThreshold: it.LowStockThreshold,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
	}
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCategoryRequest parche parcial de categoría.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse mapea la entidad categoría.
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CreateDepartmentRequest entrada para crear una dependencia.
type CreateDepartmentRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// UpdateDepartmentRequest parche parcial de dependencia.
type UpdateDepartmentRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

// DepartmentResponse salida de una dependencia.
type DepartmentResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewDepartmentResponse mapea la entidad dependencia.
func NewDepartmentResponse(d *entity.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		ContactEmail: d.ContactEmail,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Description  string `json:"description"`
	DepartmentID int64  `json:"department_id" validate:"required,gt=0"`
}

// UpdateLocationRequest parche parcial de ubicación.
type UpdateLocationRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,gt=0"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewLocationResponse mapea la entidad ubicación.
func NewLocationResponse(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Description:  l.Description,
		DepartmentID: l.DepartmentID,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
