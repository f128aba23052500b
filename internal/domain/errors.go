package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los casos de uso devuelven
// estos centinelas o tipos que los envuelven; la capa HTTP los traduce a códigos.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrValidation           = errors.New("entrada inválida")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidMovement      = errors.New("movimiento inválido")
	ErrInvalidState         = errors.New("transición de estado inválida")
	ErrReferentialIntegrity = errors.New("existen registros dependientes")
	ErrImmutableField       = errors.New("campo inmutable")
	ErrConcurrencyConflict  = errors.New("conflicto de concurrencia")
	ErrPersistence          = errors.New("almacenamiento no disponible")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
)

// InsufficientStockError lleva el contexto necesario para un mensaje preciso:
// qué artículo, en qué ubicación, cuánto se pidió y cuánto hay.
type InsufficientStockError struct {
	ItemID     int64
	LocationID int64
	Requested  int64
	Available  int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: artículo %d en ubicación %d (solicitado %d, disponible %d)",
		e.ItemID, e.LocationID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ReferentialIntegrityError describe por qué se bloqueó un borrado.
type ReferentialIntegrityError struct {
	EntityType string
	ID         int64
	Dependents string // qué depende: "items", "usuarios", "stock", ...
	Count      int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("no se puede eliminar %s %d: %d %s dependiente(s)",
		e.EntityType, e.ID, e.Count, e.Dependents)
}

func (e *ReferentialIntegrityError) Unwrap() error { return ErrReferentialIntegrity }

// InvalidStateError indica una transición sobre una solicitud ya resuelta.
type InvalidStateError struct {
	RequestID int64
	Status    string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("solicitud %d en estado %q: solo se puede resolver una solicitud pendiente",
		e.RequestID, e.Status)
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// ValidationError señala el campo rechazado.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("entrada inválida: %s (%s)", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
