package entity

import "time"

// Location representa una ubicación física donde se almacena stock
// (bodega, oficina, sala). Pertenece a una dependencia.
type Location struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
