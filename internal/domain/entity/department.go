package entity

import "time"

// Department representa una dependencia de la organización.
type Department struct {
	ID           int64
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
