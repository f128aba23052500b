package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *LocationRepo) Create(loc *entity.Location) error {
	query := `
		INSERT INTO locations (name, description, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		loc.Name, loc.Description, loc.DepartmentID, loc.CreatedAt, loc.UpdatedAt,
	).Scan(&loc.ID)
	if err != nil {
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `SELECT id, name, description, department_id, created_at, updated_at FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Description, &l.DepartmentID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update actualiza una ubicación.
func (r *LocationRepo) Update(loc *entity.Location) error {
	query := `UPDATE locations SET name = $2, description = $3, department_id = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, loc.ID, loc.Name, loc.Description, loc.DepartmentID, loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// List lista ubicaciones con paginación.
func (r *LocationRepo) List(limit, offset int) ([]*entity.Location, error) {
	query := `SELECT id, name, description, department_id, created_at, updated_at FROM locations ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.DepartmentID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountByDepartment cuenta las ubicaciones de una dependencia.
func (r *LocationRepo) CountByDepartment(departmentID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM locations WHERE department_id = $1`, departmentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count locations by department: %w", err)
	}
	return n, nil
}
