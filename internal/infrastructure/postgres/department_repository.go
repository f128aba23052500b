package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

// NewDepartmentRepository construye el adaptador de dependencias.
func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

// Create persiste una dependencia.
func (r *DepartmentRepo) Create(dep *entity.Department) error {
	query := `
		INSERT INTO departments (name, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, dep.Name, dep.ContactEmail, dep.CreatedAt, dep.UpdatedAt).Scan(&dep.ID)
	if err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene una dependencia por ID; nil si no existe.
func (r *DepartmentRepo) GetByID(id int64) (*entity.Department, error) {
	query := `SELECT id, name, contact_email, created_at, updated_at FROM departments WHERE id = $1`
	var d entity.Department
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Name, &d.ContactEmail, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// Update actualiza una dependencia.
func (r *DepartmentRepo) Update(dep *entity.Department) error {
	query := `UPDATE departments SET name = $2, contact_email = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, dep.ID, dep.Name, dep.ContactEmail, dep.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete elimina una dependencia por ID.
func (r *DepartmentRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

// List lista dependencias con paginación.
func (r *DepartmentRepo) List(limit, offset int) ([]*entity.Department, error) {
	query := `SELECT id, name, contact_email, created_at, updated_at FROM departments ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.ContactEmail, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
