package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo; el ID lo asigna la secuencia de la tabla.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (name, description, category_id, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.Description, item.CategoryID, item.LowStockThreshold, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT id, name, description, category_id, low_stock_threshold, created_at, updated_at
		FROM items WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene un artículo por nombre exacto; nil si no existe.
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	query := `
		SELECT id, name, description, category_id, low_stock_threshold, created_at, updated_at
		FROM items WHERE name = $1 LIMIT 1`
	return r.scanOne(query, name)
}

func (r *ItemRepo) scanOne(query string, arg any) (*entity.Item, error) {
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.Name, &it.Description, &it.CategoryID, &it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, category_id = $4, low_stock_threshold = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.CategoryID, item.LowStockThreshold, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// List lista artículos con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT id, name, description, category_id, low_stock_threshold, created_at, updated_at
		FROM items ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.CategoryID, &it.LowStockThreshold, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Count cuenta los artículos.
func (r *ItemRepo) Count() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM items`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

// CountByCategory cuenta los artículos de una categoría (estado vivo, sin cache).
func (r *ItemRepo) CountByCategory(categoryID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM items WHERE category_id = $1`, categoryID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items by category: %w", err)
	}
	return n, nil
}
