package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de traslados.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un traslado. Se invoca siempre dentro de la misma
// transacción que actualiza los dos saldos.
func (r *MovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(transaction_id, item_id, from_location_id, to_location_id, quantity, date, received_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.TransactionID, m.ItemID, m.FromLocationID, m.ToLocationID,
		m.Quantity, m.Date, m.ReceivedBy, m.Notes, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID; nil si no existe.
func (r *MovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, item_id, from_location_id, to_location_id, quantity, date, received_by, notes, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransactionID, &m.ItemID, &m.FromLocationID, &m.ToLocationID,
		&m.Quantity, &m.Date, &m.ReceivedBy, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista traslados del más reciente al más antiguo.
func (r *MovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, item_id, from_location_id, to_location_id, quantity, date, received_by, notes, created_at
		FROM stock_movements ORDER BY id DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByItem lista los traslados de un artículo, del más reciente al más antiguo.
func (r *MovementRepo) ListByItem(itemID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, transaction_id, item_id, from_location_id, to_location_id, quantity, date, received_by, notes, created_at
		FROM stock_movements WHERE item_id = $1 ORDER BY id DESC`
	return r.list(query, itemID)
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.ItemID, &m.FromLocationID, &m.ToLocationID,
			&m.Quantity, &m.Date, &m.ReceivedBy, &m.Notes, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// CountSince cuenta los traslados registrados en los últimos N días.
func (r *MovementRepo) CountSince(days int) (int64, error) {
	var n int64
	query := `SELECT COUNT(*) FROM stock_movements WHERE created_at >= NOW() - make_interval(days => $1)`
	if err := r.q.QueryRow(context.Background(), query, days).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements since: %w", err)
	}
	return n, nil
}
