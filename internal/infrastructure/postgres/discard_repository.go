package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DiscardRepository = (*DiscardRepo)(nil)

// DiscardRepo implementación del puerto DiscardRepository sobre PostgreSQL.
type DiscardRepo struct {
	q Querier
}

// NewDiscardRepository construye el adaptador de descartes.
func NewDiscardRepository(q Querier) *DiscardRepo {
	return &DiscardRepo{q: q}
}

// Create persiste un descarte. Lote 0 se guarda como NULL.
func (r *DiscardRepo) Create(rec *entity.DiscardRecord) error {
	query := `
		INSERT INTO discard_records
			(item_id, location_id, quantity, reason, procurement_lot_id, date, discarded_by, notes, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0), $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		rec.ItemID, rec.LocationID, rec.Quantity, rec.Reason, rec.ProcurementLotID,
		rec.Date, rec.DiscardedBy, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert discard: %w", err)
	}
	return nil
}

// GetByID obtiene un descarte por ID; nil si no existe.
func (r *DiscardRepo) GetByID(id int64) (*entity.DiscardRecord, error) {
	query := `
		SELECT id, item_id, location_id, quantity, reason, COALESCE(procurement_lot_id, 0), date, discarded_by, notes, created_at
		FROM discard_records WHERE id = $1`
	var d entity.DiscardRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.ItemID, &d.LocationID, &d.Quantity, &d.Reason, &d.ProcurementLotID,
		&d.Date, &d.DiscardedBy, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discard: %w", err)
	}
	return &d, nil
}

// List lista descartes del más reciente al más antiguo.
func (r *DiscardRepo) List(limit, offset int) ([]*entity.DiscardRecord, error) {
	query := `
		SELECT id, item_id, location_id, quantity, reason, COALESCE(procurement_lot_id, 0), date, discarded_by, notes, created_at
		FROM discard_records ORDER BY id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list discards: %w", err)
	}
	defer rows.Close()
	var list []*entity.DiscardRecord
	for rows.Next() {
		var d entity.DiscardRecord
		if err := rows.Scan(
			&d.ID, &d.ItemID, &d.LocationID, &d.Quantity, &d.Reason, &d.ProcurementLotID,
			&d.Date, &d.DiscardedBy, &d.Notes, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan discard: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
