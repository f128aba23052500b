package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

// ProcurementRepo implementación del puerto ProcurementRepository sobre PostgreSQL.
// El precio unitario se guarda como NUMERIC y se escanea con shopspring/decimal
// vía el codec registrado en el pool.
type ProcurementRepo struct {
	q Querier
}

// NewProcurementRepository construye el adaptador de lotes de adquisición.
func NewProcurementRepository(q Querier) *ProcurementRepo {
	return &ProcurementRepo{q: q}
}

// Create persiste un lote de adquisición.
func (r *ProcurementRepo) Create(lot *entity.ProcurementLot) error {
	query := `
		INSERT INTO procurement_lots
			(item_id, type, supplier, quantity, unit_price, date, document_type, notes, recorded_by, destination_location_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		lot.ItemID, lot.Type, lot.Supplier, lot.Quantity, lot.UnitPrice, lot.Date,
		lot.DocumentType, lot.Notes, lot.RecordedBy, lot.DestinationLocationID,
		lot.CreatedAt, lot.UpdatedAt,
	).Scan(&lot.ID)
	if err != nil {
		return fmt.Errorf("insert procurement lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *ProcurementRepo) GetByID(id int64) (*entity.ProcurementLot, error) {
	query := `
		SELECT id, item_id, type, supplier, quantity, unit_price, date, document_type, notes, recorded_by, destination_location_id, created_at, updated_at
		FROM procurement_lots WHERE id = $1`
	var p entity.ProcurementLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ItemID, &p.Type, &p.Supplier, &p.Quantity, &p.UnitPrice, &p.Date,
		&p.DocumentType, &p.Notes, &p.RecordedBy, &p.DestinationLocationID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procurement lot: %w", err)
	}
	return &p, nil
}

// Update persiste una corrección administrativa. Cantidad, artículo y destino
// no se tocan aunque el struct los traiga; la capa de aplicación ya lo impide
// y el SQL lo refuerza.
func (r *ProcurementRepo) Update(lot *entity.ProcurementLot) error {
	query := `
		UPDATE procurement_lots
		SET supplier = $2, unit_price = $3, date = $4, document_type = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.Supplier, lot.UnitPrice, lot.Date, lot.DocumentType, lot.Notes, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update procurement lot: %w", err)
	}
	return nil
}

// List lista lotes del más reciente al más antiguo.
func (r *ProcurementRepo) List(limit, offset int) ([]*entity.ProcurementLot, error) {
	query := `
		SELECT id, item_id, type, supplier, quantity, unit_price, date, document_type, notes, recorded_by, destination_location_id, created_at, updated_at
		FROM procurement_lots ORDER BY id DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByItem lista los lotes de un artículo.
func (r *ProcurementRepo) ListByItem(itemID int64) ([]*entity.ProcurementLot, error) {
	query := `
		SELECT id, item_id, type, supplier, quantity, unit_price, date, document_type, notes, recorded_by, destination_location_id, created_at, updated_at
		FROM procurement_lots WHERE item_id = $1 ORDER BY id DESC`
	return r.list(query, itemID)
}

func (r *ProcurementRepo) list(query string, args ...any) ([]*entity.ProcurementLot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list procurement lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProcurementLot
	for rows.Next() {
		var p entity.ProcurementLot
		if err := rows.Scan(
			&p.ID, &p.ItemID, &p.Type, &p.Supplier, &p.Quantity, &p.UnitPrice, &p.Date,
			&p.DocumentType, &p.Notes, &p.RecordedBy, &p.DestinationLocationID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan procurement lot: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
