package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRequestRepository = (*StockRequestRepo)(nil)

// StockRequestRepo implementación del puerto StockRequestRepository sobre PostgreSQL.
type StockRequestRepo struct {
	q Querier
}

// NewStockRequestRepository construye el adaptador de solicitudes.
func NewStockRequestRepository(q Querier) *StockRequestRepo {
	return &StockRequestRepo{q: q}
}

const requestColumns = `id, item_id, item_name, quantity, from_location_id, to_location_id, reason, requested_by, status, resolved_by, resolve_note, created_at, resolved_at`

// Create persiste una solicitud recién enviada (status pending).
func (r *StockRequestRepo) Create(req *entity.StockRequest) error {
	query := `
		INSERT INTO stock_requests
			(item_id, item_name, quantity, from_location_id, to_location_id, reason, requested_by, status, resolved_by, resolve_note, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		req.ItemID, req.ItemName, req.Quantity, req.FromLocationID, req.ToLocationID,
		req.Reason, req.RequestedBy, req.Status, req.ResolvedBy, req.ResolveNote,
		req.CreatedAt, req.ResolvedAt,
	).Scan(&req.ID)
	if err != nil {
		return fmt.Errorf("insert stock request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID; nil si no existe.
func (r *StockRequestRepo) GetByID(id int64) (*entity.StockRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM stock_requests WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate bloquea la solicitud durante su resolución.
func (r *StockRequestRepo) GetByIDForUpdate(id int64) (*entity.StockRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM stock_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *StockRequestRepo) scanOne(query string, id int64) (*entity.StockRequest, error) {
	var req entity.StockRequest
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&req.ID, &req.ItemID, &req.ItemName, &req.Quantity, &req.FromLocationID, &req.ToLocationID,
		&req.Reason, &req.RequestedBy, &req.Status, &req.ResolvedBy, &req.ResolveNote,
		&req.CreatedAt, &req.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock request: %w", err)
	}
	return &req, nil
}

// Update persiste la resolución de una solicitud.
func (r *StockRequestRepo) Update(req *entity.StockRequest) error {
	query := `
		UPDATE stock_requests
		SET status = $2, resolved_by = $3, resolve_note = $4, resolved_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.Status, req.ResolvedBy, req.ResolveNote, req.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock request: %w", err)
	}
	return nil
}

// List lista solicitudes; status vacío lista todas.
func (r *StockRequestRepo) List(status string, limit, offset int) ([]*entity.StockRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM stock_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	return r.list(query, status, limit, offset)
}

// ListByUser lista las solicitudes de un solicitante.
func (r *StockRequestRepo) ListByUser(userID int64, limit, offset int) ([]*entity.StockRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM stock_requests WHERE requested_by = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

func (r *StockRequestRepo) list(query string, args ...any) ([]*entity.StockRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRequest
	for rows.Next() {
		var req entity.StockRequest
		if err := rows.Scan(
			&req.ID, &req.ItemID, &req.ItemName, &req.Quantity, &req.FromLocationID, &req.ToLocationID,
			&req.Reason, &req.RequestedBy, &req.Status, &req.ResolvedBy, &req.ResolveNote,
			&req.CreatedAt, &req.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

// CountByStatus cuenta las solicitudes en un estado.
func (r *StockRequestRepo) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stock_requests WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock requests: %w", err)
	}
	return n, nil
}
