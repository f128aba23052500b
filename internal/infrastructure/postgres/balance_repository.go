package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación del puerto BalanceRepository sobre PostgreSQL.
// La tabla stock_balances tiene clave primaria (item_id, location_id) y un
// CHECK (quantity >= 0) como última línea de defensa.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de saldos.
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get devuelve el saldo; pareja ausente equivale a saldo en cero.
func (r *BalanceRepo) Get(itemID, locationID int64) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, location_id, quantity, updated_at
		FROM stock_balances WHERE item_id = $1 AND location_id = $2`
	return r.scanOne(query, itemID, locationID)
}

// GetForUpdate bloquea la fila del saldo dentro de la transacción actual.
// Con pareja ausente no habría fila que bloquear y dos créditos concurrentes
// leerían ambos cero, perdiéndose uno al escribir; por eso primero se
// materializa la fila en cero y recién entonces se bloquea.
func (r *BalanceRepo) GetForUpdate(itemID, locationID int64) (*entity.StockBalance, error) {
	insert := `
		INSERT INTO stock_balances (item_id, location_id, quantity, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (item_id, location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, itemID, locationID); err != nil {
		return nil, fmt.Errorf("init balance: %w", err)
	}
	query := `
		SELECT item_id, location_id, quantity, updated_at
		FROM stock_balances WHERE item_id = $1 AND location_id = $2
		FOR UPDATE`
	return r.scanOne(query, itemID, locationID)
}

func (r *BalanceRepo) scanOne(query string, itemID, locationID int64) (*entity.StockBalance, error) {
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, locationID).Scan(
		&b.ItemID, &b.LocationID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ItemID: itemID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// Upsert escribe el saldo, creando la fila si no existía.
func (r *BalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (item_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (item_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = NOW()`
	_, err := r.q.Exec(context.Background(), query, balance.ItemID, balance.LocationID, balance.Quantity)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// TotalByItem suma el stock de un artículo en todas las ubicaciones.
func (r *BalanceRepo) TotalByItem(itemID int64) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_balances WHERE item_id = $1`
	if err := r.q.QueryRow(context.Background(), query, itemID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total by item: %w", err)
	}
	return total, nil
}

// TotalByLocation suma el stock presente en una ubicación.
func (r *BalanceRepo) TotalByLocation(locationID int64) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_balances WHERE location_id = $1`
	if err := r.q.QueryRow(context.Background(), query, locationID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total by location: %w", err)
	}
	return total, nil
}

// ListByItem devuelve los saldos de un artículo por ubicación.
func (r *BalanceRepo) ListByItem(itemID int64) ([]*entity.StockBalance, error) {
	query := `
		SELECT item_id, location_id, quantity, updated_at
		FROM stock_balances WHERE item_id = $1 ORDER BY location_id`
	return r.list(query, itemID)
}

// ListByLocation devuelve los saldos de una ubicación por artículo.
func (r *BalanceRepo) ListByLocation(locationID int64) ([]*entity.StockBalance, error) {
	query := `
		SELECT item_id, location_id, quantity, updated_at
		FROM stock_balances WHERE location_id = $1 ORDER BY item_id`
	return r.list(query, locationID)
}

func (r *BalanceRepo) list(query string, arg int64) ([]*entity.StockBalance, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ItemID, &b.LocationID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ListBelowThreshold devuelve los artículos cuyo total está por debajo de su
// umbral configurado. Umbral 0 significa sin alerta y se excluye.
func (r *BalanceRepo) ListBelowThreshold() ([]*entity.LowStockItem, error) {
	query := `
		SELECT i.id, i.name, i.low_stock_threshold, COALESCE(SUM(b.quantity), 0) AS total
		FROM items i
		LEFT JOIN stock_balances b ON b.item_id = i.id
		WHERE i.low_stock_threshold > 0
		GROUP BY i.id, i.name, i.low_stock_threshold
		HAVING COALESCE(SUM(b.quantity), 0) < i.low_stock_threshold
		ORDER BY i.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below threshold: %w", err)
	}
	defer rows.Close()
	var list []*entity.LowStockItem
	for rows.Next() {
		var row entity.LowStockItem
		if err := rows.Scan(&row.ItemID, &row.ItemName, &row.Threshold, &row.Total); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
