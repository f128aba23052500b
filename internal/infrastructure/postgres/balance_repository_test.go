package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptQuerier registra en orden cada sentencia ejecutada y responde a los
// QueryRow con la fila programada.
type scriptQuerier struct {
	ops []string
	row pgx.Row
}

func (s *scriptQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	s.ops = append(s.ops, sql)
	return pgconn.CommandTag{}, nil
}

func (s *scriptQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	s.ops = append(s.ops, sql)
	return nil, nil
}

func (s *scriptQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	s.ops = append(s.ops, sql)
	return s.row
}

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

func balanceRow(quantity int64) pgx.Row {
	return stubRow{scan: func(dest ...any) error {
		*dest[0].(*int64) = 1
		*dest[1].(*int64) = 2
		*dest[2].(*int64) = quantity
		*dest[3].(*time.Time) = time.Now()
		return nil
	}}
}

// El bloqueo de un saldo debe materializar la fila antes del FOR UPDATE: sin
// fila no hay nada que bloquear y dos créditos concurrentes a una pareja nueva
// leerían ambos cero, pisándose al escribir.
func TestGetForUpdate_MaterializaLaFilaAntesDeBloquear(t *testing.T) {
	q := &scriptQuerier{row: balanceRow(5)}
	repo := NewBalanceRepository(q)

	bal, err := repo.GetForUpdate(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal.Quantity)

	require.Len(t, q.ops, 2)
	assert.Contains(t, q.ops[0], "INSERT INTO stock_balances")
	assert.Contains(t, q.ops[0], "ON CONFLICT (item_id, location_id) DO NOTHING")
	assert.Contains(t, q.ops[1], "FOR UPDATE")
}

func TestGetForUpdate_ParejaNuevaDevuelveCero(t *testing.T) {
	q := &scriptQuerier{row: stubRow{scan: func(...any) error { return pgx.ErrNoRows }}}
	repo := NewBalanceRepository(q)

	bal, err := repo.GetForUpdate(7, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(7), bal.ItemID)
	assert.Equal(t, int64(9), bal.LocationID)
	assert.Zero(t, bal.Quantity)
}

// Get es solo lectura: nunca crea la fila ni la bloquea.
func TestGet_NoMaterializaNiBloquea(t *testing.T) {
	q := &scriptQuerier{row: balanceRow(3)}
	repo := NewBalanceRepository(q)

	bal, err := repo.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), bal.Quantity)

	require.Len(t, q.ops, 1)
	assert.False(t, strings.Contains(q.ops[0], "INSERT"))
	assert.False(t, strings.Contains(q.ops[0], "FOR UPDATE"))
}
