package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Un fallo de begin/commit se reporta como error de
// persistencia: la operación no quedó aplicada.
func (r *TxRunner) Run(ctx context.Context, fn func(repos ledger.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", domain.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := ledger.TxRepos{
		Balances:     NewBalanceRepository(tx),
		Movements:    NewMovementRepository(tx),
		Procurements: NewProcurementRepository(tx),
		Discards:     NewDiscardRepository(tx),
		Requests:     NewStockRequestRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit transaction: %v", domain.ErrPersistence, err)
	}
	return nil
}
