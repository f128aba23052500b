package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción. Solo las
// operaciones del libro mayor (adquisición, traslado, descarte, resolución de
// solicitudes) mutan saldos, y siempre a través de estos repos.
type TxRepos struct {
	Balances     repository.BalanceRepository
	Movements    repository.MovementRepository
	Procurements repository.ProcurementRepository
	Discards     repository.DiscardRepository
	Requests     repository.StockRequestRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: si fn devuelve error no
// queda aplicado nada (rollback completo, sin traslados parciales).
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
