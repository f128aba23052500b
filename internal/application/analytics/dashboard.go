package analytics

import (
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DashboardSummary datos agregados para la pantalla principal.
type DashboardSummary struct {
	TotalItems      int64
	PendingRequests int64
	RecentMovements int64 // últimos 7 días
	LowStock        []*entity.LowStockItem
}

// DashboardUseCase arma el resumen del tablero a partir del estado vivo de
// los libros; no mantiene agregados propios.
type DashboardUseCase struct {
	items     repository.ItemRepository
	requests  repository.StockRequestRepository
	movements repository.MovementRepository
	balances  repository.BalanceRepository
}

// NewDashboardUseCase construye el caso de uso del tablero.
func NewDashboardUseCase(
	items repository.ItemRepository,
	requests repository.StockRequestRepository,
	movements repository.MovementRepository,
	balances repository.BalanceRepository,
) *DashboardUseCase {
	return &DashboardUseCase{items: items, requests: requests, movements: movements, balances: balances}
}

// Summary calcula el resumen.
func (uc *DashboardUseCase) Summary() (*DashboardSummary, error) {
	totalItems, err := uc.items.Count()
	if err != nil {
		return nil, err
	}
	pending, err := uc.requests.CountByStatus(entity.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movements.CountSince(7)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.balances.ListBelowThreshold()
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		TotalItems:      totalItems,
		PendingRequests: pending,
		RecentMovements: recent,
		LowStock:        lowStock,
	}, nil
}
