package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProcurementRepository define el puerto de persistencia de lotes de adquisición.
type ProcurementRepository interface {
	Create(lot *entity.ProcurementLot) error
	GetByID(id int64) (*entity.ProcurementLot, error)
	// Update solo lo usa la corrección administrativa (Amend); cantidad,
	// artículo y destino nunca cambian.
	Update(lot *entity.ProcurementLot) error
	List(limit, offset int) ([]*entity.ProcurementLot, error)
	ListByItem(itemID int64) ([]*entity.ProcurementLot, error)
}
