package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRequestRepository define el puerto de persistencia de solicitudes.
type StockRequestRepository interface {
	Create(request *entity.StockRequest) error
	GetByID(id int64) (*entity.StockRequest, error)
	// GetByIDForUpdate bloquea la solicitud durante la aprobación/rechazo para
	// que dos resoluciones concurrentes no pasen ambas el chequeo de pendiente.
	GetByIDForUpdate(id int64) (*entity.StockRequest, error)
	Update(request *entity.StockRequest) error
	List(status string, limit, offset int) ([]*entity.StockRequest, error)
	ListByUser(userID int64, limit, offset int) ([]*entity.StockRequest, error)
	CountByStatus(status string) (int64, error)
}
