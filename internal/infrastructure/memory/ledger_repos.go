package memory

import (
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Envoltorios con lock de las vistas del libro mayor para accesos fuera de
// transacción (consultas de la API, reportes, chequeo de stock bajo).

var (
	_ repository.BalanceRepository      = (*balanceRepo)(nil)
	_ repository.MovementRepository     = (*movementRepo)(nil)
	_ repository.ProcurementRepository  = (*procurementRepo)(nil)
	_ repository.DiscardRepository      = (*discardRepo)(nil)
	_ repository.StockRequestRepository = (*requestRepo)(nil)
)

type balanceRepo struct {
	s *Store
}

func (r *balanceRepo) view() *balanceView { return &balanceView{t: &r.s.ledger, s: r.s} }

func (r *balanceRepo) Get(itemID, locationID int64) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Get(itemID, locationID)
}

func (r *balanceRepo) GetForUpdate(itemID, locationID int64) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetForUpdate(itemID, locationID)
}

func (r *balanceRepo) Upsert(balance *entity.StockBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Upsert(balance)
}

func (r *balanceRepo) TotalByItem(itemID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().TotalByItem(itemID)
}

func (r *balanceRepo) TotalByLocation(locationID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().TotalByLocation(locationID)
}

func (r *balanceRepo) ListByItem(itemID int64) ([]*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListByItem(itemID)
}

func (r *balanceRepo) ListByLocation(locationID int64) ([]*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListByLocation(locationID)
}

func (r *balanceRepo) ListBelowThreshold() ([]*entity.LowStockItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListBelowThreshold()
}

type movementRepo struct {
	s *Store
}

func (r *movementRepo) view() *movementView { return &movementView{t: &r.s.ledger} }

func (r *movementRepo) Create(m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Create(m)
}

func (r *movementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetByID(id)
}

func (r *movementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().List(limit, offset)
}

func (r *movementRepo) ListByItem(itemID int64) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListByItem(itemID)
}

func (r *movementRepo) CountSince(days int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().CountSince(days)
}

type procurementRepo struct {
	s *Store
}

func (r *procurementRepo) view() *procurementView { return &procurementView{t: &r.s.ledger} }

func (r *procurementRepo) Create(lot *entity.ProcurementLot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Create(lot)
}

func (r *procurementRepo) GetByID(id int64) (*entity.ProcurementLot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetByID(id)
}

func (r *procurementRepo) Update(lot *entity.ProcurementLot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Update(lot)
}

func (r *procurementRepo) List(limit, offset int) ([]*entity.ProcurementLot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().List(limit, offset)
}

func (r *procurementRepo) ListByItem(itemID int64) ([]*entity.ProcurementLot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListByItem(itemID)
}

type discardRepo struct {
	s *Store
}

func (r *discardRepo) view() *discardView { return &discardView{t: &r.s.ledger} }

func (r *discardRepo) Create(rec *entity.DiscardRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Create(rec)
}

func (r *discardRepo) GetByID(id int64) (*entity.DiscardRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetByID(id)
}

func (r *discardRepo) List(limit, offset int) ([]*entity.DiscardRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().List(limit, offset)
}

type requestRepo struct {
	s *Store
}

func (r *requestRepo) view() *requestView { return &requestView{t: &r.s.ledger} }

func (r *requestRepo) Create(req *entity.StockRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Create(req)
}

func (r *requestRepo) GetByID(id int64) (*entity.StockRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetByID(id)
}

func (r *requestRepo) GetByIDForUpdate(id int64) (*entity.StockRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().GetByIDForUpdate(id)
}

func (r *requestRepo) Update(req *entity.StockRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().Update(req)
}

func (r *requestRepo) List(status string, limit, offset int) ([]*entity.StockRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().List(status, limit, offset)
}

func (r *requestRepo) ListByUser(userID int64, limit, offset int) ([]*entity.StockRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().ListByUser(userID, limit, offset)
}

func (r *requestRepo) CountByStatus(status string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view().CountByStatus(status)
}
