// Package memory implementa todos los puertos de repositorio sobre mapas en
// memoria. Sirve como driver de base de datos para demos (DB_DRIVER=memory) y
// como backend de las pruebas, con la misma semántica transaccional que el
// driver de PostgreSQL: o se aplica todo el callback o no se aplica nada.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type balKey struct {
	itemID     int64
	locationID int64
}

// ledgerTables agrupa las tablas que mutan dentro de transacciones del libro
// mayor. El runner las clona al iniciar y reemplaza el original al confirmar.
type ledgerTables struct {
	balances  map[balKey]*entity.StockBalance
	movements map[int64]*entity.StockMovement
	lots      map[int64]*entity.ProcurementLot
	discards  map[int64]*entity.DiscardRecord
	requests  map[int64]*entity.StockRequest

	nextMovementID int64
	nextLotID      int64
	nextDiscardID  int64
	nextRequestID  int64
}

func newLedgerTables() ledgerTables {
	return ledgerTables{
		balances:  make(map[balKey]*entity.StockBalance),
		movements: make(map[int64]*entity.StockMovement),
		lots:      make(map[int64]*entity.ProcurementLot),
		discards:  make(map[int64]*entity.DiscardRecord),
		requests:  make(map[int64]*entity.StockRequest),
	}
}

func (t *ledgerTables) clone() *ledgerTables {
	cp := newLedgerTables()
	cp.nextMovementID = t.nextMovementID
	cp.nextLotID = t.nextLotID
	cp.nextDiscardID = t.nextDiscardID
	cp.nextRequestID = t.nextRequestID
	for k, v := range t.balances {
		b := *v
		cp.balances[k] = &b
	}
	for k, v := range t.movements {
		m := *v
		cp.movements[k] = &m
	}
	for k, v := range t.lots {
		l := *v
		cp.lots[k] = &l
	}
	for k, v := range t.discards {
		d := *v
		cp.discards[k] = &d
	}
	for k, v := range t.requests {
		r := *v
		cp.requests[k] = &r
	}
	return &cp
}

// Store es el almacén en memoria. Un solo mutex serializa todo; suficiente
// para demos y pruebas, y hace triviales las garantías de aislamiento.
type Store struct {
	mu sync.Mutex

	ledger ledgerTables

	items       map[int64]*entity.Item
	categories  map[int64]*entity.Category
	departments map[int64]*entity.Department
	locations   map[int64]*entity.Location
	users       map[int64]*entity.User

	audits        []*entity.AuditEntry
	notifications map[int64]*entity.Notification

	nextItemID         int64
	nextCategoryID     int64
	nextDepartmentID   int64
	nextLocationID     int64
	nextUserID         int64
	nextAuditID        int64
	nextNotificationID int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		ledger:        newLedgerTables(),
		items:         make(map[int64]*entity.Item),
		categories:    make(map[int64]*entity.Category),
		departments:   make(map[int64]*entity.Department),
		locations:     make(map[int64]*entity.Location),
		users:         make(map[int64]*entity.User),
		notifications: make(map[int64]*entity.Notification),
	}
}

// Accesores de repositorios.

func (s *Store) Items() repository.ItemRepository                 { return &itemRepo{s: s} }
func (s *Store) Categories() repository.CategoryRepository        { return &categoryRepo{s: s} }
func (s *Store) Departments() repository.DepartmentRepository     { return &departmentRepo{s: s} }
func (s *Store) Locations() repository.LocationRepository         { return &locationRepo{s: s} }
func (s *Store) Users() repository.UserRepository                 { return &userRepo{s: s} }
func (s *Store) Balances() repository.BalanceRepository           { return &balanceRepo{s: s} }
func (s *Store) Movements() repository.MovementRepository         { return &movementRepo{s: s} }
func (s *Store) Procurements() repository.ProcurementRepository   { return &procurementRepo{s: s} }
func (s *Store) Discards() repository.DiscardRepository           { return &discardRepo{s: s} }
func (s *Store) Requests() repository.StockRequestRepository      { return &requestRepo{s: s} }
func (s *Store) Audit() repository.AuditRepository                { return &auditRepo{s: s} }
func (s *Store) Notifications() repository.NotificationRepository { return &notificationRepo{s: s} }

// TxRunner devuelve el ejecutor transaccional del almacén.
func (s *Store) TxRunner() ledger.TxRunner { return &txRunner{s: s} }

var _ ledger.TxRunner = (*txRunner)(nil)

type txRunner struct {
	s *Store
}

// Run ejecuta fn sobre una copia de las tablas del libro mayor. Si fn falla
// la copia se descarta; si termina bien reemplaza el estado, de modo que
// una operación a medio aplicar nunca es visible.
func (r *txRunner) Run(_ context.Context, fn func(repos ledger.TxRepos) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	staged := r.s.ledger.clone()
	repos := ledger.TxRepos{
		Balances:     &balanceView{t: staged, s: r.s},
		Movements:    &movementView{t: staged},
		Procurements: &procurementView{t: staged},
		Discards:     &discardView{t: staged},
		Requests:     &requestView{t: staged},
	}
	if err := fn(repos); err != nil {
		return err
	}
	r.s.ledger = *staged
	return nil
}
