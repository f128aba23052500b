package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// fixture arma un almacén en memoria con una categoría, una dependencia,
// dos ubicaciones y un artículo listos para operar.
type fixture struct {
	store *memory.Store
	rec   *audit.Recorder
	item  *entity.Item
	locA  *entity.Location
	locB  *entity.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{store: store, rec: audit.NewRecorder(store.Audit(), logger.NewNop())}

	cat := &entity.Category{Name: "Papelería"}
	require.NoError(t, store.Categories().Create(cat))
	dep := &entity.Department{Name: "Administración"}
	require.NoError(t, store.Departments().Create(dep))

	f.locA = &entity.Location{Name: "Bodega central", DepartmentID: dep.ID}
	require.NoError(t, store.Locations().Create(f.locA))
	f.locB = &entity.Location{Name: "Oficina 101", DepartmentID: dep.ID}
	require.NoError(t, store.Locations().Create(f.locB))

	f.item = &entity.Item{Name: "Resma A4", CategoryID: cat.ID}
	require.NoError(t, store.Items().Create(f.item))
	return f
}

func (f *fixture) movements() *ledger.MovementEngine {
	return ledger.NewMovementEngine(f.store.TxRunner(), f.store.Items(), f.store.Locations(), f.rec)
}

func (f *fixture) procurements() *ledger.ProcurementLedger {
	return ledger.NewProcurementLedger(f.store.TxRunner(), f.store.Items(), f.store.Locations(), f.rec)
}

func (f *fixture) discardLedger() *ledger.DiscardLedger {
	return ledger.NewDiscardLedger(f.store.TxRunner(), f.store.Items(), f.store.Locations(),
		f.store.Procurements(), f.store.Balances(), f.rec)
}

func (f *fixture) setBalance(t *testing.T, itemID, locationID, qty int64) {
	t.Helper()
	require.NoError(t, f.store.Balances().Upsert(&entity.StockBalance{
		ItemID: itemID, LocationID: locationID, Quantity: qty,
	}))
}

func (f *fixture) balance(t *testing.T, itemID, locationID int64) int64 {
	t.Helper()
	bal, err := f.store.Balances().Get(itemID, locationID)
	require.NoError(t, err)
	return bal.Quantity
}

func (f *fixture) totalByItem(t *testing.T, itemID int64) int64 {
	t.Helper()
	total, err := f.store.Balances().TotalByItem(itemID)
	require.NoError(t, err)
	return total
}

func (f *fixture) auditEntries(t *testing.T) []*entity.AuditEntry {
	t.Helper()
	entries, err := f.store.Audit().List(repository.AuditFilter{}, 100, 0)
	require.NoError(t, err)
	return entries
}
