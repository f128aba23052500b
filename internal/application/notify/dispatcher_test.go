package notify_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type dispatcherFixture struct {
	store  *memory.Store
	rec    *audit.Recorder
	admin1 *entity.User
	admin2 *entity.User
	user   *entity.User
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()
	store := memory.NewStore()
	log := logger.NewNop()

	dep := &entity.Department{Name: "Operaciones"}
	require.NoError(t, store.Departments().Create(dep))

	f := &dispatcherFixture{
		store:  store,
		rec:    audit.NewRecorder(store.Audit(), log),
		admin1: &entity.User{Name: "Admin Uno", Email: "a1@example.org", Role: entity.RoleAdmin, DepartmentID: dep.ID},
		admin2: &entity.User{Name: "Admin Dos", Email: "a2@example.org", Role: entity.RoleAdmin, DepartmentID: dep.ID},
		user:   &entity.User{Name: "Usuario", Email: "u@example.org", Role: entity.RoleUser, DepartmentID: dep.ID},
	}
	require.NoError(t, store.Users().Create(f.admin1))
	require.NoError(t, store.Users().Create(f.admin2))
	require.NoError(t, store.Users().Create(f.user))

	f.rec.Subscribe(notify.NewDispatcher(store.Users(), store.Notifications(), log))
	return f
}

func (f *dispatcherFixture) notificationsFor(t *testing.T, userID int64) []*entity.Notification {
	t.Helper()
	list, err := f.store.Notifications().ListByUser(userID, 50, 0)
	require.NoError(t, err)
	return list
}

func TestDispatcher_NuevaSolicitudNotificaAdministradores(t *testing.T) {
	f := newDispatcherFixture(t)

	f.rec.RecordWithMeta(entity.AuditActionCreate, entity.AuditEntityRequest, 1, f.user.ID,
		"solicitud de 4 unidad(es)",
		map[string]string{"notify_admins": "1", "item_name": "Tóner negro", "quantity": "4"})

	for _, adminID := range []int64{f.admin1.ID, f.admin2.ID} {
		list := f.notificationsFor(t, adminID)
		require.Len(t, list, 1)
		assert.Equal(t, entity.NotificationTypeStockRequest, list[0].Type)
		assert.Contains(t, list[0].Message, "Tóner negro")
		assert.False(t, list[0].Read)
	}
	// El solicitante no se notifica a sí mismo.
	assert.Empty(t, f.notificationsFor(t, f.user.ID))
}

func TestDispatcher_ResolucionNotificaAlSolicitante(t *testing.T) {
	f := newDispatcherFixture(t)

	f.rec.RecordWithMeta(entity.AuditActionUpdate, entity.AuditEntityRequest, 1, f.admin1.ID,
		"solicitud 1 aprobada",
		map[string]string{
			"notify_user_id": strconv.FormatInt(f.user.ID, 10),
			"resolution":     entity.RequestStatusApproved,
			"item_name":      "Tóner negro",
		})

	list := f.notificationsFor(t, f.user.ID)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Message, "aprobada")
	assert.Empty(t, f.notificationsFor(t, f.admin1.ID))
}

func TestDispatcher_StockBajoNotificaAdministradores(t *testing.T) {
	f := newDispatcherFixture(t)

	f.rec.RecordWithMeta(entity.AuditActionWarning, entity.AuditEntityItem, 9, 0,
		"stock bajo",
		map[string]string{"low_stock": "1", "item_name": "Resma A4", "total": "2"})

	list := f.notificationsFor(t, f.admin1.ID)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationTypeInventory, list[0].Type)
	assert.Contains(t, list[0].Message, "Resma A4")
}

func TestDispatcher_IgnoraEventosNoRelacionados(t *testing.T) {
	f := newDispatcherFixture(t)

	f.rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, f.admin1.ID, "alta de artículo")
	f.rec.Record(entity.AuditActionDelete, entity.AuditEntityCategory, 2, f.admin1.ID, "baja de categoría")

	assert.Empty(t, f.notificationsFor(t, f.admin1.ID))
	assert.Empty(t, f.notificationsFor(t, f.admin2.ID))
	assert.Empty(t, f.notificationsFor(t, f.user.ID))
}
