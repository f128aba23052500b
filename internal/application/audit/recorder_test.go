package audit_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func newRecorder(t *testing.T) (*audit.Recorder, repository.AuditRepository) {
	t.Helper()
	store := memory.NewStore()
	return audit.NewRecorder(store.Audit(), logger.NewNop()), store.Audit()
}

// captureSubscriber acumula los eventos recibidos.
type captureSubscriber struct {
	events []audit.Event
}

func (c *captureSubscriber) OnAudit(ev audit.Event) { c.events = append(c.events, ev) }

// failingAuditRepo simula una bitácora que no puede escribir.
type failingAuditRepo struct{}

func (f *failingAuditRepo) Append(*entity.AuditEntry) error { return errors.New("disco lleno") }
func (f *failingAuditRepo) List(repository.AuditFilter, int, int) ([]*entity.AuditEntry, error) {
	return nil, nil
}
func (f *failingAuditRepo) Count(repository.AuditFilter) (int64, error) { return 0, nil }

func TestRecord_IDsMonotonos(t *testing.T) {
	rec, repo := newRecorder(t)

	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "primero")
	rec.Record(entity.AuditActionUpdate, entity.AuditEntityItem, 1, 10, "segundo")
	rec.Record(entity.AuditActionDelete, entity.AuditEntityItem, 1, 10, "tercero")

	entries, err := repo.List(repository.AuditFilter{}, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Orden descendente por ID, IDs estrictamente crecientes.
	assert.Greater(t, entries[0].ID, entries[1].ID)
	assert.Greater(t, entries[1].ID, entries[2].ID)
	assert.Equal(t, "tercero", entries[0].Details)
}

func TestList_Filtros(t *testing.T) {
	rec, _ := newRecorder(t)

	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "alta")
	rec.Record(entity.AuditActionDelete, entity.AuditEntityItem, 1, 10, "baja")
	rec.Record(entity.AuditActionCreate, entity.AuditEntityLocation, 2, 10, "alta ubicación")

	byAction, total, err := rec.List(repository.AuditFilter{ActionType: entity.AuditActionCreate}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, byAction, 2)
	assert.Equal(t, int64(2), total)

	byEntity, total, err := rec.List(repository.AuditFilter{EntityType: entity.AuditEntityLocation}, 10, 0)
	require.NoError(t, err)
	require.Len(t, byEntity, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "alta ubicación", byEntity[0].Details)

	both, _, err := rec.List(repository.AuditFilter{
		ActionType: entity.AuditActionDelete,
		EntityType: entity.AuditEntityLocation,
	}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, both)
}

func TestList_FiltroPorRangoDeFechas(t *testing.T) {
	rec, _ := newRecorder(t)
	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "dentro del rango")

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	inRange, _, err := rec.List(repository.AuditFilter{From: &past, To: &future}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	outOfRange, _, err := rec.List(repository.AuditFilter{To: &past}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, outOfRange)
}

func TestRecord_NotificaSuscriptoresConMetadatos(t *testing.T) {
	rec, _ := newRecorder(t)
	sub := &captureSubscriber{}
	rec.Subscribe(sub)

	rec.RecordWithMeta(entity.AuditActionWarning, entity.AuditEntityItem, 3, 10, "stock bajo",
		map[string]string{"low_stock": "1", "item_name": "Resma A4"})

	require.Len(t, sub.events, 1)
	ev := sub.events[0]
	assert.Equal(t, entity.AuditActionWarning, ev.Entry.ActionType)
	assert.Equal(t, int64(3), ev.Entry.EntityID)
	assert.Equal(t, "1", ev.Meta["low_stock"])
	assert.Equal(t, "Resma A4", ev.Meta["item_name"])
}

func TestRecord_FalloDeEscrituraNoPropaga(t *testing.T) {
	rec := audit.NewRecorder(&failingAuditRepo{}, logger.NewNop())
	sub := &captureSubscriber{}
	rec.Subscribe(sub)

	// No entra en pánico ni propaga; los suscriptores no ven entradas fantasma.
	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "no persiste")
	assert.Empty(t, sub.events)
}

func TestExportXLSX(t *testing.T) {
	rec, _ := newRecorder(t)
	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "alta de artículo")
	rec.Record(entity.AuditActionDelete, entity.AuditEntityItem, 1, 10, "baja de artículo")

	data, err := rec.ExportXLSX(repository.AuditFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bitacora")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Detalle", rows[0][6])
	// Del más reciente al más antiguo.
	assert.Equal(t, "baja de artículo", rows[1][6])
	assert.Equal(t, "alta de artículo", rows[2][6])
}

func TestExportXLSX_RespetaElFiltro(t *testing.T) {
	rec, _ := newRecorder(t)
	rec.Record(entity.AuditActionCreate, entity.AuditEntityItem, 1, 10, "artículo")
	rec.Record(entity.AuditActionCreate, entity.AuditEntityLocation, 2, 10, "ubicación")

	data, err := rec.ExportXLSX(repository.AuditFilter{EntityType: entity.AuditEntityItem})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bitacora")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "artículo", rows[1][6])
}
