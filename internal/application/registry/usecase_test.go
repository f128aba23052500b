package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/registry"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

type registryFixture struct {
	store *memory.Store
	reg   *registry.Registry
	cat   *entity.Category
	dep   *entity.Department
	loc   *entity.Location
}

func newRegistryFixture(t *testing.T) *registryFixture {
	t.Helper()
	store := memory.NewStore()
	rec := audit.NewRecorder(store.Audit(), logger.NewNop())
	f := &registryFixture{
		store: store,
		reg: registry.NewRegistry(store.Items(), store.Categories(), store.Departments(),
			store.Locations(), store.Users(), store.Balances(), rec),
	}

	f.cat = &entity.Category{Name: "Mobiliario"}
	require.NoError(t, store.Categories().Create(f.cat))
	f.dep = &entity.Department{Name: "Compras", ContactEmail: "compras@example.org"}
	require.NoError(t, store.Departments().Create(f.dep))
	f.loc = &entity.Location{Name: "Depósito 2", DepartmentID: f.dep.ID}
	require.NoError(t, store.Locations().Create(f.loc))
	return f
}

func TestCreateItem(t *testing.T) {
	f := newRegistryFixture(t)

	item, err := f.reg.CreateItem(registry.CreateItemInput{
		Name:              "Silla ergonómica",
		CategoryID:        f.cat.ID,
		LowStockThreshold: 3,
	}, 1)
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, int64(3), item.LowStockThreshold)

	stored, err := f.reg.GetItem(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Silla ergonómica", stored.Name)
}

func TestCreateItem_Validaciones(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.reg.CreateItem(registry.CreateItemInput{Name: "", CategoryID: f.cat.ID}, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.reg.CreateItem(registry.CreateItemInput{Name: "Silla", CategoryID: 9999}, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.reg.CreateItem(registry.CreateItemInput{
		Name: "Silla", CategoryID: f.cat.ID, LowStockThreshold: -1,
	}, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteItem_BloqueadoConStock(t *testing.T) {
	f := newRegistryFixture(t)
	item, err := f.reg.CreateItem(registry.CreateItemInput{Name: "Silla", CategoryID: f.cat.ID}, 1)
	require.NoError(t, err)
	require.NoError(t, f.store.Balances().Upsert(&entity.StockBalance{
		ItemID: item.ID, LocationID: f.loc.ID, Quantity: 4,
	}))

	err = f.reg.DeleteItem(item.ID, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	var refErr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, int64(4), refErr.Count)

	// Con saldo cero el borrado procede.
	require.NoError(t, f.store.Balances().Upsert(&entity.StockBalance{
		ItemID: item.ID, LocationID: f.loc.ID, Quantity: 0,
	}))
	require.NoError(t, f.reg.DeleteItem(item.ID, 1))
	_, err = f.reg.GetItem(item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategory_BloqueadaConArticulos(t *testing.T) {
	f := newRegistryFixture(t)
	item, err := f.reg.CreateItem(registry.CreateItemInput{Name: "Silla", CategoryID: f.cat.ID}, 1)
	require.NoError(t, err)

	err = f.reg.DeleteCategory(f.cat.ID, 1)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	// Reasignado el artículo a otra categoría, el borrado procede.
	other, err := f.reg.CreateCategory("Oficina", "", 1)
	require.NoError(t, err)
	_, err = f.reg.UpdateItem(item.ID, registry.UpdateItemInput{CategoryID: &other.ID}, 1)
	require.NoError(t, err)

	require.NoError(t, f.reg.DeleteCategory(f.cat.ID, 1))
	_, err = f.reg.GetCategory(f.cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteLocation_BloqueadaConStock(t *testing.T) {
	f := newRegistryFixture(t)
	item, err := f.reg.CreateItem(registry.CreateItemInput{Name: "Silla", CategoryID: f.cat.ID}, 1)
	require.NoError(t, err)
	require.NoError(t, f.store.Balances().Upsert(&entity.StockBalance{
		ItemID: item.ID, LocationID: f.loc.ID, Quantity: 2,
	}))

	err = f.reg.DeleteLocation(f.loc.ID, 1)
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	require.NoError(t, f.store.Balances().Upsert(&entity.StockBalance{
		ItemID: item.ID, LocationID: f.loc.ID, Quantity: 0,
	}))
	require.NoError(t, f.reg.DeleteLocation(f.loc.ID, 1))
}

func TestDeleteDepartment_BloqueadaPorDependientes(t *testing.T) {
	f := newRegistryFixture(t)

	user := &entity.User{Name: "Ana", Email: "ana@example.org", Role: entity.RoleUser, DepartmentID: f.dep.ID}
	require.NoError(t, f.store.Users().Create(user))

	// Primero bloquean los usuarios.
	err := f.reg.DeleteDepartment(f.dep.ID, 1)
	require.Error(t, err)
	var refErr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "usuario(s)", refErr.Dependents)

	require.NoError(t, f.reg.DeleteUser(user.ID, 1))

	// Luego las ubicaciones.
	err = f.reg.DeleteDepartment(f.dep.ID, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "ubicación(es)", refErr.Dependents)

	require.NoError(t, f.reg.DeleteLocation(f.loc.ID, 1))
	require.NoError(t, f.reg.DeleteDepartment(f.dep.ID, 1))
}

func TestDeleteEntity_DespachaPorTipo(t *testing.T) {
	f := newRegistryFixture(t)
	item, err := f.reg.CreateItem(registry.CreateItemInput{Name: "Silla", CategoryID: f.cat.ID}, 1)
	require.NoError(t, err)

	require.NoError(t, f.reg.DeleteEntity(entity.AuditEntityItem, item.ID, 1))
	_, err = f.reg.GetItem(item.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.reg.DeleteEntity("warehouse", 1, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetEntidadesInexistentes(t *testing.T) {
	f := newRegistryFixture(t)

	_, err := f.reg.GetItem(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.reg.GetCategory(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.reg.GetDepartment(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.reg.GetLocation(9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_ParcheParcial(t *testing.T) {
	f := newRegistryFixture(t)
	item, err := f.reg.CreateItem(registry.CreateItemInput{
		Name: "Silla", Description: "giratoria", CategoryID: f.cat.ID,
	}, 1)
	require.NoError(t, err)

	name := "Silla ejecutiva"
	updated, err := f.reg.UpdateItem(item.ID, registry.UpdateItemInput{Name: &name}, 1)
	require.NoError(t, err)
	assert.Equal(t, "Silla ejecutiva", updated.Name)
	// Los campos no incluidos en el parche no cambian.
	assert.Equal(t, "giratoria", updated.Description)
	assert.Equal(t, f.cat.ID, updated.CategoryID)
}
