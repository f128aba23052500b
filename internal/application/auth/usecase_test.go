package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func newAuthUseCase(t *testing.T) (*auth.AuthUseCase, int64) {
	t.Helper()
	store := memory.NewStore()
	rec := audit.NewRecorder(store.Audit(), logger.NewNop())

	dep := &entity.Department{Name: "Sistemas"}
	require.NoError(t, store.Departments().Create(dep))

	uc := auth.NewAuthUseCase(store.Users(), store.Departments(), rec, auth.JWTConfig{
		Secret:     "secreto-de-pruebas",
		ExpMinutes: 60,
		Issuer:     "almacen-api",
	})
	return uc, dep.ID
}

func TestRegister(t *testing.T) {
	uc, depID := newAuthUseCase(t)

	user, token, err := uc.Register(auth.RegisterInput{
		Name:         "Carla",
		Email:        "carla@example.org",
		Password:     "contraseña-larga",
		Role:         entity.RoleUser,
		DepartmentID: depID,
	}, 0)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "contraseña-larga", user.PasswordHash)

	// El token emitido lleva los claims del usuario.
	userID, role, departmentID, err := jwt.Parse("secreto-de-pruebas", token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
	assert.Equal(t, depID, departmentID)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, depID := newAuthUseCase(t)

	cases := []struct {
		name string
		in   auth.RegisterInput
	}{
		{"email vacío", auth.RegisterInput{Password: "contraseña-larga", Role: entity.RoleUser, DepartmentID: depID}},
		{"contraseña corta", auth.RegisterInput{Email: "x@example.org", Password: "corta", Role: entity.RoleUser, DepartmentID: depID}},
		{"rol desconocido", auth.RegisterInput{Email: "x@example.org", Password: "contraseña-larga", Role: "root", DepartmentID: depID}},
		{"dependencia desconocida", auth.RegisterInput{Email: "x@example.org", Password: "contraseña-larga", Role: entity.RoleUser, DepartmentID: 9999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := uc.Register(tc.in, 0)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, depID := newAuthUseCase(t)

	in := auth.RegisterInput{
		Name: "Carla", Email: "carla@example.org", Password: "contraseña-larga",
		Role: entity.RoleUser, DepartmentID: depID,
	}
	_, _, err := uc.Register(in, 0)
	require.NoError(t, err)

	_, _, err = uc.Register(in, 0)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, depID := newAuthUseCase(t)
	_, _, err := uc.Register(auth.RegisterInput{
		Name: "Carla", Email: "carla@example.org", Password: "contraseña-larga",
		Role: entity.RoleAdmin, DepartmentID: depID,
	}, 0)
	require.NoError(t, err)

	user, token, err := uc.Login("carla@example.org", "contraseña-larga")
	require.NoError(t, err)
	assert.Equal(t, "carla@example.org", user.Email)
	assert.NotEmpty(t, token)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, depID := newAuthUseCase(t)
	_, _, err := uc.Register(auth.RegisterInput{
		Name: "Carla", Email: "carla@example.org", Password: "contraseña-larga",
		Role: entity.RoleUser, DepartmentID: depID,
	}, 0)
	require.NoError(t, err)

	_, _, err = uc.Login("carla@example.org", "otra-contraseña")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, err = uc.Login("nadie@example.org", "contraseña-larga")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
