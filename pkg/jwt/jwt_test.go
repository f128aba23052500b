package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("secreto", 15, "admin", 3, "almacen-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, departmentID, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, int64(15), userID)
	assert.Equal(t, "admin", role)
	assert.Equal(t, int64(3), departmentID)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", 1, "user", 1, "almacen-api", 60)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate("secreto", 1, "user", 1, "almacen-api", 60)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate("secreto", 1, "user", 1, "almacen-api", -1)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("secreto", token)
	assert.Error(t, err)
}

func TestParse_Basura(t *testing.T) {
	_, _, _, err := jwt.Parse("secreto", "abc.def.ghi")
	assert.Error(t, err)
}
