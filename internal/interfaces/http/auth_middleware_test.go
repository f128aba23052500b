package http_test

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

// newAuthApp monta una app mínima con una ruta autenticada y una de admin.
func newAuthApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":       apphttp.GetUserID(c),
			"role":          apphttp.GetRole(c),
			"department_id": apphttp.GetDepartmentID(c),
		})
	})
	protected.Get("/admin", apphttp.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, token string, path string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_CargaClaimsEnContexto(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate(testSecret, 42, "user", 7, "almacen-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/me")
	defer resp.Body.Close()
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		UserID       int64  `json:"user_id"`
		Role         string `json:"role"`
		DepartmentID int64  `json:"department_id"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, int64(42), body.UserID)
	assert.Equal(t, "user", body.Role)
	assert.Equal(t, int64(7), body.DepartmentID)
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newAuthApp()
	resp := doRequest(t, app, "", "/me")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newAuthApp()
	req := httptest.NewRequest(nethttp.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := newAuthApp()
	resp := doRequest(t, app, "no-es-un-jwt", "/me")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate("otro-secreto", 42, "user", 7, "almacen-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/me")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate(testSecret, 42, "user", 7, "almacen-api", -5)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/me")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_AdminPasa(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate(testSecret, 1, "admin", 1, "almacen-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestRequireRole_UsuarioBloqueado(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate(testSecret, 1, "user", 1, "almacen-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	app := newAuthApp()
	token, err := jwt.Generate(testSecret, 1, "", 1, "almacen-api", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, token, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}
