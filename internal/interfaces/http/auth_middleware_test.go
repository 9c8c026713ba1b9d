package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/clientes-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "clientes-api-test"
	testExpMin    = 60
)

// buildRoleApp ruta /protected con AuthMiddleware + RequireRole.
func buildRoleApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "role": apphttp.GetRole(c)})
		},
	)
	return app
}

// tokenForRole genera un header Authorization con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testIssuer, testExpMin, pkgjwt.Subject{UserID: testUserID, Email: "ana@tienda.co", Role: role})
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireRole_AdminAccede(t *testing.T) {
	resp := doGet(t, buildRoleApp("admin"), "/protected", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_StaffBloqueadoEnRutaAdmin(t *testing.T) {
	resp := doGet(t, buildRoleApp("admin"), "/protected", tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_VariosRoles(t *testing.T) {
	resp := doGet(t, buildRoleApp("admin", "staff"), "/protected", tokenForRole(t, "staff"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_TokenSinRol(t *testing.T) {
	resp := doGet(t, buildRoleApp("admin"), "/protected", tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	app := buildRoleApp("admin")
	cases := map[string]string{
		"sin header":       "",
		"sin bearer":       "Token abc",
		"token invalido":   "Bearer token.invalido.aqui",
		"bearer sin token": "Bearer   ",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doGet(t, app, "/protected", header)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "role": apphttp.GetRole(c)})
	})

	resp := doGet(t, app, "/me", tokenForRole(t, "staff"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "staff", body["role"])
}

func TestRequestLogger_AsignaRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.RequestLogger(nopLogger()))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetRequestID(c))
	})

	resp := doGet(t, app, "/ping", "")
	defer resp.Body.Close()
	id := resp.Header.Get(apphttp.HeaderRequestID)
	require.NotEmpty(t, id)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apphttp.HeaderRequestID, "6f1c2d9e-0000-4000-8000-000000000001")
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, "6f1c2d9e-0000-4000-8000-000000000001", resp2.Header.Get(apphttp.HeaderRequestID))
}
