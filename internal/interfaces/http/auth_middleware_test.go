package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/SalesExec-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/SalesExec-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testEmployeeID = "E1001"
	testName       = "Asha Rao"
	testRole       = "BUSINESS_DEVELOPMENT_EXECUTIVE"
	testIssuer     = "salesexec-api-test"
	testExpMin     = 60
)

// buildRoleApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildRoleApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el empleado y rol indicados.
func tokenFor(t *testing.T, employeeID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, employeeID, testName, role, testIssuer, testExpMin)
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

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolPermitido(t *testing.T) {
	app := buildRoleApp(testRole)
	resp := doGet(t, app, "/protected", tokenFor(t, testEmployeeID, testRole))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testRole, body["role"])
}

func TestRequireRole_MultiRol(t *testing.T) {
	app := buildRoleApp("AREA_MANAGER", testRole)
	resp := doGet(t, app, "/protected", tokenFor(t, testEmployeeID, "AREA_MANAGER"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolDistintoBloqueado(t *testing.T) {
	app := buildRoleApp(testRole)
	resp := doGet(t, app, "/protected", tokenFor(t, testEmployeeID, "AREA_MANAGER"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRolBloqueado(t *testing.T) {
	app := buildRoleApp(testRole)
	resp := doGet(t, app, "/protected", tokenFor(t, testEmployeeID, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doGet(t, buildRoleApp(testRole), "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	for _, h := range []string{"Token abc", "Bearer", "Bearer    ", "Bearer token.invalido.aqui"} {
		resp := doGet(t, buildRoleApp(testRole), "/protected", h)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", h)
	}
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testEmployeeID, testName, testRole, testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, buildRoleApp(testRole), "/protected", "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"employee_id": apphttp.GetEmployeeID(c),
			"role":        apphttp.GetRole(c),
		})
	})

	resp := doGet(t, app, "/me", tokenFor(t, testEmployeeID, testRole))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testEmployeeID, body["employee_id"])
	assert.Equal(t, testRole, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSelf
// ──────────────────────────────────────────────────────────────────────────────

func buildSelfApp() *fiber.App {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, zerolog.Nop())
	app.Get("/things/:employee_id",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireSelf("employee_id"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestRequireSelf_MismoEmpleado(t *testing.T) {
	resp := doGet(t, buildSelfApp(), "/things/E1001", tokenFor(t, "E1001", testRole))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSelf_OtroEmpleadoProhibido(t *testing.T) {
	resp := doGet(t, buildSelfApp(), "/things/E2002", tokenFor(t, "E1001", testRole))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireSelf_IDCodificadoEnLaRuta(t *testing.T) {
	resp := doGet(t, buildSelfApp(), "/things/E%2001", tokenFor(t, "E 01", testRole))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "el parámetro se compara ya decodificado")

	resp2 := doGet(t, buildSelfApp(), "/things/E%2001", tokenFor(t, "E%2001", testRole))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}
