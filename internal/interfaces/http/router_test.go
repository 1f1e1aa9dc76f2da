package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	apphttp "github.com/jhoicas/SalesExec-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Servicios falsos
// ──────────────────────────────────────────────────────────────────────────────

type fakeAuth struct{ err error }

func (f *fakeAuth) Register(_ context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	if in.Password == "" {
		return nil, domain.Invalid("All fields are required")
	}
	return &dto.AuthResponse{Token: "tok", User: dto.ProfileResponse{EmployeeID: in.EmployeeID}}, nil
}

func (f *fakeAuth) Login(_ context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AuthResponse{Token: "tok", User: dto.ProfileResponse{EmployeeID: in.EmployeeID}}, nil
}

func (f *fakeAuth) ForgotPassword(context.Context, dto.ForgotPasswordRequest) (string, error) {
	return "sent", f.err
}

func (f *fakeAuth) Verify(_ context.Context, id string) (*dto.ProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ProfileResponse{EmployeeID: id, FullName: testName}, nil
}

type fakeIncentives struct{ err error }

func (f *fakeIncentives) DailySummary(_ context.Context, id string) (*dto.IncentiveSummaryDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.IncentiveSummaryDTO{PeriodKey: "2026-10-19", MaxTarget: 100, AchievedAmount: 60, RemainingAmount: 40}, nil
}

func (f *fakeIncentives) WeeklySummary(ctx context.Context, id string) (*dto.IncentiveSummaryDTO, error) {
	return f.DailySummary(ctx, id)
}

func (f *fakeIncentives) DailyTargets(context.Context, string) (*dto.TargetsDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TargetsDTO{PeriodKey: "2026-10-19", Targets: []dto.MetricTargetDTO{{Metric: "Sales", Target: 300}}}, nil
}

func (f *fakeIncentives) WeeklyTargets(ctx context.Context, id string) (*dto.TargetsDTO, error) {
	return f.DailyTargets(ctx, id)
}

type fakeLeaderboard struct{}

func (fakeLeaderboard) Get(_ context.Context, _, period, layer string) (*dto.LeaderboardResponse, error) {
	if period != "" && period != "day" && period != "week" {
		return nil, domain.Invalid("Invalid period. Use 'day' or 'week'")
	}
	return &dto.LeaderboardResponse{Rankings: []dto.LeaderboardEntryDTO{}, Period: "day", Layer: "city"}, nil
}

type fakeCustomers struct{}

func (fakeCustomers) NudgeZone(context.Context, string) ([]dto.NudgeCustomerDTO, error) {
	return []dto.NudgeCustomerDTO{{CustomerID: "C1", LastOrder: "3 days ago"}}, nil
}

func (fakeCustomers) SoClose(context.Context, string) ([]dto.SoCloseCustomerDTO, error) {
	return []dto.SoCloseCustomerDTO{}, nil
}

func (fakeCustomers) TargetCustomers(_ context.Context, _, metric, period string) (*dto.TargetCustomersResponse, error) {
	return &dto.TargetCustomersResponse{Customers: []dto.TargetCustomerDTO{}, Metric: metric, Period: period}, nil
}

func (fakeCustomers) Base(context.Context, string, string, string) ([]dto.BaseCustomerDTO, error) {
	return []dto.BaseCustomerDTO{{CustomerID: "C1"}}, nil
}

type fakeAttention struct{}

func (fakeAttention) Metrics(context.Context, string) ([]string, error) {
	return []string{"Returns"}, nil
}

func (fakeAttention) Customers(context.Context, string, string) ([]dto.AttentionCustomerDTO, error) {
	return []dto.AttentionCustomerDTO{}, nil
}

func (fakeAttention) SKUDetails(_ context.Context, _, customerID, _ string) ([]dto.AttentionSKUDTO, error) {
	return []dto.AttentionSKUDTO{{SKUID: "S-" + customerID}}, nil
}

type fakeNotifications struct{}

func (fakeNotifications) Latest(context.Context) (*dto.NotificationsResponse, error) {
	return &dto.NotificationsResponse{Notifications: []dto.NotificationDTO{{ID: 1, Title: "Hola"}}, Count: 1}, nil
}

type fakeEvents struct{ subject string }

func (f *fakeEvents) Log(_ context.Context, subject string, in dto.LogEventRequest) (*dto.EventDTO, error) {
	f.subject = subject
	if in.EmployeeID != subject {
		return nil, domain.ErrForbidden
	}
	return &dto.EventDTO{ID: 7, EmployeeID: in.EmployeeID, EventName: in.EventName, MetaData: json.RawMessage(`{}`)}, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

// ──────────────────────────────────────────────────────────────────────────────
// App de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app    *fiber.App
	auth   *fakeAuth
	inc    *fakeIncentives
	events *fakeEvents
}

func newTestEnv(t *testing.T, debug bool, rateLimit string, db apphttp.Pinger) *testEnv {
	t.Helper()
	env := &testEnv{auth: &fakeAuth{}, inc: &fakeIncentives{}, events: &fakeEvents{}}
	env.app = apphttp.NewApp(apphttp.AppConfig{Name: "test", Debug: debug}, zerolog.Nop())

	metrics := apphttp.NewMetrics("salesexec", prometheus.NewRegistry())
	env.app.Use(metrics.Middleware())

	err := apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:         env.auth,
		IncentiveUC:    env.inc,
		LeaderboardUC:  fakeLeaderboard{},
		CustomerUC:     fakeCustomers{},
		AttentionUC:    fakeAttention{},
		NotificationUC: fakeNotifications{},
		EventUC:        env.events,
		DB:             db,
		Metrics:        metrics,
		JWTSecret:      testJWTSecret,
		AuthRateLimit:  rateLimit,
	})
	require.NoError(t, err)
	return env
}

func defaultEnv(t *testing.T) *testEnv {
	return newTestEnv(t, false, "", fakePinger{})
}

func doJSON(t *testing.T, app *fiber.App, method, path, authHeader, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "running with database")
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealth_SinBaseDevuelve503(t *testing.T) {
	env := newTestEnv(t, false, "", fakePinger{err: errors.New("dial tcp: refused")})

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "DB_UNAVAILABLE", body["code"])
	assert.NotContains(t, body, "error", "sin debug no se expone la causa")
}

func TestKeepAlive(t *testing.T) {
	env := newTestEnv(t, false, "", fakePinger{err: errors.New("caída")})

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/keep-alive", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "keep-alive no consulta la base")
	assert.Equal(t, true, body["success"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_201(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodPost, "/api/auth/signup", "",
		`{"employee_id":"E1001","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Signup successful!", body["message"])
	assert.Equal(t, "tok", body["token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "E1001", user["employee_id"])
}

func TestSignup_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.Invalid("Password must be at least 6 characters"), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotAuthorized, http.StatusForbidden, "NOT_AUTHORIZED"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("find account: %w", domain.ErrUnavailable), http.StatusServiceUnavailable, "DB_UNAVAILABLE"},
		{errors.New("syntax error at or near"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			env := defaultEnv(t)
			env.auth.err = tc.err

			resp, body := doJSON(t, env.app, http.MethodPost, "/api/auth/signup", "",
				`{"employee_id":"E1001","password":"secret1"}`)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

func TestSignup_MensajeDeValidacion(t *testing.T) {
	env := defaultEnv(t)
	env.auth.err = domain.Invalid("Password must be at least 6 characters")

	_, body := doJSON(t, env.app, http.MethodPost, "/api/auth/signup", "", `{"employee_id":"E1001","password":"12345"}`)
	assert.Equal(t, "Password must be at least 6 characters", body["message"])
}

func TestSignup_CuerpoInvalido(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodPost, "/api/auth/signup", "", `{"employee_id":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestLogin_CredencialesInvalidas401(t *testing.T) {
	env := defaultEnv(t)
	env.auth.err = domain.ErrUnauthenticated

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", `{"employee_id":"E1001","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid employee ID or password", body["message"])
}

func TestLogin_OK(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodPost, "/api/auth/login", "", `{"employee_id":"E1001","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Login successful!", body["message"])
}

func TestForgotPassword(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodPost, "/api/auth/forgot-password", "", `{"employee_id":"E1001"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sent", body["message"])
}

func TestVerify(t *testing.T) {
	env := defaultEnv(t)

	resp, _ := doJSON(t, env.app, http.MethodGet, "/api/auth/verify", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/auth/verify", tokenFor(t, "E1001", testRole), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, "E1001", user["employee_id"])
}

func TestAuth_RateLimit429(t *testing.T) {
	env := newTestEnv(t, false, "2-M", fakePinger{})

	for i := 0; i < 2; i++ {
		resp, _ := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", `{"employee_id":"E1001","password":"secret1"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, body := doJSON(t, env.app, http.MethodPost, "/api/auth/login", "", `{"employee_id":"E1001","password":"secret1"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", body["code"])
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
}

func TestRouter_RateLimitInvalido(t *testing.T) {
	app := fiber.New()
	err := apphttp.Router(app, apphttp.RouterDeps{AuthRateLimit: "mucho"})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas protegidas por empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasPorEmpleado_RequierenTokenYMismoEmpleado(t *testing.T) {
	paths := []string{
		"/api/incentives/daily/E1001",
		"/api/incentives/weekly/E1001",
		"/api/targets/daily/E1001",
		"/api/targets/weekly/E1001",
		"/api/leaderboard/E1001",
		"/api/customers/nudge-zone/E1001",
		"/api/customers/so-close/E1001",
		"/api/target-customers/E1001",
		"/api/attention/metrics/E1001",
		"/api/attention/customers/E1001",
		"/api/attention/sku-details/E1001/C1",
		"/api/base/customers/E1001",
	}
	env := defaultEnv(t)
	own := tokenFor(t, "E1001", testRole)
	other := tokenFor(t, "E2002", testRole)

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			resp, _ := doJSON(t, env.app, http.MethodGet, p, "", "")
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			resp, _ = doJSON(t, env.app, http.MethodGet, p, other, "")
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)

			resp, body := doJSON(t, env.app, http.MethodGet, p, own, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, true, body["success"])
		})
	}
}

func TestRutasDeReporte_SoloRolEjecutivo(t *testing.T) {
	env := defaultEnv(t)
	manager := tokenFor(t, "E1001", "AREA_MANAGER")

	for _, p := range []string{"/api/incentives/daily/E1001", "/api/leaderboard/E1001", "/api/notifications"} {
		resp, body := doJSON(t, env.app, http.MethodGet, p, manager, "")
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, p)
		assert.Equal(t, "FORBIDDEN", body["code"], p)
	}

	resp, _ := doJSON(t, env.app, http.MethodPost, "/api/events/log", manager, `{"employee_id":"E1001","event_name":"x"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, env.events.subject, "el handler no se ejecuta")

	resp, _ = doJSON(t, env.app, http.MethodGet, "/api/auth/verify", manager, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "verify solo exige token")
}

func TestRutasPorEmpleado_IDCodificado(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/incentives/daily/E%2001", tokenFor(t, "E 01", testRole), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
}

func TestIncentives_Payload(t *testing.T) {
	_, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/incentives/daily/E1001", tokenFor(t, "E1001", testRole), "")

	inc, ok := body["incentives"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100.0, inc["max_target"])
	assert.Equal(t, 60.0, inc["achieved_amount"])
	assert.Equal(t, 40.0, inc["remaining_amount"])
}

func TestTargets_Payload(t *testing.T) {
	_, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/targets/weekly/E1001", tokenFor(t, "E1001", testRole), "")

	targets, ok := body["targets"].([]any)
	require.True(t, ok)
	require.Len(t, targets, 1)
	assert.Equal(t, "2026-10-19", body["period_key"])
}

func TestIncentives_BaseCaida503ConDebug(t *testing.T) {
	env := newTestEnv(t, true, "", fakePinger{})
	env.inc.err = fmt.Errorf("incentive daily: slabs: %w", domain.ErrUnavailable)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/incentives/daily/E1001", tokenFor(t, "E1001", testRole), "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body["error"], "database unavailable", "con debug se expone la causa")
}

func TestLeaderboard_ParametroInvalido400(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/leaderboard/E1001?period=month", tokenFor(t, "E1001", testRole), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid period. Use 'day' or 'week'", body["message"])
}

func TestTargetCustomers_EcoDeParametros(t *testing.T) {
	_, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/target-customers/E1001?metric=Sales&period=weekly", tokenFor(t, "E1001", testRole), "")
	assert.Equal(t, "Sales", body["metric"])
	assert.Equal(t, "weekly", body["period"])
}

func TestAttention_SKUDetails(t *testing.T) {
	_, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/attention/sku-details/E1001/C9?metric=All", tokenFor(t, "E1001", testRole), "")
	skus, ok := body["skus"].([]any)
	require.True(t, ok)
	require.Len(t, skus, 1)
	assert.Equal(t, "S-C9", skus[0].(map[string]any)["skuId"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Globales
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifications(t *testing.T) {
	env := defaultEnv(t)

	resp, _ := doJSON(t, env.app, http.MethodGet, "/api/notifications", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := doJSON(t, env.app, http.MethodGet, "/api/notifications", tokenFor(t, "E1001", testRole), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, body["count"])
}

func TestEvents_UsaElSujetoDelToken(t *testing.T) {
	env := defaultEnv(t)

	resp, body := doJSON(t, env.app, http.MethodPost, "/api/events/log", tokenFor(t, "E1001", testRole),
		`{"employee_id":"E1001","event_name":"screen_view","meta_data":{"screen":"home"}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Event logged successfully", body["message"])
	assert.Equal(t, "E1001", env.events.subject)

	resp, _ = doJSON(t, env.app, http.MethodPost, "/api/events/log", tokenFor(t, "E1001", testRole),
		`{"employee_id":"E2002","event_name":"screen_view"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMetrics_Expone(t *testing.T) {
	env := defaultEnv(t)
	doJSON(t, env.app, http.MethodGet, "/api/keep-alive", "", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "salesexec_api_requests_total")
	assert.Contains(t, string(raw), `route="/api/keep-alive"`)
}

func TestRutaInexistente404(t *testing.T) {
	resp, body := doJSON(t, defaultEnv(t).app, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}
