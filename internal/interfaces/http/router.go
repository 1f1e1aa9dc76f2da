package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         AuthService
	IncentiveUC    IncentiveService
	LeaderboardUC  LeaderboardService
	CustomerUC     CustomerService
	AttentionUC    AttentionService
	NotificationUC NotificationService
	EventUC        EventService
	DB             Pinger
	Metrics        *Metrics // nil = sin /metrics
	JWTSecret      string
	AuthRateLimit  string // formato ulule/limiter; vacío = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) error {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	health := NewHealthHandler(deps.DB)
	api.Get("/health", health.Health)
	api.Get("/keep-alive", health.KeepAlive)

	requireAuth := AuthMiddleware(deps.JWTSecret)
	self := RequireSelf("employee_id")
	// Solo los ejecutivos de desarrollo de negocio tienen cuenta; otro rol en el token no ve reportes.
	executiveOnly := RequireRole(entity.RoleBusinessDevelopmentExecutive)

	// Auth (público, con rate limit)
	authGroup := api.Group("/auth")
	if deps.AuthRateLimit != "" {
		limit, err := RateLimit(deps.AuthRateLimit)
		if err != nil {
			return fmt.Errorf("rate limit %q: %w", deps.AuthRateLimit, err)
		}
		authGroup.Use(limit)
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Get("/verify", requireAuth, authHandler.Verify)

	// Incentivos y targets (token + rol + mismo empleado)
	incentiveHandler := NewIncentiveHandler(deps.IncentiveUC)
	api.Get("/incentives/daily/:employee_id", requireAuth, executiveOnly, self, incentiveHandler.DailyIncentives)
	api.Get("/incentives/weekly/:employee_id", requireAuth, executiveOnly, self, incentiveHandler.WeeklyIncentives)
	api.Get("/targets/daily/:employee_id", requireAuth, executiveOnly, self, incentiveHandler.DailyTargets)
	api.Get("/targets/weekly/:employee_id", requireAuth, executiveOnly, self, incentiveHandler.WeeklyTargets)

	leaderboardHandler := NewLeaderboardHandler(deps.LeaderboardUC)
	api.Get("/leaderboard/:employee_id", requireAuth, executiveOnly, self, leaderboardHandler.Get)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	api.Get("/customers/nudge-zone/:employee_id", requireAuth, executiveOnly, self, customerHandler.NudgeZone)
	api.Get("/customers/so-close/:employee_id", requireAuth, executiveOnly, self, customerHandler.SoClose)
	api.Get("/target-customers/:employee_id", requireAuth, executiveOnly, self, customerHandler.TargetCustomers)
	api.Get("/base/customers/:employee_id", requireAuth, executiveOnly, self, customerHandler.Base)

	attentionHandler := NewAttentionHandler(deps.AttentionUC)
	api.Get("/attention/metrics/:employee_id", requireAuth, executiveOnly, self, attentionHandler.Metrics)
	api.Get("/attention/customers/:employee_id", requireAuth, executiveOnly, self, attentionHandler.Customers)
	api.Get("/attention/sku-details/:employee_id/:customer_id", requireAuth, executiveOnly, self, attentionHandler.SKUDetails)

	// Globales (token + rol)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	api.Get("/notifications", requireAuth, executiveOnly, notificationHandler.List)

	eventHandler := NewEventHandler(deps.EventUC)
	api.Post("/events/log", requireAuth, executiveOnly, eventHandler.Log)

	return nil
}
