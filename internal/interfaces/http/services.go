package http

import (
	"context"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
)

// Contratos que los handlers necesitan de la capa de aplicación.
// Los implementan auth.AuthUseCase y los casos de uso de internal/application/usecase.

// AuthService registro, login y verificación de cuentas.
type AuthService interface {
	Register(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (string, error)
	Verify(ctx context.Context, employeeID string) (*dto.ProfileResponse, error)
}

// IncentiveService resúmenes y desgloses de incentivo.
type IncentiveService interface {
	DailySummary(ctx context.Context, employeeID string) (*dto.IncentiveSummaryDTO, error)
	WeeklySummary(ctx context.Context, employeeID string) (*dto.IncentiveSummaryDTO, error)
	DailyTargets(ctx context.Context, employeeID string) (*dto.TargetsDTO, error)
	WeeklyTargets(ctx context.Context, employeeID string) (*dto.TargetsDTO, error)
}

// LeaderboardService ranking.
type LeaderboardService interface {
	Get(ctx context.Context, employeeID, period, layer string) (*dto.LeaderboardResponse, error)
}

// CustomerService listas de clientes.
type CustomerService interface {
	NudgeZone(ctx context.Context, employeeID string) ([]dto.NudgeCustomerDTO, error)
	SoClose(ctx context.Context, employeeID string) ([]dto.SoCloseCustomerDTO, error)
	TargetCustomers(ctx context.Context, employeeID, metric, period string) (*dto.TargetCustomersResponse, error)
	Base(ctx context.Context, employeeID, customerID, contact string) ([]dto.BaseCustomerDTO, error)
}

// AttentionService pestaña de atención.
type AttentionService interface {
	Metrics(ctx context.Context, employeeID string) ([]string, error)
	Customers(ctx context.Context, employeeID, metric string) ([]dto.AttentionCustomerDTO, error)
	SKUDetails(ctx context.Context, employeeID, customerID, metric string) ([]dto.AttentionSKUDTO, error)
}

// NotificationService feed de notificaciones.
type NotificationService interface {
	Latest(ctx context.Context) (*dto.NotificationsResponse, error)
}

// EventService log de eventos.
type EventService interface {
	Log(ctx context.Context, subject string, in dto.LogEventRequest) (*dto.EventDTO, error)
}

// Pinger verifica la conexión a la base.
type Pinger interface {
	Ping(ctx context.Context) error
}
