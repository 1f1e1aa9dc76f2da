package repository

import (
	"context"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia de cuentas (salesexec_login).
type AccountRepository interface {
	// GetByEmployeeID devuelve nil, nil si no hay cuenta.
	GetByEmployeeID(ctx context.Context, employeeID string) (*entity.Account, error)
	// Create inserta la cuenta; domain.ErrConflict si ya existe.
	Create(ctx context.Context, account *entity.Account) error
	TouchLastLogin(ctx context.Context, employeeID string, at time.Time) error
}
