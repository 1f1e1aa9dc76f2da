package repository

import (
	"context"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// ExecutiveRepository puerto de lectura del directorio de empleados.
type ExecutiveRepository interface {
	// GetByID devuelve nil, nil si el empleado no existe.
	GetByID(ctx context.Context, employeeID string) (*entity.Executive, error)
}
