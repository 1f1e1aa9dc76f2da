package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.ExecutiveRepository = (*ExecutiveRepo)(nil)

// ExecutiveRepo lectura del directorio de empleados sobre PostgreSQL.
type ExecutiveRepo struct {
	db *DB
}

// NewExecutiveRepository construye el adaptador del directorio.
func NewExecutiveRepository(db *DB) *ExecutiveRepo {
	return &ExecutiveRepo{db: db}
}

// GetByID obtiene un empleado por employee_id.
func (r *ExecutiveRepo) GetByID(ctx context.Context, employeeID string) (*entity.Executive, error) {
	const query = `
		SELECT employee_id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(role, ''),
		       COALESCE(cluster, ''), variable_pay
		FROM executive WHERE employee_id = $1`
	var e entity.Executive
	var pay decimal.NullDecimal
	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, employeeID).Scan(&e.EmployeeID, &e.Name, &e.Email, &e.Role, &e.Cluster, &pay)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get executive: %w", err)
	}
	e.VariablePay = nullToZero(pay)
	return &e, nil
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
