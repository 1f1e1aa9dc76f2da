package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
type AccountRepo struct {
	db *DB
}

// NewAccountRepository construye el adaptador de persistencia de cuentas.
func NewAccountRepository(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create persiste una cuenta nueva. Una carrera con otro registro del mismo employee_id
// termina en violación de PK y se reporta como domain.ErrConflict.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	const query = `
		INSERT INTO salesexec_login
			(employee_id, password_hash, full_name, email, role, status, created_at, last_login, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	err := r.db.WithConn(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, query,
			a.EmployeeID, a.PasswordHash, a.FullName, a.Email, a.Role, a.Status,
			a.CreatedAt, a.LastLogin, a.Deleted,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByEmployeeID obtiene la cuenta, incluidas las dadas de baja (el caso de uso decide).
func (r *AccountRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*entity.Account, error) {
	const query = `
		SELECT employee_id, password_hash, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(role, ''),
		       status, created_at, last_login, deleted
		FROM salesexec_login WHERE employee_id = $1`
	var a entity.Account
	err := r.db.WithConn(ctx, func(q Querier) error {
		return q.QueryRow(ctx, query, employeeID).Scan(
			&a.EmployeeID, &a.PasswordHash, &a.FullName, &a.Email, &a.Role,
			&a.Status, &a.CreatedAt, &a.LastLogin, &a.Deleted,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// TouchLastLogin actualiza last_login.
func (r *AccountRepo) TouchLastLogin(ctx context.Context, employeeID string, at time.Time) error {
	err := r.db.WithConn(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `UPDATE salesexec_login SET last_login = $2 WHERE employee_id = $1`, employeeID, at)
		return err
	})
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}
