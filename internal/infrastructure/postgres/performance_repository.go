package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/incentive"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

var _ repository.PerformanceRepository = (*PerformanceRepo)(nil)

// PerformanceRepo consultas de solo lectura sobre day_* y week_*.
type PerformanceRepo struct {
	db *DB
}

// NewPerformanceRepository construye el adaptador del warehouse de targets.
func NewPerformanceRepository(db *DB) *PerformanceRepo {
	return &PerformanceRepo{db: db}
}

// periodTable devuelve la tabla, la columna de periodo y el valor a comparar.
func periodTable(p incentive.Period, daily, weekly string) (table, column string, key any) {
	if p.Kind == incentive.Weekly {
		return weekly, "yearweek", p.YearWeek
	}
	return daily, "date", p.Date
}

// SlabTargets lee las filas de slab del periodo.
func (r *PerformanceRepo) SlabTargets(ctx context.Context, employeeID string, p incentive.Period) ([]entity.SlabTarget, error) {
	table, column, key := periodTable(p, "day_targets", "week_targets")
	query := fmt.Sprintf(`
		SELECT metric, COALESCE(unit, ''), slab_segment, target, incentive_percent, contribution
		FROM %s
		WHERE employee_id = $1 AND %s = $2
		ORDER BY metric, slab_segment`, table, column)

	var list []entity.SlabTarget
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, employeeID, key)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var s entity.SlabTarget
			if err := rows.Scan(&s.Metric, &s.Unit, &s.SlabSegment, &s.Target, &s.IncentivePercent, &s.Contribution); err != nil {
				return fmt.Errorf("scan slab target: %w", err)
			}
			list = append(list, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return list, nil
}

// Achievements lee el logro por métrica. Si hubiera filas repetidas gana la mayor.
func (r *PerformanceRepo) Achievements(ctx context.Context, employeeID string, p incentive.Period) (map[string]decimal.Decimal, error) {
	table, column, key := periodTable(p, "day_achievement", "week_achievement")
	query := fmt.Sprintf(`
		SELECT metric, MAX(achievement)
		FROM %s
		WHERE employee_id = $1 AND %s = $2
		GROUP BY metric`, table, column)

	out := make(map[string]decimal.Decimal)
	err := r.db.WithConn(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, employeeID, key)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var metric string
			var v decimal.NullDecimal
			if err := rows.Scan(&metric, &v); err != nil {
				return fmt.Errorf("scan achievement: %w", err)
			}
			if v.Valid {
				out[metric] = v.Decimal
			}
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return out, nil
}
