package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/incentive"
)

// PerformanceRepository lecturas del warehouse de targets y logros.
// Period.Kind elige entre day_* (por fecha) y week_* (por year-week).
type PerformanceRepository interface {
	// SlabTargets devuelve las filas de slab del empleado en el periodo, ordenadas por métrica y segmento.
	SlabTargets(ctx context.Context, employeeID string, p incentive.Period) ([]entity.SlabTarget, error)

	// Achievements devuelve el logro por métrica. Métricas sin fila no aparecen en el mapa.
	Achievements(ctx context.Context, employeeID string, p incentive.Period) (map[string]decimal.Decimal, error)
}
