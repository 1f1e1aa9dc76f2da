package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/incentive"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

// IncentiveUseCase resume incentivos y targets del día o de la semana de un ejecutivo.
//
// Las lecturas (directorio, slabs, logros) van en paralelo; el cálculo lo hace
// el paquete incentive sobre las filas ya leídas.
type IncentiveUseCase struct {
	executives  repository.ExecutiveRepository
	performance repository.PerformanceRepository
	loc         *time.Location
	now         func() time.Time
}

// NewIncentiveUseCase construye el caso de uso. loc es la zona de negocio que define "hoy".
func NewIncentiveUseCase(
	executives repository.ExecutiveRepository,
	performance repository.PerformanceRepository,
	loc *time.Location,
) *IncentiveUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &IncentiveUseCase{
		executives:  executives,
		performance: performance,
		loc:         loc,
		now:         time.Now,
	}
}

// DailySummary totales del día calendario actual.
func (uc *IncentiveUseCase) DailySummary(ctx context.Context, employeeID string) (*dto.IncentiveSummaryDTO, error) {
	return uc.summary(ctx, employeeID, incentive.Daily)
}

// WeeklySummary totales de la semana ISO de mañana.
func (uc *IncentiveUseCase) WeeklySummary(ctx context.Context, employeeID string) (*dto.IncentiveSummaryDTO, error) {
	return uc.summary(ctx, employeeID, incentive.Weekly)
}

// DailyTargets desglose por métrica del día.
func (uc *IncentiveUseCase) DailyTargets(ctx context.Context, employeeID string) (*dto.TargetsDTO, error) {
	return uc.targets(ctx, employeeID, incentive.Daily)
}

// WeeklyTargets desglose por métrica de la semana.
func (uc *IncentiveUseCase) WeeklyTargets(ctx context.Context, employeeID string) (*dto.TargetsDTO, error) {
	return uc.targets(ctx, employeeID, incentive.Weekly)
}

func (uc *IncentiveUseCase) summary(ctx context.Context, employeeID string, kind incentive.Kind) (*dto.IncentiveSummaryDTO, error) {
	period, sum, err := uc.evaluate(ctx, employeeID, kind)
	if err != nil {
		return nil, err
	}
	return &dto.IncentiveSummaryDTO{
		PeriodKey:       period.Key(),
		MaxTarget:       dto.Money(sum.MaxVariablePay),
		AchievedAmount:  dto.Money(sum.Earned),
		RemainingAmount: dto.Money(sum.Pending),
		Slab1Target:     dto.Money(sum.SlabPayouts[0]),
		Slab2Target:     dto.Money(sum.SlabPayouts[1]),
		Slab3Target:     dto.Money(sum.SlabPayouts[2]),
	}, nil
}

func (uc *IncentiveUseCase) targets(ctx context.Context, employeeID string, kind incentive.Kind) (*dto.TargetsDTO, error) {
	period, sum, err := uc.evaluate(ctx, employeeID, kind)
	if err != nil {
		return nil, err
	}
	out := &dto.TargetsDTO{PeriodKey: period.Key(), Targets: make([]dto.MetricTargetDTO, 0, len(sum.Metrics))}
	for _, m := range sum.Metrics {
		out.Targets = append(out.Targets, dto.MetricTargetDTO{
			Metric:           m.Metric,
			Unit:             m.Unit,
			Target:           dto.Money(m.Target()),
			Achieved:         dto.Money(m.Achieved),
			Slab1Target:      dto.Money(m.Slabs[0].Target),
			Slab2Target:      dto.Money(m.Slabs[1].Target),
			Slab3Target:      dto.Money(m.Slabs[2].Target),
			EarnedAmount:     dto.Money(m.Earned),
			MaxVariablePay:   dto.Money(m.MaxVariablePay),
			IncentivePending: dto.Money(m.Pending),
		})
	}
	return out, nil
}

// evaluate lee las tres fuentes en paralelo y ejecuta el calculador.
func (uc *IncentiveUseCase) evaluate(ctx context.Context, employeeID string, kind incentive.Kind) (incentive.Period, incentive.Summary, error) {
	now := uc.now().In(uc.loc)
	period := incentive.DailyPeriod(now)
	if kind == incentive.Weekly {
		period = incentive.WeeklyPeriod(now)
	}

	type execResult struct {
		exec *entity.Executive
		err  error
	}
	type slabsResult struct {
		rows []entity.SlabTarget
		err  error
	}
	type achResult struct {
		byMetric map[string]decimal.Decimal
		err      error
	}

	execCh := make(chan execResult, 1)
	slabsCh := make(chan slabsResult, 1)
	achCh := make(chan achResult, 1)

	go func() {
		e, err := uc.executives.GetByID(ctx, employeeID)
		execCh <- execResult{e, err}
	}()
	go func() {
		rows, err := uc.performance.SlabTargets(ctx, employeeID, period)
		slabsCh <- slabsResult{rows, err}
	}()
	go func() {
		m, err := uc.performance.Achievements(ctx, employeeID, period)
		achCh <- achResult{m, err}
	}()

	ex := <-execCh
	slabs := <-slabsCh
	ach := <-achCh

	if ex.err != nil {
		return period, incentive.Summary{}, fmt.Errorf("incentive %s: directorio: %w", kind, ex.err)
	}
	if slabs.err != nil {
		return period, incentive.Summary{}, fmt.Errorf("incentive %s: slabs: %w", kind, slabs.err)
	}
	if ach.err != nil {
		return period, incentive.Summary{}, fmt.Errorf("incentive %s: logros: %w", kind, ach.err)
	}

	perf := buildPerformance(employeeID, ex.exec, slabs.rows, ach.byMetric)
	return period, incentive.Evaluate(perf, kind), nil
}

// buildPerformance agrupa las filas de slab por métrica conservando el orden de llegada.
func buildPerformance(
	employeeID string,
	exec *entity.Executive,
	rows []entity.SlabTarget,
	achievements map[string]decimal.Decimal,
) entity.EmployeePerformance {
	perf := entity.EmployeePerformance{EmployeeID: employeeID}
	if exec != nil {
		perf.VariablePay = decimal.NewNullDecimal(exec.VariablePay)
	}

	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Metric]
		if !ok {
			i = len(perf.Metrics)
			index[row.Metric] = i
			m := entity.MetricPerformance{Metric: row.Metric, Unit: row.Unit}
			if a, found := achievements[row.Metric]; found {
				m.Achievement = decimal.NewNullDecimal(a)
			}
			perf.Metrics = append(perf.Metrics, m)
		}
		if perf.Metrics[i].Unit == "" {
			perf.Metrics[i].Unit = row.Unit
		}
		perf.Metrics[i].Slabs = append(perf.Metrics[i].Slabs, row)
	}
	return perf
}
