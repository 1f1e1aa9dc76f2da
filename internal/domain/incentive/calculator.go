// Package incentive calcula el incentivo por slabs de un ejecutivo de ventas.
//
// Es una función pura: recibe las filas de targets/logros ya leídas del warehouse y
// devuelve montos. No hace I/O ni depende del reloj.
package incentive

import (
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// segments fija el orden de evaluación de los tramos.
var segments = [...]string{entity.Slab1, entity.Slab2, entity.Slab3}

// Slab es un tramo resuelto: umbral en unidades de la métrica y pago acumulado al alcanzarlo.
type Slab struct {
	Segment string
	Target  decimal.Decimal
	Payout  decimal.Decimal
	Present bool
}

// MetricResult resultado del cálculo para una métrica.
type MetricResult struct {
	Metric         string
	Unit           string
	Achieved       decimal.Decimal
	Slabs          [3]Slab
	MaxVariablePay decimal.Decimal
	Earned         decimal.Decimal
	Pending        decimal.Decimal
}

// Target devuelve el mayor umbral de la métrica (el slab3 cuando existe).
func (r MetricResult) Target() decimal.Decimal {
	top := decimal.Zero
	for _, s := range r.Slabs {
		if s.Present && s.Target.GreaterThan(top) {
			top = s.Target
		}
	}
	return top
}

// Summary totales por empleado y periodo.
type Summary struct {
	MaxVariablePay decimal.Decimal
	Earned         decimal.Decimal
	Pending        decimal.Decimal
	SlabPayouts    [3]decimal.Decimal // suma por tramo de todas las métricas
	Metrics        []MetricResult
}

// Evaluate calcula el incentivo de todas las métricas de perf para el periodo kind.
// Un empleado sin variable pay en el directorio obtiene pagos en cero pero conserva umbrales y logros.
func Evaluate(perf entity.EmployeePerformance, kind Kind) Summary {
	base := decimal.Zero
	if perf.VariablePay.Valid {
		base = Prorate(perf.VariablePay.Decimal, kind)
	}

	sum := Summary{Metrics: make([]MetricResult, 0, len(perf.Metrics))}
	for _, m := range perf.Metrics {
		r := EvaluateMetric(base, m)
		sum.Metrics = append(sum.Metrics, r)
		sum.MaxVariablePay = sum.MaxVariablePay.Add(r.MaxVariablePay)
		sum.Earned = sum.Earned.Add(r.Earned)
		sum.Pending = sum.Pending.Add(r.Pending)
		for i, s := range r.Slabs {
			sum.SlabPayouts[i] = sum.SlabPayouts[i].Add(s.Payout)
		}
	}
	return sum
}

// EvaluateMetric calcula una métrica a partir del variable pay ya prorrateado.
//
//	variable_pay = base × contribution
//	payout(slabN) = variable_pay × incentive_percent(slabN)
//	max_variable_pay = payout del último tramo con umbral positivo
//	pending = max_variable_pay - earned, nunca negativo
//
// Un tramo con umbral cero o nulo no paga ni cuenta como tope.
func EvaluateMetric(base decimal.Decimal, m entity.MetricPerformance) MetricResult {
	res := MetricResult{
		Metric:   m.Metric,
		Unit:     m.Unit,
		Achieved: nullToZero(m.Achievement),
	}
	if len(m.Slabs) == 0 {
		return res
	}

	variablePay := base.Mul(contribution(m.Slabs))
	res.Slabs = resolveSlabs(m.Slabs, variablePay)

	tiers := make([]Slab, 0, len(res.Slabs))
	for _, s := range res.Slabs {
		if s.Present && s.Target.IsPositive() {
			tiers = append(tiers, s)
		}
	}
	if len(tiers) == 0 {
		return res
	}

	res.MaxVariablePay = tiers[len(tiers)-1].Payout
	res.Earned = Earned(res.Achieved, tiers)
	res.Pending = res.MaxVariablePay.Sub(res.Earned)
	if res.Pending.IsNegative() {
		res.Pending = decimal.Zero
	}
	return res
}

// Earned interpola linealmente dentro del primer tramo cuyo umbral cubre el logro:
//
//	a ≤ t1        → (a / t1) × p1
//	t1 < a ≤ t2   → (a / t2) × p2
//	t2 < a ≤ t3   → (a / t3) × p3
//	a > t3        → p3
//
// tiers debe venir en orden de segmento. Un umbral cero o negativo da ratio 0.
func Earned(achievement decimal.Decimal, tiers []Slab) decimal.Decimal {
	if len(tiers) == 0 {
		return decimal.Zero
	}
	for _, t := range tiers {
		if achievement.LessThanOrEqual(t.Target) {
			return ratio(achievement, t.Target).Mul(t.Payout)
		}
	}
	return tiers[len(tiers)-1].Payout
}

// resolveSlabs toma, por segmento, el mayor target y el mayor incentive_percent (equivale al MAX(CASE ...) del warehouse).
func resolveSlabs(rows []entity.SlabTarget, variablePay decimal.Decimal) [3]Slab {
	var out [3]Slab
	for i, seg := range segments {
		out[i].Segment = seg
		var pct decimal.Decimal
		for _, row := range rows {
			if row.SlabSegment != seg {
				continue
			}
			t := nullToZero(row.Target)
			p := nullToZero(row.IncentivePercent)
			if !out[i].Present || t.GreaterThan(out[i].Target) {
				out[i].Target = t
			}
			if !out[i].Present || p.GreaterThan(pct) {
				pct = p
			}
			out[i].Present = true
		}
		if out[i].Present && out[i].Target.IsPositive() {
			out[i].Payout = variablePay.Mul(pct)
		}
	}
	return out
}

// contribution usa el mayor peso informado en las filas de la métrica.
func contribution(rows []entity.SlabTarget) decimal.Decimal {
	c := decimal.Zero
	for _, row := range rows {
		if row.Contribution.Valid && row.Contribution.Decimal.GreaterThan(c) {
			c = row.Contribution.Decimal
		}
	}
	return c
}

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
