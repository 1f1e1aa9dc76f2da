package entity

import "github.com/shopspring/decimal"

// Segmentos de slab en las tablas de targets.
const (
	Slab1 = "slab1"
	Slab2 = "slab2"
	Slab3 = "slab3"
)

// SlabTarget es una fila de day_targets / week_targets.
// Hay una fila por segmento para cada (empleado, periodo, métrica).
type SlabTarget struct {
	Metric           string
	Unit             string
	SlabSegment      string
	Target           decimal.NullDecimal
	IncentivePercent decimal.NullDecimal
	Contribution     decimal.NullDecimal
}

// MetricPerformance agrupa los slabs y el logro de una métrica en un periodo.
type MetricPerformance struct {
	Metric      string
	Unit        string
	Slabs       []SlabTarget
	Achievement decimal.NullDecimal // nulo si no hay fila en *_achievement
}

// EmployeePerformance es la entrada completa del calculador para un empleado y periodo.
type EmployeePerformance struct {
	EmployeeID  string
	VariablePay decimal.NullDecimal // mensual; nulo si el empleado no está en el directorio
	Metrics     []MetricPerformance
}
