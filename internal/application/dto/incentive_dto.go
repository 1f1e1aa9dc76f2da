package dto

// IncentiveSummaryDTO totales de incentivo del periodo (montos en moneda).
// Los slabN_target son la suma, sobre todas las métricas, del pago de cada tramo.
type IncentiveSummaryDTO struct {
	PeriodKey       string  `json:"period_key"`
	MaxTarget       float64 `json:"max_target"`
	AchievedAmount  float64 `json:"achieved_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	Slab1Target     float64 `json:"slab1_target"`
	Slab2Target     float64 `json:"slab2_target"`
	Slab3Target     float64 `json:"slab3_target"`
}

// MetricTargetDTO desglose por métrica. target/achieved/slabN_target están en unidades de la métrica.
type MetricTargetDTO struct {
	Metric           string  `json:"metric"`
	Unit             string  `json:"unit"`
	Target           float64 `json:"target"`
	Achieved         float64 `json:"achieved"`
	Slab1Target      float64 `json:"slab1_target"`
	Slab2Target      float64 `json:"slab2_target"`
	Slab3Target      float64 `json:"slab3_target"`
	EarnedAmount     float64 `json:"earned_amount"`
	MaxVariablePay   float64 `json:"max_variable_pay"`
	IncentivePending float64 `json:"incentive_pending"`
}

// TargetsDTO desglose por métrica de un periodo.
type TargetsDTO struct {
	PeriodKey string            `json:"period_key"`
	Targets   []MetricTargetDTO `json:"targets"`
}
