package repository

import (
	"context"

	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
)

// CustomerRepository define las listas de clientes asignados a un ejecutivo.
// Todas las consultas filtran por employee_id y ordenan por customer_id.
type CustomerRepository interface {
	NudgeZone(ctx context.Context, employeeID string) ([]entity.NudgeCustomer, error)
	SoClose(ctx context.Context, employeeID string) ([]entity.FunnelCustomer, error)
	// TargetPage filtra por layer (day|week) y, si metric no está vacío, por métrica.
	TargetPage(ctx context.Context, employeeID, layer, metric string) ([]entity.TargetPageCustomer, error)
	Base(ctx context.Context, employeeID string, f entity.BaseCustomerFilter) ([]entity.BaseCustomer, error)
}

// AttentionRepository lecturas de la pestaña de atención (sa_attention_customers).
type AttentionRepository interface {
	Metrics(ctx context.Context, employeeID string) ([]string, error)
	// Customers con metric vacío devuelve los clientes de todas las métricas.
	Customers(ctx context.Context, employeeID, metric string) ([]entity.AttentionRow, error)
	SKUDetails(ctx context.Context, employeeID, customerID, metric string) ([]entity.AttentionRow, error)
}
