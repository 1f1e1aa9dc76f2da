package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

const allMetrics = "All"

// AttentionUseCase pestaña de atención: clientes con discrepancias de entrega por métrica.
type AttentionUseCase struct {
	repo repository.AttentionRepository
}

// NewAttentionUseCase construye el caso de uso.
func NewAttentionUseCase(repo repository.AttentionRepository) *AttentionUseCase {
	return &AttentionUseCase{repo: repo}
}

// Metrics métricas distintas del ejecutivo, ordenadas.
func (uc *AttentionUseCase) Metrics(ctx context.Context, employeeID string) ([]string, error) {
	list, err := uc.repo.Metrics(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Customers clientes distintos de la métrica ("All" o vacío = todas).
func (uc *AttentionUseCase) Customers(ctx context.Context, employeeID, metric string) ([]dto.AttentionCustomerDTO, error) {
	rows, err := uc.repo.Customers(ctx, employeeID, metricFilter(metric))
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttentionCustomerDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AttentionCustomerDTO{
			CustomerID:   r.CustomerID,
			CustomerName: orDefault(r.Name, unknownCustomer),
			PhoneNumber:  orDefault(r.ContactNumber, missingPhone),
			Metric:       r.Metric,
		})
	}
	return out, nil
}

// SKUDetails detalle de entrega por SKU de un cliente.
func (uc *AttentionUseCase) SKUDetails(ctx context.Context, employeeID, customerID, metric string) ([]dto.AttentionSKUDTO, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, domain.Invalid("Customer ID is required")
	}
	rows, err := uc.repo.SKUDetails(ctx, employeeID, customerID, metricFilter(metric))
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttentionSKUDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AttentionSKUDTO{
			SKUID:          r.SKUID,
			SKUName:        r.SKUName,
			Metric:         r.Metric,
			Date:           formatDate(r.Date),
			OnTime:         r.OnTime,
			OrderKg:        dto.NullMoney(r.OrderKg),
			BilledKg:       dto.NullMoney(r.BilledKg),
			SaleKg:         dto.NullMoney(r.SaleKg),
			ReturnKg:       dto.NullMoney(r.ReturnKg),
			ReadjustmentKg: dto.NullMoney(r.ReadjustmentKg),
			ShopReachTime:  r.ShopReachTime,
		})
	}
	return out, nil
}

func metricFilter(metric string) string {
	metric = strings.TrimSpace(metric)
	if strings.EqualFold(metric, allMetrics) {
		return ""
	}
	return metric
}
