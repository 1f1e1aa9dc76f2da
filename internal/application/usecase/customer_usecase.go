package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
)

const (
	unknownCustomer  = "Unknown"
	missingPhone     = "N/A"
	targetPageSource = "target-page"

	periodDaily  = "daily"
	periodWeekly = "weekly"
)

// CustomerUseCase listas de clientes de la home, de la página de targets y del registro completo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// NudgeZone clientes a reactivar.
func (uc *CustomerUseCase) NudgeZone(ctx context.Context, employeeID string) ([]dto.NudgeCustomerDTO, error) {
	list, err := uc.repo.NudgeZone(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NudgeCustomerDTO, 0, len(list))
	for _, c := range list {
		lastOrder := "No orders yet"
		if c.LastOrderDays != nil && *c.LastOrderDays != 0 {
			lastOrder = fmt.Sprintf("%d days ago", *c.LastOrderDays)
		}
		out = append(out, dto.NudgeCustomerDTO{
			CustomerID:   c.CustomerID,
			CustomerName: orDefault(c.Name, unknownCustomer),
			PhoneNumber:  orDefault(c.ContactNumber, missingPhone),
			LastOrder:    lastOrder,
		})
	}
	return out, nil
}

// SoClose clientes que abrieron la app sin comprar.
func (uc *CustomerUseCase) SoClose(ctx context.Context, employeeID string) ([]dto.SoCloseCustomerDTO, error) {
	list, err := uc.repo.SoClose(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SoCloseCustomerDTO, 0, len(list))
	for _, c := range list {
		lastSeen := "Recently"
		if c.LastOpenedHours != nil && *c.LastOpenedHours != 0 {
			lastSeen = fmt.Sprintf("%d hours ago", int64(*c.LastOpenedHours))
		}
		out = append(out, dto.SoCloseCustomerDTO{
			CustomerID:   c.CustomerID,
			CustomerName: orDefault(c.Name, unknownCustomer),
			PhoneNumber:  orDefault(c.ContactNumber, missingPhone),
			LastSeen:     lastSeen,
		})
	}
	return out, nil
}

// TargetCustomers clientes de la página de targets con los SKUs a ofrecer, sin repetir cliente ni SKU.
// period: daily (defecto) o weekly; metric vacío = todas.
func (uc *CustomerUseCase) TargetCustomers(ctx context.Context, employeeID, metric, period string) (*dto.TargetCustomersResponse, error) {
	metric = strings.TrimSpace(metric)
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = periodDaily
	}
	var layer string
	switch period {
	case periodDaily:
		layer = entity.SegmentDay
	case periodWeekly:
		layer = entity.SegmentWeek
	default:
		return nil, domain.Invalid("Invalid period. Use 'daily' or 'weekly'")
	}

	rows, err := uc.repo.TargetPage(ctx, employeeID, layer, metric)
	if err != nil {
		return nil, err
	}

	customers := make([]dto.TargetCustomerDTO, 0)
	index := make(map[string]int)
	seenSKU := make(map[string]map[string]bool)
	for _, r := range rows {
		i, ok := index[r.CustomerID]
		if !ok {
			i = len(customers)
			index[r.CustomerID] = i
			seenSKU[r.CustomerID] = make(map[string]bool)
			customers = append(customers, dto.TargetCustomerDTO{
				CustomerID:   r.CustomerID,
				CustomerName: orDefault(r.Name, unknownCustomer),
				PhoneNumber:  orDefault(r.ContactNumber, missingPhone),
				Source:       targetPageSource,
				SKUsToPitch:  []dto.SKUPitchDTO{},
			})
		}
		if r.SKUID == "" || r.SKUName == "" || seenSKU[r.CustomerID][r.SKUID] {
			continue
		}
		seenSKU[r.CustomerID][r.SKUID] = true
		customers[i].SKUsToPitch = append(customers[i].SKUsToPitch, dto.SKUPitchDTO{
			ID:       r.SKUID,
			Name:     r.SKUName,
			Category: "Product",
			Image:    "📦",
		})
	}
	return &dto.TargetCustomersResponse{Customers: customers, Metric: metric, Period: period}, nil
}

// Base registro completo de clientes con filtros opcionales.
func (uc *CustomerUseCase) Base(ctx context.Context, employeeID, customerID, contact string) ([]dto.BaseCustomerDTO, error) {
	list, err := uc.repo.Base(ctx, employeeID, entity.BaseCustomerFilter{
		CustomerID: strings.TrimSpace(customerID),
		Contact:    strings.TrimSpace(contact),
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.BaseCustomerDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.BaseCustomerDTO{
			CustomerID:          c.CustomerID,
			CustomerName:        c.Name,
			PhoneNumber:         c.ContactNumber,
			CustomerType:        c.CustomerType,
			CustomerNature:      c.CustomerNature,
			Cluster:             c.Cluster,
			LastOrderDate:       formatDate(c.LastOrderDate),
			Locality:            c.Locality,
			Facility:            c.Facility,
			SubscriptionEndDate: formatDate(c.SubscriptionEndDate),
			SubscriptionAmount:  dto.NullMoney(c.SubscriptionAmount),
		})
	}
	return out, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
