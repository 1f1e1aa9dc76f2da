package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Las tablas de clientes del warehouse comparten customer_id, customername y contactnumber.
// contactnumber llega como número o texto según la fuente; se normaliza a string en el repositorio.

// NudgeCustomer cliente inactivo de sa_home_target_customers.
type NudgeCustomer struct {
	CustomerID    string
	Name          string
	ContactNumber string
	LastOrderDays *int64
}

// FunnelCustomer cliente del funnel de la app (sa_home_app_funnel_customers).
type FunnelCustomer struct {
	CustomerID      string
	Name            string
	ContactNumber   string
	LastOpenedHours *float64
}

// TargetPageCustomer fila de sa_customer_page_customers: un cliente y un SKU a ofrecer.
type TargetPageCustomer struct {
	CustomerID    string
	Name          string
	ContactNumber string
	SKUID         string
	SKUName       string
}

// AttentionRow fila de sa_attention_customers con el detalle de entrega por SKU.
type AttentionRow struct {
	CustomerID     string
	Name           string
	ContactNumber  string
	Metric         string
	SKUID          string
	SKUName        string
	Date           *time.Time
	OnTime         *bool
	OrderKg        decimal.NullDecimal
	BilledKg       decimal.NullDecimal
	SaleKg         decimal.NullDecimal
	ReturnKg       decimal.NullDecimal
	ReadjustmentKg decimal.NullDecimal
	ShopReachTime  string
}

// BaseCustomer fila del registro completo de clientes (sa_base_customers).
type BaseCustomer struct {
	CustomerID          string
	Name                string
	ContactNumber       string
	CustomerType        string
	CustomerNature      string
	Cluster             string
	LastOrderDate       *time.Time
	Locality            string
	Facility            string
	SubscriptionEndDate *time.Time
	SubscriptionAmount  decimal.NullDecimal
}

// BaseCustomerFilter filtros opcionales del registro de clientes.
type BaseCustomerFilter struct {
	CustomerID string
	Contact    string // coincidencia parcial
}
