package dto

// NudgeCustomerDTO cliente de la zona de empuje.
type NudgeCustomerDTO struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	LastOrder    string `json:"lastOrder"`
}

// SoCloseCustomerDTO cliente del funnel de la app.
type SoCloseCustomerDTO struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	LastSeen     string `json:"lastSeen"`
}

// SKUPitchDTO SKU sugerido para ofrecer al cliente.
type SKUPitchDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

// TargetCustomerDTO cliente de la página de targets con sus SKUs (sin duplicados).
type TargetCustomerDTO struct {
	CustomerID   string        `json:"customerId"`
	CustomerName string        `json:"customerName"`
	PhoneNumber  string        `json:"phoneNumber"`
	Source       string        `json:"source"`
	SKUsToPitch  []SKUPitchDTO `json:"skusToPitch"`
}

// TargetCustomersResponse payload de /target-customers.
type TargetCustomersResponse struct {
	Customers []TargetCustomerDTO `json:"customers"`
	Metric    string              `json:"metric"`
	Period    string              `json:"period"`
}

// BaseCustomerDTO fila del registro de clientes. Fechas en YYYY-MM-DD.
type BaseCustomerDTO struct {
	CustomerID          string   `json:"customerId"`
	CustomerName        string   `json:"customerName"`
	PhoneNumber         string   `json:"phoneNumber"`
	CustomerType        string   `json:"customerType"`
	CustomerNature      string   `json:"customerNature"`
	Cluster             string   `json:"cluster"`
	LastOrderDate       *string  `json:"lastOrderDate"`
	Locality            string   `json:"locality"`
	Facility            string   `json:"facility"`
	SubscriptionEndDate *string  `json:"subscriptionEndDate"`
	SubscriptionAmount  *float64 `json:"subscriptionAmount"`
}
