package dto

// AttentionCustomerDTO cliente con discrepancias en la métrica.
type AttentionCustomerDTO struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	Metric       string `json:"metric"`
}

// AttentionSKUDTO detalle de entrega de un SKU. Los kg nulos se emiten como null.
type AttentionSKUDTO struct {
	SKUID          string   `json:"skuId"`
	SKUName        string   `json:"skuName"`
	Metric         string   `json:"metric"`
	Date           *string  `json:"date"`
	OnTime         *bool    `json:"onTime"`
	OrderKg        *float64 `json:"orderKg"`
	BilledKg       *float64 `json:"billedKg"`
	SaleKg         *float64 `json:"saleKg"`
	ReturnKg       *float64 `json:"returnKg"`
	ReadjustmentKg *float64 `json:"readjustmentKg"`
	ShopReachTime  string   `json:"shopReachTime"`
}
