package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP. Error solo se llena con APP_DEBUG.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Money redondea a 2 decimales para la salida JSON.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// NullMoney como Money pero conserva el nulo.
func NullMoney(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := Money(d.Decimal)
	return &v
}
