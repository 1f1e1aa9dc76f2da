package entity

import "github.com/shopspring/decimal"

// RoleBusinessDevelopmentExecutive es el único rol del directorio que puede auto-registrarse.
const RoleBusinessDevelopmentExecutive = "BUSINESS_DEVELOPMENT_EXECUTIVE"

// Executive representa una fila del directorio de empleados (tabla executive, solo lectura).
type Executive struct {
	EmployeeID  string
	Name        string
	Email       string
	Role        string
	Cluster     string
	VariablePay decimal.Decimal // mensual
}

// CanSelfRegister indica si el rol del directorio permite crear cuenta.
func (e *Executive) CanSelfRegister() bool {
	return e != nil && e.Role == RoleBusinessDevelopmentExecutive
}
