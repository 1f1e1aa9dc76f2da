package entity

import "time"

// Estados válidos de Account.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// Account representa una cuenta registrada en salesexec_login.
// FullName, Email y Role son una copia del directorio en el momento del registro.
type Account struct {
	EmployeeID   string
	PasswordHash string // legacy sha256 o bcrypt, nunca la contraseña plana
	FullName     string
	Email        string
	Role         string
	Status       string
	CreatedAt    time.Time
	LastLogin    *time.Time
	Deleted      bool
}

// IsActive true si la cuenta no está dada de baja ni inactiva.
func (a *Account) IsActive() bool {
	return a != nil && !a.Deleted && a.Status == AccountActive
}
