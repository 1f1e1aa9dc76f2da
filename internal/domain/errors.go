package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado en un único punto (respondError).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotAuthorized   = errors.New("employee ID not found or not authorized")
	ErrForbidden       = errors.New("access denied")
	ErrConflict        = errors.New("user already registered")
	ErrUnauthenticated = errors.New("invalid employee ID or password")
	ErrUnavailable     = errors.New("database unavailable")
)

// ValidationError acompaña a ErrInvalidInput con un mensaje legible para el cliente.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}
