package dto

import "time"

// SignupRequest entrada de registro. La contraseña llega en texto y se hashea en el use case.
type SignupRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// ForgotPasswordRequest entrada de recuperación de contraseña.
type ForgotPasswordRequest struct {
	EmployeeID string `json:"employee_id"`
}

// ProfileResponse datos públicos de la cuenta (sin hash).
type ProfileResponse struct {
	EmployeeID string     `json:"employee_id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// AuthResponse token JWT más el perfil.
type AuthResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}
