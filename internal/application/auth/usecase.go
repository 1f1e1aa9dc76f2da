package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
	"github.com/jhoicas/SalesExec-api/internal/domain/entity"
	"github.com/jhoicas/SalesExec-api/internal/domain/repository"
	"github.com/jhoicas/SalesExec-api/pkg/jwt"
)

const minPasswordLength = 6

// ForgotPasswordMessage respuesta fija de recuperación; el flujo por email no existe todavía.
const ForgotPasswordMessage = "Password reset email sent successfully. (Demo mode - feature coming soon)"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, recuperación y verificación.
type AuthUseCase struct {
	executives repository.ExecutiveRepository
	accounts   repository.AccountRepository
	hasher     *PasswordHasher
	jwtCfg     JWTConfig
	now        func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	executives repository.ExecutiveRepository,
	accounts repository.AccountRepository,
	hasher *PasswordHasher,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		executives: executives,
		accounts:   accounts,
		hasher:     hasher,
		jwtCfg:     jwtCfg,
		now:        time.Now,
	}
}

// Register crea la cuenta de un ejecutivo del directorio.
// Solo el rol BUSINESS_DEVELOPMENT_EXECUTIVE puede registrarse; una segunda alta devuelve ErrConflict.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" || in.Password == "" {
		return nil, domain.Invalid("All fields are required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.Invalid("Password must be at least 6 characters")
	}

	exec, err := uc.executives.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !exec.CanSelfRegister() {
		return nil, domain.ErrNotAuthorized
	}

	existing, err := uc.accounts.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	account := &entity.Account{
		EmployeeID:   employeeID,
		PasswordHash: hash,
		FullName:     exec.Name,
		Email:        exec.Email,
		Role:         exec.Role,
		Status:       entity.AccountActive,
		CreatedAt:    now,
		LastLogin:    &now,
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return uc.issue(account)
}

// Login verifica credenciales. Cuenta inexistente, dada de baja o contraseña incorrecta
// devuelven el mismo ErrUnauthenticated.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" || in.Password == "" {
		return nil, domain.Invalid("Employee ID and password are required")
	}

	account, err := uc.accounts.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Deleted || !uc.hasher.Verify(in.Password, account.PasswordHash) {
		return nil, domain.ErrUnauthenticated
	}
	if !account.IsActive() {
		return nil, domain.ErrForbidden
	}

	now := uc.now()
	if err := uc.accounts.TouchLastLogin(ctx, employeeID, now); err != nil {
		return nil, err
	}
	account.LastLogin = &now
	return uc.issue(account)
}

// ForgotPassword valida la entrada y responde siempre con el mensaje fijo, sin tocar la base.
func (uc *AuthUseCase) ForgotPassword(_ context.Context, in dto.ForgotPasswordRequest) (string, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return "", domain.Invalid("Employee ID is required")
	}
	return ForgotPasswordMessage, nil
}

// Verify devuelve el perfil de la cuenta dueña de un token ya validado.
func (uc *AuthUseCase) Verify(ctx context.Context, employeeID string) (*dto.ProfileResponse, error) {
	account, err := uc.accounts.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Deleted {
		return nil, domain.ErrUnauthenticated
	}
	if !account.IsActive() {
		return nil, domain.ErrForbidden
	}
	p := toProfile(account)
	return &p, nil
}

func (uc *AuthUseCase) issue(a *entity.Account) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, a.EmployeeID, a.FullName, a.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: toProfile(a)}, nil
}

func toProfile(a *entity.Account) dto.ProfileResponse {
	return dto.ProfileResponse{
		EmployeeID: a.EmployeeID,
		FullName:   a.FullName,
		Email:      a.Email,
		Role:       a.Role,
		Status:     a.Status,
		LastLogin:  a.LastLogin,
	}
}
