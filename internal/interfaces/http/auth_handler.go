package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
)

// AuthHandler maneja registro, login, recuperación y verificación.
type AuthHandler struct {
	uc AuthService
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc AuthService) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar ejecutivo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "employee_id, password"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest("All fields are required")
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Signup successful!",
		"token":   out.Token,
		"user":    out.User,
	})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "employee_id, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest("Employee ID and password are required")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful!",
		"token":   out.Token,
		"user":    out.User,
	})
}

// ForgotPassword godoc
// @Summary      Recuperar contraseña (sin envío real)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "employee_id"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest("Employee ID is required")
	}
	msg, err := h.uc.ForgotPassword(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": msg})
}

// Verify godoc
// @Summary      Verificar token y devolver el perfil
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.ProfileResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	profile, err := h.uc.Verify(c.UserContext(), GetEmployeeID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "user": profile})
}
