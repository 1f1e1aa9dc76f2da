package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
	"github.com/jhoicas/SalesExec-api/internal/domain"
)

// mapError traduce un error a (status, code, message) en un único punto.
func mapError(err error) (int, string, string) {
	var verr *domain.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, "VALIDATION", verr.Message
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", "Invalid input"
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid employee ID or password"
	case errors.Is(err, domain.ErrNotAuthorized):
		return fiber.StatusForbidden, "NOT_AUTHORIZED", "Employee ID not found or not authorized to sign up"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "Access denied"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", "User already registered. Please login."
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "Resource not found"
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database connection failed"
	case errors.As(err, &ferr):
		return ferr.Code, fiberCode(ferr.Code), ferr.Message
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "Database error"
	}
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	}
	if status >= 500 {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}

// ErrorHandler es el fiber.ErrorHandler de la app: los handlers devuelven el error del caso de uso
// y aquí se escribe el sobre {success:false, code, message}. Con debug se añade la causa cruda.
func ErrorHandler(debug bool, log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code, msg := mapError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error en petición")
		}
		body := dto.ErrorResponse{Code: code, Message: msg}
		if debug {
			body.Error = err.Error()
		}
		return c.Status(status).JSON(body)
	}
}

// badRequest atajo para errores de parseo de entrada en los handlers.
func badRequest(msg string) error {
	return domain.Invalid(msg)
}
