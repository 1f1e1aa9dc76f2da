package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SalesExec-api/internal/domain"
)

const healthTimeout = 2 * time.Second

// HealthHandler health con base de datos y keep-alive sin ella.
type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

// NewHealthHandler construye el handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Health godoc
// @Summary      Estado de la API y de la base
// @Tags         health
// @Produce      json
// @Success      200
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Sales Executive App API is running with database!",
		"timestamp": h.now().Format(time.RFC3339),
	})
}

// KeepAlive GET /api/keep-alive
func (h *HealthHandler) KeepAlive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "alive",
		"timestamp": h.now().Format(time.RFC3339),
	})
}
