package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
)

// IncentiveHandler incentivos y targets por periodo.
type IncentiveHandler struct {
	uc IncentiveService
}

// NewIncentiveHandler construye el handler.
func NewIncentiveHandler(uc IncentiveService) *IncentiveHandler {
	return &IncentiveHandler{uc: uc}
}

// DailyIncentives godoc
// @Summary      Incentivo del día
// @Tags         incentives
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.IncentiveSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/incentives/daily/{employee_id} [get]
func (h *IncentiveHandler) DailyIncentives(c *fiber.Ctx) error {
	return h.summary(c, h.uc.DailySummary)
}

// WeeklyIncentives godoc
// @Summary      Incentivo de la semana (semana ISO de mañana)
// @Tags         incentives
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.IncentiveSummaryDTO
// @Router       /api/incentives/weekly/{employee_id} [get]
func (h *IncentiveHandler) WeeklyIncentives(c *fiber.Ctx) error {
	return h.summary(c, h.uc.WeeklySummary)
}

// DailyTargets godoc
// @Summary      Targets del día por métrica
// @Tags         targets
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.TargetsDTO
// @Router       /api/targets/daily/{employee_id} [get]
func (h *IncentiveHandler) DailyTargets(c *fiber.Ctx) error {
	return h.targets(c, h.uc.DailyTargets)
}

// WeeklyTargets godoc
// @Summary      Targets de la semana por métrica
// @Tags         targets
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.TargetsDTO
// @Router       /api/targets/weekly/{employee_id} [get]
func (h *IncentiveHandler) WeeklyTargets(c *fiber.Ctx) error {
	return h.targets(c, h.uc.WeeklyTargets)
}

func (h *IncentiveHandler) summary(c *fiber.Ctx, fn func(context.Context, string) (*dto.IncentiveSummaryDTO, error)) error {
	out, err := fn(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "incentives": out})
}

func (h *IncentiveHandler) targets(c *fiber.Ctx, fn func(context.Context, string) (*dto.TargetsDTO, error)) error {
	out, err := fn(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "targets": out.Targets, "period_key": out.PeriodKey})
}
