package http

import "github.com/gofiber/fiber/v2"

// LeaderboardHandler ranking por periodo y capa.
type LeaderboardHandler struct {
	uc LeaderboardService
}

// NewLeaderboardHandler construye el handler.
func NewLeaderboardHandler(uc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

// Get godoc
// @Summary      Leaderboard
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path   string  true   "ID del empleado"
// @Param        period       query  string  false  "day | week"
// @Param        layer        query  string  false  "city | cluster"
// @Success      200  {object}  dto.LeaderboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/leaderboard/{employee_id} [get]
func (h *LeaderboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("employee_id"), c.Query("period"), c.Query("layer"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"rankings": out.Rankings,
		"period":   out.Period,
		"layer":    out.Layer,
		"grouped":  out.Grouped,
	})
}
