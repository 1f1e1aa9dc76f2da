package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/SalesExec-api/internal/application/dto"
)

// EventHandler log de eventos de la app.
type EventHandler struct {
	uc EventService
}

// NewEventHandler construye el handler.
func NewEventHandler(uc EventService) *EventHandler {
	return &EventHandler{uc: uc}
}

// Log godoc
// @Summary      Registrar evento de uso
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LogEventRequest  true  "employee_id, event_name, meta_data"
// @Success      200  {object}  dto.EventDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/events/log [post]
func (h *EventHandler) Log(c *fiber.Ctx) error {
	var in dto.LogEventRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest("Missing required fields: employee_id and event_name")
	}
	ev, err := h.uc.Log(c.UserContext(), GetEmployeeID(c), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Event logged successfully",
		"event":   ev,
	})
}
