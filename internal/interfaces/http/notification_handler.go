package http

import "github.com/gofiber/fiber/v2"

// NotificationHandler feed global de notificaciones.
type NotificationHandler struct {
	uc NotificationService
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc NotificationService) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      Últimas notificaciones
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.NotificationsResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Latest(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"notifications": out.Notifications,
		"count":         out.Count,
	})
}
