package http

import "github.com/gofiber/fiber/v2"

// AttentionHandler pestaña de atención.
type AttentionHandler struct {
	uc AttentionService
}

// NewAttentionHandler construye el handler.
func NewAttentionHandler(uc AttentionService) *AttentionHandler {
	return &AttentionHandler{uc: uc}
}

// Metrics GET /api/attention/metrics/:employee_id
func (h *AttentionHandler) Metrics(c *fiber.Ctx) error {
	list, err := h.uc.Metrics(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "metrics": list})
}

// Customers GET /api/attention/customers/:employee_id?metric=
func (h *AttentionHandler) Customers(c *fiber.Ctx) error {
	list, err := h.uc.Customers(c.UserContext(), c.Params("employee_id"), c.Query("metric"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "customers": list})
}

// SKUDetails GET /api/attention/sku-details/:employee_id/:customer_id?metric=
func (h *AttentionHandler) SKUDetails(c *fiber.Ctx) error {
	list, err := h.uc.SKUDetails(c.UserContext(), c.Params("employee_id"), c.Params("customer_id"), c.Query("metric"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "skus": list})
}
