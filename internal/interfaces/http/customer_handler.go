package http

import "github.com/gofiber/fiber/v2"

// CustomerHandler listas de clientes del ejecutivo (home, página de targets y registro).
type CustomerHandler struct {
	uc CustomerService
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc CustomerService) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// NudgeZone GET /api/customers/nudge-zone/:employee_id
func (h *CustomerHandler) NudgeZone(c *fiber.Ctx) error {
	list, err := h.uc.NudgeZone(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "customers": list})
}

// SoClose GET /api/customers/so-close/:employee_id
func (h *CustomerHandler) SoClose(c *fiber.Ctx) error {
	list, err := h.uc.SoClose(c.UserContext(), c.Params("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "customers": list})
}

// TargetCustomers godoc
// @Summary      Clientes de la página de targets con SKUs a ofrecer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path   string  true   "ID del empleado"
// @Param        metric       query  string  false  "métrica; vacío = todas"
// @Param        period       query  string  false  "daily | weekly"
// @Success      200  {object}  dto.TargetCustomersResponse
// @Router       /api/target-customers/{employee_id} [get]
func (h *CustomerHandler) TargetCustomers(c *fiber.Ctx) error {
	out, err := h.uc.TargetCustomers(c.UserContext(), c.Params("employee_id"), c.Query("metric"), c.Query("period"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":   true,
		"customers": out.Customers,
		"metric":    out.Metric,
		"period":    out.Period,
	})
}

// Base godoc
// @Summary      Registro completo de clientes
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path   string  true   "ID del empleado"
// @Param        customer_id  query  string  false  "filtro exacto"
// @Param        contact      query  string  false  "coincidencia parcial del teléfono"
// @Success      200  {array}  dto.BaseCustomerDTO
// @Router       /api/base/customers/{employee_id} [get]
func (h *CustomerHandler) Base(c *fiber.Ctx) error {
	list, err := h.uc.Base(c.UserContext(), c.Params("employee_id"), c.Query("customer_id"), c.Query("contact"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "customers": list, "count": len(list)})
}
