package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/sys360/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del painel.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas de los últimos 7 días, top 5 productos, saldo y stock bajo.
// GET /api/dashboard
//
// Un widget que falla llega vacío; el resto del painel se devuelve igual.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// SalesByDay GET /api/dashboard/sales?days=7
func (h *DashboardHandler) SalesByDay(c *fiber.Ctx) error {
	out, err := h.uc.SalesLastDays(c.UserContext(), c.QueryInt("days", 7))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts GET /api/dashboard/top-products?limit=5
func (h *DashboardHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(c.UserContext(), c.QueryInt("limit", 5))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
