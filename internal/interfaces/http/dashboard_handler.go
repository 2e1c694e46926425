package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc  *usecase.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Overview devuelve las tarjetas de la vista general.
// GET /api/dashboard/overview
//
// Respuesta: DashboardOverviewDTO (units_in_stock, active_clients, purchases_this_month,
// stock_value, low_stock_items, out_of_stock_items, month_label).
// El mes en curso se calcula en el servidor.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Analytics ventas mensuales, top de productos y cesta media.
// GET /api/dashboard/analytics?top=3
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.QueryInt("top", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Activity últimos eventos, el más reciente primero.
// GET /api/dashboard/activity?limit=10
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	out, err := h.uc.RecentActivity(c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
