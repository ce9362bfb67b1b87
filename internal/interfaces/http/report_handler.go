package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bilal2025D/Fatora/internal/application/analytics"
)

// ReportHandler expone el dashboard y los reportes de ventas.
type ReportHandler struct {
	dashboard *analytics.DashboardUseCase
	reports   *analytics.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(dashboard *analytics.DashboardUseCase, reports *analytics.ReportsUseCase) *ReportHandler {
	return &ReportHandler{dashboard: dashboard, reports: reports}
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Description  Ingresos cobrados, pendiente de cobro, conteos y las 5 facturas más recientes.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// All GET /api/reports
func (h *ReportHandler) All(c *fiber.Ctx) error {
	out, err := h.reports.GetAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sales GET /api/reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	out, err := h.reports.Sales(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Customers GET /api/reports/customers
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	out, err := h.reports.Customers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Products GET /api/reports/products
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	out, err := h.reports.Products(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories GET /api/reports/categories
func (h *ReportHandler) Categories(c *fiber.Ctx) error {
	out, err := h.reports.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
