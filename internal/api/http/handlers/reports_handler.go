package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/service"
)

// ReportsHandler serves the admin dashboard and the database check.
type ReportsHandler struct {
	reports *service.ReportService
	system  *service.SystemService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService, system *service.SystemService) *ReportsHandler {
	return &ReportsHandler{reports: reports, system: system}
}

// Overview GET /api/admin/reports.
func (h *ReportsHandler) Overview(c *fiber.Ctx) error {
	report, err := h.reports.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reportResponse(report)})
}

// Database GET /api/admin/system/database.
func (h *ReportsHandler) Database(c *fiber.Ctx) error {
	status := h.system.TestConnection(c.UserContext())
	return c.JSON(fiber.Map{"data": dto.ConnectionResponse{
		Backend: status.Backend,
		Success: status.Success,
		Message: status.Message,
	}})
}
