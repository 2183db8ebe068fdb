package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/api/dto"
	"github.com/legalsuite/case-service/internal/service"
)

// ReportsHandler exposes read-only reporting endpoints.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reportService}
}

// LawyerLawsuits handles GET /api/reports/lawyers/:id/lawsuits.
func (h *ReportsHandler) LawyerLawsuits(c *fiber.Ctx) error {
	report, err := h.reports.GetLawyerReport(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLawyerReportResponse(report.Lawyer, report.Lawsuits))
}
