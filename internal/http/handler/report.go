package handler

import (
	"github.com/gofiber/fiber/v2"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/service"
)

// ReportListResponse wraps the reports of a scenario.
type ReportListResponse struct {
	Items []model.Report `json:"data"`
	Total int            `json:"total"`
}

// GenerateReport godoc
// @Summary Generate and store the CSV report of a scenario
// @Tags reports
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 201 {object} model.Report
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id}/reports [post]
func GenerateReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		rep, err := svc.Generate(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rep)
	}
}

// ListReports returns the reports generated from a scenario.
// @Summary List the reports of a scenario
// @Tags reports
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} ReportListResponse
// @Failure 400 {object} errorPayload
// @Router /api/v1/scenarios/{id}/reports [get]
func ListReports(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		items, err := svc.ListByScenario(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if items == nil {
			items = []model.Report{}
		}
		return c.JSON(ReportListResponse{Items: items, Total: len(items)})
	}
}

// GetReport godoc
// @Summary Report metadata with a presigned download URL
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.ReportView
// @Failure 404 {object} errorPayload
// @Router /api/v1/reports/{id} [get]
func GetReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		view, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(view)
	}
}

// DownloadReport streams the stored CSV through the API.
// @Summary Download a stored report
// @Tags reports
// @Produce text/csv
// @Param id path string true "Report ID"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /api/v1/reports/{id}/download [get]
func DownloadReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		rc, rep, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		c.Attachment(lca.ReportFilename)
		c.Set(fiber.HeaderContentType, lca.ReportContentType)
		// fasthttp closes rc once the body has been written.
		if rep.Size > 0 {
			return c.SendStream(rc, int(rep.Size))
		}
		return c.SendStream(rc)
	}
}

// DeleteReport removes the stored object and its record.
// @Summary Delete a report
// @Tags reports
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/v1/reports/{id} [delete]
func DeleteReport(svc service.ReportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
