package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/service"
)

var errTrailingData = errors.New("unexpected data after JSON value")

// CalculationResponse is the result of a stateless calculation.
type CalculationResponse struct {
	Result  lca.Result   `json:"result"`
	Metrics []lca.Metric `json:"metrics"`
}

// decodeInto decodes the JSON body over dst, so absent fields keep the values
// dst already holds. An empty body leaves dst untouched. The body must hold
// exactly one JSON value.
func decodeInto(c *fiber.Ctx, dst any) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func decodeInventory(c *fiber.Ctx) (model.Inventory, error) {
	inv := lca.DefaultInventory()
	err := decodeInto(c, &inv)
	return inv, err
}

func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON inventory")
}

// GetDefaultInventory godoc
// @Summary Default inventory and emission factors
// @Tags calculate
// @Produce json
// @Success 200 {object} model.Inventory
// @Router /api/v1/inventory/defaults [get]
func GetDefaultInventory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(lca.DefaultInventory())
	}
}

// Calculate godoc
// @Summary Compute stage emissions of an inventory
// @Description Absent fields take their default values.
// @Tags calculate
// @Accept json
// @Produce json
// @Param inventory body model.Inventory false "Inventory"
// @Success 200 {object} CalculationResponse
// @Failure 400 {object} errorPayload
// @Router /api/v1/calculate [post]
func Calculate(calc *service.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := decodeInventory(c)
		if err != nil {
			return invalidBody(c)
		}
		res, err := calc.Compute(c.UserContext(), inv)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(CalculationResponse{Result: res, Metrics: res.Metrics()})
	}
}

// AnalyzeInventory returns contributions, findings and reduction opportunities.
// @Summary Interpret the emissions of an inventory
// @Tags calculate
// @Accept json
// @Produce json
// @Param inventory body model.Inventory false "Inventory"
// @Success 200 {object} lca.Analysis
// @Failure 400 {object} errorPayload
// @Router /api/v1/analysis [post]
func AnalyzeInventory(calc *service.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := decodeInventory(c)
		if err != nil {
			return invalidBody(c)
		}
		a, err := calc.Analyze(c.UserContext(), inv)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// BreakdownInventory returns pie chart data for an inventory.
// @Summary Per-stage emission shares of an inventory
// @Tags calculate
// @Accept json
// @Produce json
// @Param inventory body model.Inventory false "Inventory"
// @Success 200 {object} lca.Breakdown
// @Failure 400 {object} errorPayload
// @Router /api/v1/breakdown [post]
func BreakdownInventory(calc *service.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := decodeInventory(c)
		if err != nil {
			return invalidBody(c)
		}
		b, err := calc.Breakdown(c.UserContext(), inv)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(b)
	}
}

// RenderReport godoc
// @Summary Download the CSV report of an inventory
// @Tags calculate
// @Accept json
// @Produce text/csv
// @Param inventory body model.Inventory false "Inventory"
// @Success 200 {file} file
// @Failure 400 {object} errorPayload
// @Router /api/v1/report.csv [post]
func RenderReport(calc *service.Calculator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := decodeInventory(c)
		if err != nil {
			return invalidBody(c)
		}
		res, err := calc.Compute(c.UserContext(), inv)
		if err != nil {
			return writeServiceError(c, err)
		}
		content, err := lca.RenderCSV(res)
		if err != nil {
			return writeInternal(c)
		}
		c.Attachment(lca.ReportFilename)
		c.Set(fiber.HeaderContentType, lca.ReportContentType)
		return c.Send(content)
	}
}
