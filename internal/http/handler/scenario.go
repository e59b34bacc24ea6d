package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/service"
)

// ScenarioRequest is the body of scenario create and update calls.
// Inventory fields left out keep their defaults (create) or stored values (update).
type ScenarioRequest struct {
	Name      string          `json:"name"`
	Inventory model.Inventory `json:"inventory"`
}

// pathID returns the :id parameter when it is a UUID.
func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// ListScenarios godoc
// @Summary List scenarios, newest first
// @Tags scenarios
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ScenarioListResult
// @Failure 400 {object} errorPayload
// @Router /api/v1/scenarios [get]
func ListScenarios(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateScenario godoc
// @Summary Store a named inventory
// @Tags scenarios
// @Accept json
// @Produce json
// @Param scenario body ScenarioRequest true "Scenario"
// @Success 201 {object} model.Scenario
// @Failure 400 {object} errorPayload
// @Router /api/v1/scenarios [post]
func CreateScenario(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := ScenarioRequest{Inventory: lca.DefaultInventory()}
		if err := decodeInto(c, &req); err != nil {
			return invalidBody(c)
		}

		sc, err := svc.Create(c.UserContext(), req.Name, req.Inventory)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sc)
	}
}

// GetScenario godoc
// @Summary Get a scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} model.Scenario
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id} [get]
func GetScenario(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		sc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sc)
	}
}

// UpdateScenario godoc
// @Summary Update name and inventory of a scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param scenario body ScenarioRequest true "Fields to change"
// @Success 200 {object} model.Scenario
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id} [put]
func UpdateScenario(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		current, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		req := ScenarioRequest{Name: current.Name, Inventory: current.Inventory}
		if err := decodeInto(c, &req); err != nil {
			return invalidBody(c)
		}

		sc, err := svc.Update(c.UserContext(), id, req.Name, req.Inventory)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sc)
	}
}

// DeleteScenario removes a scenario. Its reports are kept.
// @Summary Delete a scenario
// @Tags scenarios
// @Param id path string true "Scenario ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id} [delete]
func DeleteScenario(svc service.ScenarioService) fiber.Handler {
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

// ScenarioResult returns the stage emissions of a stored scenario.
// @Summary Stage emissions of a scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} CalculationResponse
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id}/result [get]
func ScenarioResult(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		res, err := svc.Result(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(CalculationResponse{Result: *res, Metrics: res.Metrics()})
	}
}

// ScenarioAnalysis interprets the emissions of a stored scenario.
// @Summary Interpretation of a scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} lca.Analysis
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id}/analysis [get]
func ScenarioAnalysis(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		a, err := svc.Analysis(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ScenarioBreakdown returns pie chart data for a stored scenario.
// @Summary Per-stage emission shares of a scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} lca.Breakdown
// @Failure 404 {object} errorPayload
// @Router /api/v1/scenarios/{id}/breakdown [get]
func ScenarioBreakdown(svc service.ScenarioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return invalidID(c)
		}
		b, err := svc.Breakdown(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(b)
	}
}
