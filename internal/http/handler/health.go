package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"lcaapi/internal/database"
	"lcaapi/internal/storage"
)

const healthTimeout = 2 * time.Second

// Introduction describes the assessment the API performs.
type Introduction struct {
	Title          string   `json:"title"`
	Goal           string   `json:"goal"`
	SystemBoundary []string `json:"system_boundary"`
	FunctionalUnit string   `json:"functional_unit"`
	Footer         string   `json:"footer"`
}

var introduction = Introduction{
	Title:          "LCA Tool: Biofuel from Waste Cooking Oil (WCO)",
	Goal:           "Evaluate environmental impacts of producing & using WCO biofuel in Malaysia vs diesel (Cradle-to-Grave, FU=1 MJ)",
	SystemBoundary: []string{"Raw acquisition", "Production", "Distribution", "Use Phase", "End-of-Life"},
	FunctionalUnit: "1 MJ",
	Footer:         "LCA Tool for WCO Biofuel | FU = 1 MJ | Cradle-to-Grave",
}

// GetIntroduction godoc
// @Summary Describe the assessment
// @Tags meta
// @Produce json
// @Success 200 {object} Introduction
// @Router / [get]
func GetIntroduction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(introduction)
	}
}

// LivenessProbe reports that the process is up.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// HealthCheck pings the database and, when store is non-nil, the report bucket.
func HealthCheck(db database.Pinger, store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if db == nil || db.PingContext(ctx) != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "database unavailable")
		}
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "object storage unavailable")
			}
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	}
}
