// Package scenario runs what-if analysis: scaling a work package's baseline
// risk impacts under a hypothetical delay.
package scenario

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/latso/latso-backend/database"
	"github.com/latso/latso-backend/scoring"
	"github.com/latso/latso-backend/store"
)

// AnalyzeRequest is the transient what-if input. It is never persisted.
type AnalyzeRequest struct {
	WorkPackageID string `json:"work_package_id"`
	DelayWeeks    int    `json:"delay_weeks"`
}

// ConfigFromEnv builds the scenario policy constants, allowing the demo
// defaults to be overridden without a rebuild.
func ConfigFromEnv() scoring.Config {
	cfg := scoring.DefaultConfig()

	if v, err := strconv.ParseFloat(database.GetEnvDefault("SCENARIO_BASELINE_WEEKS", ""), 64); err == nil && v > 0 {
		cfg.BaselineDelayWeeks = v
	}
	if v, err := strconv.Atoi(database.GetEnvDefault("SCENARIO_DAYS_REMAINING", "")); err == nil && v > 0 {
		cfg.DaysRemaining = v
	}
	return cfg
}

// PostAnalyze scales the work package's baseline risk by the requested delay
func PostAnalyze(s store.Store, cfg scoring.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AnalyzeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":  "bad_request",
				"error": "Invalid request body: " + err.Error(),
			})
		}

		risk, err := s.RiskForWorkPackage(context.Background(), req.WorkPackageID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"code":  "not_found",
					"error": "Risk not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":  "database_error",
				"error": "Analysis error: " + err.Error(),
			})
		}

		return c.JSON(cfg.Analyze(*risk, req.DelayWeeks, time.Now()))
	}
}
