// Package risks serves mitigation options recorded against a risk.
package risks

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/store"
)

// GetMitigations lists the mitigation options for a specific risk
func GetMitigations(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		riskID := c.Params("risk_id")

		mitigations, err := s.MitigationsForRisk(context.Background(), riskID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":  "database_error",
				"error": "Mitigation data error: " + err.Error(),
			})
		}
		if mitigations == nil {
			mitigations = []model.Mitigation{}
		}

		return c.JSON(mitigations)
	}
}
