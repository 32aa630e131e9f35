// Package vendors serves the vendor performance dashboard and score updates.
package vendors

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/latso/latso-backend/model"
	"github.com/latso/latso-backend/scoring"
	"github.com/latso/latso-backend/store"
)

// VendorPerformance is one row of the vendor dashboard
type VendorPerformance struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Score          int                `json:"score"`
	Trend          model.Trend        `json:"trend"`
	Alerts         []string           `json:"alerts"`
	DetailedScores model.VendorScores `json:"detailed_scores"`
}

// UpdateScoreResponse confirms a composite recalculation
type UpdateScoreResponse struct {
	Success  bool `json:"success"`
	NewScore int  `json:"new_score"`
}

// GetVendors returns the vendor performance dashboard. The composite score is
// recomputed from the stored sub-scores on every read so it can never drift
// from them.
func GetVendors(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendors, err := s.VendorsWithAlerts(context.Background())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":  "database_error",
				"error": "Vendor data error: " + err.Error(),
			})
		}

		rows := []VendorPerformance{}
		for _, vendor := range vendors {
			alerts := []string{}
			for _, alert := range vendor.Alerts {
				if alert.IsActive {
					alerts = append(alerts, alert.Message)
				}
			}

			rows = append(rows, VendorPerformance{
				ID:   vendor.ID,
				Name: vendor.Name,
				Score: scoring.CompositeScore(
					float64(vendor.OnTimeDelivery),
					float64(vendor.QualityScore),
					float64(vendor.CostPerformance),
					float64(vendor.CommunicationScore),
				),
				Trend:  vendor.Trend,
				Alerts: alerts,
				DetailedScores: model.VendorScores{
					OnTime:        vendor.OnTimeDelivery,
					Quality:       vendor.QualityScore,
					Cost:          vendor.CostPerformance,
					Communication: vendor.CommunicationScore,
				},
			})
		}

		return c.JSON(rows)
	}
}

// PostUpdateScore overwrites a vendor's four sub-scores and its recomputed
// composite in one update
func PostUpdateScore(s store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vendorID := c.Params("vendor_id")

		var scores model.VendorScores
		if err := c.BodyParser(&scores); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":  "bad_request",
				"error": "Invalid request body: " + err.Error(),
			})
		}

		composite := scoring.CompositeScore(
			float64(scores.OnTime),
			float64(scores.Quality),
			float64(scores.Cost),
			float64(scores.Communication),
		)

		if err := s.UpdateVendorScores(context.Background(), vendorID, scores, composite); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"code":  "not_found",
					"error": "Vendor not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":  "database_error",
				"error": "Update error: " + err.Error(),
			})
		}

		return c.JSON(UpdateScoreResponse{Success: true, NewScore: composite})
	}
}
