// Package portfolio implements the resolvers for the portfolio read surface.
package portfolio

import (
	"context"
	"errors"

	"github.com/latso/latso-backend/scoring"
	"github.com/latso/latso-backend/store"
)

// ResolveProject fetches one project; unknown ids resolve to null
func ResolveProject(s store.Store, id string) (interface{}, error) {
	project, err := s.Project(context.Background(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return project, nil
}

// ResolveVendors returns the vendor dashboard rows with composites recomputed
// from the stored sub-scores
func ResolveVendors(s store.Store) (interface{}, error) {
	vendors, err := s.VendorsWithAlerts(context.Background())
	if err != nil {
		return nil, err
	}

	rows := []map[string]interface{}{}
	for _, vendor := range vendors {
		alerts := []string{}
		for _, alert := range vendor.Alerts {
			if alert.IsActive {
				alerts = append(alerts, alert.Message)
			}
		}

		rows = append(rows, map[string]interface{}{
			"id":   vendor.ID,
			"name": vendor.Name,
			"score": scoring.CompositeScore(
				float64(vendor.OnTimeDelivery),
				float64(vendor.QualityScore),
				float64(vendor.CostPerformance),
				float64(vendor.CommunicationScore),
			),
			"trend":  string(vendor.Trend),
			"alerts": alerts,
			"detailed_scores": map[string]interface{}{
				"on_time":       vendor.OnTimeDelivery,
				"quality":       vendor.QualityScore,
				"cost":          vendor.CostPerformance,
				"communication": vendor.CommunicationScore,
			},
		})
	}
	return rows, nil
}

// ResolveMitigations lists the mitigation options for a risk
func ResolveMitigations(s store.Store, riskID string) (interface{}, error) {
	return s.MitigationsForRisk(context.Background(), riskID)
}

// ResolveOverview aggregates vendor health for the top cards
func ResolveOverview(s store.Store) (interface{}, error) {
	vendors, err := s.VendorsWithAlerts(context.Background())
	if err != nil {
		return nil, err
	}

	activeAlerts := 0
	totalScore := 0
	for _, vendor := range vendors {
		for _, alert := range vendor.Alerts {
			if alert.IsActive {
				activeAlerts++
			}
		}
		totalScore += scoring.CompositeScore(
			float64(vendor.OnTimeDelivery),
			float64(vendor.QualityScore),
			float64(vendor.CostPerformance),
			float64(vendor.CommunicationScore),
		)
	}

	avg := 0.0
	if len(vendors) > 0 {
		avg = float64(totalScore) / float64(len(vendors))
	}

	return map[string]interface{}{
		"total_vendors":   len(vendors),
		"active_alerts":   activeAlerts,
		"avg_performance": avg,
	}, nil
}
