// Package scoring implements the deterministic calculations behind the
// dashboard: the vendor composite performance score and the what-if scenario
// impact scaling. Everything here is a pure function so it can be exercised
// without a database.
package scoring

import "math"

// Weights for the vendor composite score. Business policy, fixed, sum to 1.0.
const (
	WeightOnTime        = 0.35
	WeightQuality       = 0.25
	WeightCost          = 0.25
	WeightCommunication = 0.15
)

// CompositeScore computes the weighted vendor performance score, floored to
// an integer. Inputs are nominally 0-100 but are not validated; out-of-range
// values propagate arithmetically.
func CompositeScore(onTime, quality, cost, communication float64) int {
	weighted := onTime*WeightOnTime +
		quality*WeightQuality +
		cost*WeightCost +
		communication*WeightCommunication
	return int(math.Floor(weighted))
}
