package scoring

import (
	"math"
	"time"

	"github.com/latso/latso-backend/model"
)

// CompletionDateFormat renders dates as "Mon DD, YYYY", e.g. "Aug 29, 2026".
const CompletionDateFormat = "Jan 02, 2006"

// Config holds the policy constants for scenario analysis. The defaults
// mirror the demo scenario: a 2-week baseline delay and 127 days remaining
// on the project.
type Config struct {
	// BaselineDelayWeeks is the delay the stored risk impacts were
	// estimated against. The requested delay is scaled relative to it.
	BaselineDelayWeeks float64
	// DaysRemaining is the number of days until the planned completion
	// date. Not derived from stored project dates in this demo.
	DaysRemaining int
}

// DefaultConfig returns the demo policy constants.
func DefaultConfig() Config {
	return Config{
		BaselineDelayWeeks: 2,
		DaysRemaining:      127,
	}
}

// Result is the outcome of a scenario analysis. Derived, never stored.
type Result struct {
	BudgetImpact   float64         `json:"budget_impact"`
	ScheduleImpact int             `json:"schedule_impact"` // days
	CompletionDate string          `json:"completion_date"`
	RiskLevel      model.RiskLevel `json:"risk_level"`
}

// Multiplier returns the linear scaling factor for a requested delay.
func (c Config) Multiplier(delayWeeks int) float64 {
	return float64(delayWeeks) / c.BaselineDelayWeeks
}

// ClassifyDelay maps a requested delay to a qualitative risk tier. The step
// function is on the raw request alone, not on the computed impact, so LOW
// is unreachable through scenario analysis.
func (c Config) ClassifyDelay(delayWeeks int) model.RiskLevel {
	switch {
	case delayWeeks > 3:
		return model.RiskLevelCritical
	case delayWeeks > 2:
		return model.RiskLevelHigh
	default:
		return model.RiskLevelMedium
	}
}

// Analyze scales a base risk's impacts by the ratio of the requested delay
// to the baseline delay. The schedule impact is floored to whole days, both
// in the result and in the completion date offset.
func (c Config) Analyze(base model.Risk, delayWeeks int, now time.Time) Result {
	multiplier := c.Multiplier(delayWeeks)

	budgetImpact := base.ImpactCost * multiplier
	scheduleImpact := int(math.Floor(float64(base.ImpactDays) * multiplier))

	completion := now.AddDate(0, 0, c.DaysRemaining+scheduleImpact)

	return Result{
		BudgetImpact:   budgetImpact,
		ScheduleImpact: scheduleImpact,
		CompletionDate: completion.Format(CompletionDateFormat),
		RiskLevel:      c.ClassifyDelay(delayWeeks),
	}
}
