package scoring

import (
	"testing"
	"time"

	"github.com/latso/latso-backend/model"
	"github.com/stretchr/testify/assert"
)

func baseRisk() model.Risk {
	return model.Risk{
		ImpactCost: 2300000,
		ImpactDays: 18,
		RiskLevel:  model.RiskLevelHigh,
	}
}

// TestAnalyzeDemoScenario pins the canonical demo numbers: the 2.3M / 18-day
// electrical risk under a 4-week delay.
func TestAnalyzeDemoScenario(t *testing.T) {
	now := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

	result := DefaultConfig().Analyze(baseRisk(), 4, now)

	assert.Equal(t, 4600000.0, result.BudgetImpact)
	assert.Equal(t, 36, result.ScheduleImpact)
	assert.Equal(t, model.RiskLevelCritical, result.RiskLevel)
	// 127 days remaining + 36 days slip = now + 163 days
	assert.Equal(t, now.AddDate(0, 0, 163).Format(CompletionDateFormat), result.CompletionDate)
	assert.Equal(t, "Jun 18, 2025", result.CompletionDate)
}

// TestAnalyzeLinearInDelay verifies budget impact scales linearly with the
// requested delay.
func TestAnalyzeLinearInDelay(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Now()

	for _, weeks := range []int{1, 2, 3, 5} {
		single := cfg.Analyze(baseRisk(), weeks, now)
		double := cfg.Analyze(baseRisk(), 2*weeks, now)
		assert.Equal(t, 2*single.BudgetImpact, double.BudgetImpact, "weeks=%d", weeks)
	}
}

// TestClassifyDelay exercises the step function at and around its
// discontinuities.
func TestClassifyDelay(t *testing.T) {
	tests := []struct {
		weeks    int
		expected model.RiskLevel
	}{
		{0, model.RiskLevelMedium},
		{1, model.RiskLevelMedium},
		{2, model.RiskLevelMedium}, // boundary: > 2 required for HIGH
		{3, model.RiskLevelHigh},   // boundary: > 3 required for CRITICAL
		{4, model.RiskLevelCritical},
		{10, model.RiskLevelCritical},
	}

	cfg := DefaultConfig()
	for _, tt := range tests {
		assert.Equal(t, tt.expected, cfg.ClassifyDelay(tt.weeks), "weeks=%d", tt.weeks)
	}
}

// TestAnalyzeScheduleFloor verifies fractional scaled days are floored, both
// in the surfaced impact and in the completion date.
func TestAnalyzeScheduleFloor(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	risk := model.Risk{ImpactCost: 1000000, ImpactDays: 9}

	// 9 days * 3/2 = 13.5 -> 13
	result := DefaultConfig().Analyze(risk, 3, now)

	assert.Equal(t, 13, result.ScheduleImpact)
	assert.Equal(t, now.AddDate(0, 0, 127+13).Format(CompletionDateFormat), result.CompletionDate)
}

// TestAnalyzeZeroDelay covers the degenerate request: nothing scales, the
// completion date is just the remaining-days baseline.
func TestAnalyzeZeroDelay(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	result := DefaultConfig().Analyze(baseRisk(), 0, now)

	assert.Equal(t, 0.0, result.BudgetImpact)
	assert.Equal(t, 0, result.ScheduleImpact)
	assert.Equal(t, model.RiskLevelMedium, result.RiskLevel)
	assert.Equal(t, now.AddDate(0, 0, 127).Format(CompletionDateFormat), result.CompletionDate)
}

// TestConfigOverridesChangeScaling makes sure the policy constants really are
// configuration, not literals.
func TestConfigOverridesChangeScaling(t *testing.T) {
	cfg := Config{BaselineDelayWeeks: 4, DaysRemaining: 10}
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	result := cfg.Analyze(baseRisk(), 4, now)

	assert.Equal(t, 2300000.0, result.BudgetImpact)
	assert.Equal(t, 18, result.ScheduleImpact)
	assert.Equal(t, now.AddDate(0, 0, 28).Format(CompletionDateFormat), result.CompletionDate)
}
