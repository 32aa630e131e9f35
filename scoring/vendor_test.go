package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCompositeScore tests the weighted vendor composite calculation.
func TestCompositeScore(t *testing.T) {
	tests := []struct {
		name                                  string
		onTime, quality, cost, communication  float64
		expected                              int
	}{
		{
			name:     "all zero",
			expected: 0,
		},
		{
			name:          "all perfect",
			onTime:        100,
			quality:       100,
			cost:          100,
			communication: 100,
			expected:      100,
		},
		{
			name:     "only on-time counts at its weight",
			onTime:   100,
			expected: 35,
		},
		{
			name:          "only communication counts at its weight",
			communication: 100,
			expected:      15,
		},
		{
			name:          "fractional result is floored not rounded",
			onTime:        60,  // 21.00
			quality:       80,  // 20.00
			cost:          65,  // 16.25
			communication: 70,  // 10.50 -> 67.75
			expected:      67,
		},
		{
			name:          "just below the next integer stays down",
			onTime:        100, // 35
			quality:       99,  // 24.75
			cost:          100, // 25
			communication: 67,  // 10.05 -> 94.80
			expected:      94,
		},
		{
			name:          "out of range inputs propagate without clamping",
			onTime:        200,
			quality:       100,
			cost:          100,
			communication: 100,
			expected:      135,
		},
		{
			name:     "negative inputs floor downward",
			onTime:   -10, // -3.5
			expected: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompositeScore(tt.onTime, tt.quality, tt.cost, tt.communication)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestWeightsSumToOne guards the business policy that the four weights
// form a weighted average.
func TestWeightsSumToOne(t *testing.T) {
	sum := WeightOnTime + WeightQuality + WeightCost + WeightCommunication
	assert.InDelta(t, 1.0, sum, 1e-9)
}
