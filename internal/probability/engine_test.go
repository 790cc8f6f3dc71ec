package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoost(t *testing.T) {
	tests := []struct {
		name          string
		pBase         float64
		bGeneral      float64
		bFinal        float64
		expectedInter float64
		expectedFinal float64
	}{
		{"No bonuses", 10.0, 0, 0, 10.0, 10.0},
		{"Calice example", 10.0, 265.0, 0, 36.5, 36.5},
		{"General and final staged", 10.0, 100.0, 50.0, 20.0, 30.0},
		{"Final stage caps at 90", 50.0, 200.0, 100.0, 150.0, 90.0},
		{"Negative general bonus", 10.0, -50.0, 0, 5.0, 5.0},
		{"Zero base stays zero", 0.0, 265.0, 10.0, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pInter, pFinal := Boost(tt.pBase, tt.bGeneral, tt.bFinal)
			assert.InDelta(t, tt.expectedInter, pInter, 1e-9)
			assert.InDelta(t, tt.expectedFinal, pFinal, 1e-9)
		})
	}
}

func TestApplyCaps(t *testing.T) {
	tests := []struct {
		name     string
		pBase    float64
		pFinal   float64
		expected float64
	}{
		{"Low base under cap", 10.0, 36.5, 36.5},
		{"Low base clamped", 10.0, 300.0, 90.0},
		{"Base exactly 90 clamped", 90.0, 120.0, 90.0},
		{"Full base forced to 100", 100.0, 55.0, 100.0},
		{"Full base with huge boost", 100.0, 500.0, 100.0},
		// Bases between 90 and 100 intentionally pass through uncapped.
		{"Base 95 uncapped", 95.0, 347.0, 347.0},
		{"Base 99 uncapped below 90", 99.0, 42.0, 42.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyCaps(tt.pBase, tt.pFinal))
		})
	}
}

func TestBoostCapRangeProperty(t *testing.T) {
	// Any base at or below 90 must produce a final rate within [0, 90].
	bases := []float64{0, 0.01, 1, 10, 45, 89.9, 90}
	bonuses := []float64{0, 50, 265, 1000, 100000}

	for _, base := range bases {
		for _, bg := range bonuses {
			for _, bf := range bonuses {
				_, pFinal := Boost(base, bg, bf)
				assert.GreaterOrEqual(t, pFinal, 0.0)
				assert.LessOrEqual(t, pFinal, 90.0)
			}
		}
	}
}
