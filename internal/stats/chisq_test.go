package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChiSquaredSurvival_CriticalValues(t *testing.T) {
	// Classic critical values: survival probability at the tabulated
	// quantile must recover the tabulated tail mass
	tests := []struct {
		name string
		x    float64
		df   int
		want float64
	}{
		{"df 1 at 5 percent", 3.841459, 1, 0.05},
		{"df 2 at 5 percent", 5.991465, 2, 0.05},
		{"df 2 at 1 percent", 9.210340, 2, 0.01},
		{"df 6 at 5 percent", 12.591587, 6, 0.05},
		{"df 6 at 1 percent", 16.811894, 6, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChiSquaredSurvival(tt.x, tt.df)

			assert.InDelta(t, tt.want, got, 5e-6)
		})
	}
}

func TestChiSquaredSurvival_TwoDFClosedForm(t *testing.T) {
	// With two degrees of freedom the survival function is exp(-x/2)
	for _, x := range []float64{0.5, 1, 3.6, 4.5, 10, 25} {
		got := ChiSquaredSurvival(x, 2)
		assert.InDelta(t, math.Exp(-x/2), got, 1e-10)
	}
}

func TestChiSquaredSurvival_Bounds(t *testing.T) {
	assert.Equal(t, 1.0, ChiSquaredSurvival(0, 3))
	assert.Equal(t, 1.0, ChiSquaredSurvival(-2, 3))

	assert.True(t, math.IsNaN(ChiSquaredSurvival(1, 0)))
	assert.True(t, math.IsNaN(ChiSquaredSurvival(1, -1)))
	assert.True(t, math.IsNaN(ChiSquaredSurvival(math.NaN(), 2)))

	// Monotonically decreasing in x
	prev := 1.0
	for x := 0.5; x <= 40; x += 0.5 {
		p := ChiSquaredSurvival(x, 6)
		assert.Less(t, p, prev)
		prev = p
	}
	assert.Greater(t, prev, 0.0)
}

func TestNormalQuantile_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"median", 0.5, 0},
		{"upper 2.5 percent", 0.975, 1.959964},
		{"lower 2.5 percent", 0.025, -1.959964},
		{"upper half percent", 0.995, 2.575829},
		{"deep lower tail", 0.001, -3.090232},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalQuantile(tt.p), 1e-5)
		})
	}

	assert.True(t, math.IsInf(NormalQuantile(0), -1))
	assert.True(t, math.IsInf(NormalQuantile(1), 1))
	assert.True(t, math.IsNaN(NormalQuantile(-0.1)))
	assert.True(t, math.IsNaN(NormalQuantile(1.1)))
}

func TestNormalQuantile_RoundTrip(t *testing.T) {
	for _, p := range []float64{1e-9, 1e-4, 0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99, 0.9999, 1 - 1e-9} {
		z := NormalQuantile(p)
		assert.InDelta(t, p, NormalCDF(z), 1e-6)
	}
}

func TestNormalCDFAndSurvival(t *testing.T) {
	assert.InDelta(t, 0.5, NormalCDF(0), 1e-12)
	assert.InDelta(t, 0.975002, NormalCDF(1.96), 1e-5)
	assert.InDelta(t, 0.024998, NormalSurvival(1.96), 1e-5)

	// CDF and survival are complements
	for _, z := range []float64{-3, -1, 0, 0.5, 2.7} {
		assert.InDelta(t, 1, NormalCDF(z)+NormalSurvival(z), 1e-12)
	}
}
