package stats

import (
	"math"
)

const (
	gammaMaxIterations = 200
	gammaEpsilon       = 3e-14
	gammaTiny          = 1e-300
)

// ChiSquaredSurvival returns the upper-tail probability P(X >= x) for a
// chi-squared distribution with df degrees of freedom. This is the p-value
// source for the Kruskal-Wallis statistic.
func ChiSquaredSurvival(x float64, df int) float64 {
	if df <= 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x <= 0 {
		return 1
	}
	return regularizedGammaUpper(float64(df)/2, x/2)
}

// regularizedGammaUpper computes Q(a, x) = Γ(a, x)/Γ(a). The series
// converges fastest for x < a+1, the continued fraction for x >= a+1.
func regularizedGammaUpper(a, x float64) float64 {
	if x < a+1 {
		return 1 - regularizedGammaLowerSeries(a, x)
	}
	return regularizedGammaUpperCF(a, x)
}

// regularizedGammaLowerSeries computes P(a, x) by its power series
func regularizedGammaLowerSeries(a, x float64) float64 {
	if x <= 0 {
		return 0
	}

	lg, _ := math.Lgamma(a)

	term := 1 / a
	sum := term
	for n := 1; n <= gammaMaxIterations; n++ {
		term *= x / (a + float64(n))
		sum += term
		if math.Abs(term) < math.Abs(sum)*gammaEpsilon {
			break
		}
	}

	return sum * math.Exp(-x+a*math.Log(x)-lg)
}

// regularizedGammaUpperCF computes Q(a, x) by a modified Lentz continued
// fraction evaluation
func regularizedGammaUpperCF(a, x float64) float64 {
	lg, _ := math.Lgamma(a)

	b := x + 1 - a
	c := 1 / gammaTiny
	d := 1 / b
	h := d

	for i := 1; i <= gammaMaxIterations; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2

		d = an*d + b
		if math.Abs(d) < gammaTiny {
			d = gammaTiny
		}
		c = b + an/c
		if math.Abs(c) < gammaTiny {
			c = gammaTiny
		}
		d = 1 / d

		del := d * c
		h *= del
		if math.Abs(del-1) < gammaEpsilon {
			break
		}
	}

	return math.Exp(-x+a*math.Log(x)-lg) * h
}
