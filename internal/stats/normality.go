package stats

import (
	"math"
	"sort"
)

const (
	// MaxNormalitySampleSize is the sample size at and above which the
	// numerical normality test is skipped. The AS R94 approximation is
	// calibrated for n < 5000; beyond that the QQ artifact carries the
	// assessment visually.
	MaxNormalitySampleSize = 5000

	// MinNormalitySampleSize is the smallest sample size the W statistic
	// is defined for.
	MinNormalitySampleSize = 3
)

// Skip reasons carried on NormalityResult when the test is not computed
const (
	SkipSampleTooLarge = "sample too large"
	SkipSampleTooSmall = "sample too small"
	SkipZeroVariance   = "zero variance"
)

// NormalityResult contains the outcome of the normality check over the
// daily viewing totals. A skipped check is a normal outcome, not an error,
// and never gates the hypothesis test.
type NormalityResult struct {
	W          float64 `json:"w"`
	PValue     float64 `json:"p_value"`
	N          int     `json:"n"`
	Skipped    bool    `json:"skipped"`
	SkipReason string  `json:"skip_reason,omitempty"`
}

// ShapiroWilk performs the Shapiro-Wilk normality test using Royston's
// AS R94 approximation. Samples with n >= MaxNormalitySampleSize or
// n < MinNormalitySampleSize, and degenerate constant samples, are
// reported as skipped with a reason rather than computed or rejected.
func ShapiroWilk(values []float64) NormalityResult {
	n := len(values)

	if n >= MaxNormalitySampleSize {
		return NormalityResult{N: n, Skipped: true, SkipReason: SkipSampleTooLarge}
	}
	if n < MinNormalitySampleSize {
		return NormalityResult{N: n, Skipped: true, SkipReason: SkipSampleTooSmall}
	}

	x := make([]float64, n)
	copy(x, values)
	sort.Float64s(x)

	if x[n-1] == x[0] {
		return NormalityResult{N: n, Skipped: true, SkipReason: SkipZeroVariance}
	}

	w := shapiroWilkW(x)

	return NormalityResult{
		W:      w,
		PValue: shapiroWilkPValue(w, n),
		N:      n,
	}
}

// shapiroWilkW computes the W statistic over a sorted sample. Weights
// follow AS R94: expected normal order statistics with Blom offsets,
// polynomial tail corrections in 1/sqrt(n), and renormalized interior
// weights.
func shapiroWilkW(x []float64) float64 {
	n := len(x)
	nf := float64(n)

	m := make([]float64, n)
	ssm := 0.0
	for i := range m {
		m[i] = NormalQuantile((float64(i+1) - 0.375) / (nf + 0.25))
		ssm += m[i] * m[i]
	}

	u := 1 / math.Sqrt(nf)
	a := make([]float64, n)

	an := m[n-1]/math.Sqrt(ssm) +
		u*(0.221157+u*(-0.147981+u*(-2.071190+u*(4.434685+u*(-2.706056)))))

	switch {
	case n == 3:
		a[2] = math.Sqrt(0.5)
		a[0] = -a[2]
	case n <= 5:
		phi := (ssm - 2*m[n-1]*m[n-1]) / (1 - 2*an*an)
		a[n-1], a[0] = an, -an
		for i := 1; i < n-1; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	default:
		an1 := m[n-2]/math.Sqrt(ssm) +
			u*(0.042981+u*(-0.293762+u*(-1.752461+u*(5.682633+u*(-3.582633)))))
		phi := (ssm - 2*m[n-1]*m[n-1] - 2*m[n-2]*m[n-2]) / (1 - 2*an*an - 2*an1*an1)
		a[n-1], a[n-2] = an, an1
		a[0], a[1] = -an, -an1
		for i := 2; i < n-2; i++ {
			a[i] = m[i] / math.Sqrt(phi)
		}
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= nf

	num, sse := 0.0, 0.0
	for i, v := range x {
		num += a[i] * v
		d := v - mean
		sse += d * d
	}

	w := num * num / sse
	if w > 1 {
		w = 1
	}
	return w
}

// shapiroWilkPValue maps W to an upper-tail p-value using the AS R94
// normalizing transforms. The transform differs by sample-size band:
// n = 3 has an exact arcsine form, 4..11 uses a -log(gamma - log(1-W))
// transform, 12 and above a log(1-W) transform with log(n) polynomials.
func shapiroWilkPValue(w float64, n int) float64 {
	nf := float64(n)

	if n == 3 {
		const pi6 = 1.90985931710274  // 6/pi
		const stqr = 1.04719755119660 // asin(sqrt(3/4))
		p := pi6 * (math.Asin(math.Sqrt(w)) - stqr)
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	}

	lw := math.Log(1 - w)

	if n <= 11 {
		gamma := 0.459*nf - 2.273
		if lw >= gamma {
			// W below the calibrated range; the evidence against
			// normality is overwhelming
			return 0
		}
		tw := -math.Log(gamma - lw)
		mu := 0.5440 + nf*(-0.39978+nf*(0.025054+nf*(-0.0006714)))
		sigma := math.Exp(1.3822 + nf*(-0.77857+nf*(0.062767+nf*(-0.0020322))))
		return NormalSurvival((tw - mu) / sigma)
	}

	ln := math.Log(nf)
	mu := -1.5861 + ln*(-0.31082+ln*(-0.083751+ln*0.0038915))
	sigma := math.Exp(-0.4803 + ln*(-0.082676+ln*0.0030302))
	return NormalSurvival((lw - mu) / sigma)
}
