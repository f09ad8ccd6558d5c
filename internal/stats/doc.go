// Package stats implements the two statistical procedures the viewing
// pipeline needs: a Shapiro-Wilk normality check over daily viewing totals
// and a Kruskal-Wallis rank test of whether viewing intensity differs by
// day of week.
//
// This is deliberately not a general-purpose statistics library. It carries
// exactly the procedures the pipeline consumes, together with the special
// functions they require, implemented on the standard math package.
//
// # Core Components
//
//   - ranks.go: joint ranking with average ranks for tied blocks
//   - kruskal.go: Kruskal-Wallis H statistic, tie correction, p-value
//   - chisq.go: chi-squared survival function (regularized incomplete gamma)
//   - normal.go: standard normal CDF, survival and quantile functions
//   - normality.go: Shapiro-Wilk W test with the large-sample skip rule
//
// # Usage Example
//
//	groups := make([][]float64, 0, 7)
//	for _, day := range viewing.Weekdays() {
//	    groups = append(groups, minutesByDay[day])
//	}
//
//	kw, err := stats.KruskalWallis(groups)
//	if errors.Is(err, stats.ErrInsufficientData) {
//	    // fewer than two weekdays with observations
//	}
//
//	norm := stats.ShapiroWilk(dailyMinutes)
//	if norm.Skipped {
//	    // n >= 5000 or degenerate sample; see norm.SkipReason
//	}
//
// # Mathematical Foundation
//
// Kruskal-Wallis ranks all N observations jointly (ties receive the average
// rank of their block) and computes
//
//	H = (12 / (N(N+1))) × Σ_g (R_g² / n_g) − 3(N+1)
//
// where R_g is the rank sum and n_g the size of group g. H is divided by
// the tie correction 1 − Σ(t³−t)/(N³−N) over tied blocks of size t, and the
// p-value comes from the chi-squared survival function with
// (nonempty groups − 1) degrees of freedom.
//
// The Shapiro-Wilk test follows Royston's AS R94 approximation: expected
// normal order statistics from the inverse normal CDF, polynomial-corrected
// tail weights, and a normalizing transform of W whose form depends on the
// sample-size band (n = 3 exactly, 4 ≤ n ≤ 11, 12 ≤ n < 5000). At
// n ≥ 5000 the approximation is out of its calibrated range and the test is
// reported as skipped rather than computed.
package stats
