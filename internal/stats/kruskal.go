package stats

import (
	"errors"
	"fmt"
)

// ErrInsufficientData indicates the hypothesis test is undefined for the
// given input: no observations, fewer than two nonempty groups, or a
// degenerate sample in which every value is identical.
var ErrInsufficientData = errors.New("insufficient data for hypothesis test")

// KruskalWallisResult contains the outcome of the Kruskal-Wallis H test
type KruskalWallisResult struct {
	H      float64 `json:"h"`       // tie-corrected H statistic
	DF     int     `json:"df"`      // degrees of freedom (nonempty groups - 1)
	PValue float64 `json:"p_value"` // chi-squared upper-tail probability
	Groups int     `json:"groups"`  // number of nonempty groups
	N      int     `json:"n"`       // total observations
}

// KruskalWallis performs the Kruskal-Wallis rank test over the given
// groups. Groups with zero observations are excluded from the statistic and
// reduce the degrees of freedom; they never cause an error on their own.
//
// Returns ErrInsufficientData when the test is undefined: no observations
// at all, fewer than two nonempty groups, or all observations identical
// (the tie correction divisor collapses to zero).
func KruskalWallis(groups [][]float64) (KruskalWallisResult, error) {
	nonempty := make([][]float64, 0, len(groups))
	total := 0
	for _, g := range groups {
		if len(g) > 0 {
			nonempty = append(nonempty, g)
			total += len(g)
		}
	}

	if total == 0 || len(nonempty) < 2 {
		return KruskalWallisResult{}, fmt.Errorf("kruskal-wallis with %d observations in %d nonempty groups: %w",
			total, len(nonempty), ErrInsufficientData)
	}

	// Joint ranking across all groups
	flat := make([]float64, 0, total)
	groupOf := make([]int, 0, total)
	for gi, g := range nonempty {
		for _, v := range g {
			flat = append(flat, v)
			groupOf = append(groupOf, gi)
		}
	}

	ranks, tieSizes := Ranks(flat)

	rankSums := make([]float64, len(nonempty))
	for i, r := range ranks {
		rankSums[groupOf[i]] += r
	}

	n := float64(total)
	sumTerm := 0.0
	for gi, g := range nonempty {
		sumTerm += rankSums[gi] * rankSums[gi] / float64(len(g))
	}

	h := 12/(n*(n+1))*sumTerm - 3*(n+1)

	// Tie correction: 1 - sum(t^3 - t) / (N^3 - N)
	tieSum := 0.0
	for _, t := range tieSizes {
		tf := float64(t)
		tieSum += tf*tf*tf - tf
	}
	correction := 1 - tieSum/(n*n*n-n)
	if correction == 0 {
		// Every observation is identical; ranks carry no information
		return KruskalWallisResult{}, fmt.Errorf("kruskal-wallis over constant sample: %w", ErrInsufficientData)
	}
	h /= correction

	df := len(nonempty) - 1

	return KruskalWallisResult{
		H:      h,
		DF:     df,
		PValue: ChiSquaredSurvival(h, df),
		Groups: len(nonempty),
		N:      total,
	}, nil
}
