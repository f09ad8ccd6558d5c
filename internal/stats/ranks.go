package stats

import (
	"sort"
)

// Ranks assigns 1-based statistical ranks to values, jointly across the
// whole slice. Tied values receive the average rank of their tied block.
// The returned tieSizes holds the size of every tied block with two or more
// members, in ascending value order, for use in tie corrections.
//
// The input is not modified; ranks are returned in input order.
func Ranks(values []float64) (ranks []float64, tieSizes []int) {
	n := len(values)
	if n == 0 {
		return nil, nil
	}

	type indexValue struct {
		originalIndex int
		value         float64
	}

	ordered := make([]indexValue, n)
	for i, v := range values {
		ordered[i] = indexValue{originalIndex: i, value: v}
	}

	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].value < ordered[j].value
	})

	ranks = make([]float64, n)

	for i := 0; i < n; {
		tieStart := i
		currentValue := ordered[i].value

		// Find end of tie group
		for i < n && ordered[i].value == currentValue {
			i++
		}
		tieEnd := i

		// Average of the 1-based positions tieStart+1 .. tieEnd
		avgRank := float64(tieStart+1+tieEnd) / 2

		for j := tieStart; j < tieEnd; j++ {
			ranks[ordered[j].originalIndex] = avgRank
		}

		if size := tieEnd - tieStart; size > 1 {
			tieSizes = append(tieSizes, size)
		}
	}

	return ranks, tieSizes
}
