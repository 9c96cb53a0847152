package ranking

import (
	"cmp"
	"slices"
)

const Size = 10

type Ranked interface {
	Metric() int64
}

// Top returns at most n items ordered by metric, highest first. Items with
// equal metrics keep their relative input order, so ranking an already ranked
// slice returns it unchanged. The input slice is not modified.
func Top[T Ranked](items []T, n int) []T {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b T) int {
		return cmp.Compare(b.Metric(), a.Metric())
	})

	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}
