package driver

import "sort"

// Statistics is the five-number summary spec.md §4.10 asks the driver
// to report at the end of a batch of runs.
type Statistics struct {
	Min, Q1, Median, Q3, Max float64
}

// Summarize computes min/Q1/median/Q3/max over values using linear
// interpolation between order statistics. Returns false and a zero
// Statistics for an empty input — the original's "zero runs" edge
// case, reported by the caller as a Warning rather than a panic.
func Summarize(values []float64) (Statistics, bool) {
	if len(values) == 0 {
		return Statistics{}, false
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return Statistics{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, true
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
