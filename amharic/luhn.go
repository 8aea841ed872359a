package amharic

import (
	"math"
	"slices"
)

const (
	DefaultUpperPercentile = 80.0
	DefaultLowerPercentile = 20.0
)

// SelectIndexTerms applies Luhn's idea to a frequency/rank table. Words at or
// above the upper percentile of the frequency column, and words at or below
// the lower one, are too common or too rare and go to remove; words strictly
// between the cutoffs are index terms. A word sitting exactly on a cutoff is
// always removed. Both lists keep table order.
func SelectIndexTerms(table []FrequencyEntry, upperPercentile, lowerPercentile float64) (remove, index []string) {
	remove = []string{}
	index = []string{}
	if len(table) == 0 {
		return remove, index
	}

	freqs := make([]float64, len(table))
	for i, e := range table {
		freqs[i] = float64(e.Frequency)
	}
	slices.Sort(freqs)

	upper := percentile(freqs, upperPercentile)
	lower := percentile(freqs, lowerPercentile)

	for _, e := range table {
		f := float64(e.Frequency)
		if f >= upper || f <= lower {
			remove = append(remove, e.Word)
			continue
		}
		index = append(index, e.Word)
	}
	return remove, index
}

// percentile returns the p-th percentile (0..100) of sorted using linear
// interpolation between the two closest ranks, position p/100*(n-1).
// sorted must be ascending and non-empty.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	lo = max(0, min(lo, len(sorted)-1))
	hi = max(0, min(hi, len(sorted)-1))
	frac := pos - math.Floor(pos)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
