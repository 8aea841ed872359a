package amharic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.InDelta(t, 4.2, percentile(values, 80), 1e-9)
	assert.InDelta(t, 1.8, percentile(values, 20), 1e-9)
	assert.InDelta(t, 3.0, percentile(values, 50), 1e-9)
	assert.InDelta(t, 1.0, percentile(values, 0), 1e-9)
	assert.InDelta(t, 5.0, percentile(values, 100), 1e-9)
	assert.InDelta(t, 7.0, percentile([]float64{7}, 80), 1e-9)
	assert.InDelta(t, 2.4, percentile([]float64{1, 2, 2, 3}, 80), 1e-9)
}

func TestSelectIndexTerms(t *testing.T) {
	remove, index := SelectIndexTerms(table(5, 4, 3, 2, 1), 80, 20)

	assert.Equal(t, []string{"a", "e"}, remove)
	assert.Equal(t, []string{"b", "c", "d"}, index)
}

func TestSelectIndexTerms_BoundaryGoesToRemove(t *testing.T) {
	// upper cutoff is exactly 2, the frequency of b
	remove, index := SelectIndexTerms(table(3, 2, 1), 50, 0)

	assert.Equal(t, []string{"a", "b", "c"}, remove)
	assert.Empty(t, index)

	// all equal: both cutoffs land on the shared value
	remove, index = SelectIndexTerms(table(2, 2, 2), 80, 20)
	assert.Equal(t, []string{"a", "b", "c"}, remove)
	assert.Empty(t, index)
}

func TestSelectIndexTerms_Empty(t *testing.T) {
	remove, index := SelectIndexTerms(nil, 80, 20)

	assert.NotNil(t, remove)
	assert.NotNil(t, index)
	assert.Empty(t, remove)
	assert.Empty(t, index)
}

func TestSelectIndexTerms_Partition(t *testing.T) {
	stats := ComputeStatistics(Tokenize(sampleText))
	remove, index := SelectIndexTerms(stats.Table, 80, 20)

	inRemove := make(map[string]bool, len(remove))
	for _, w := range remove {
		inRemove[w] = true
	}
	for _, w := range index {
		assert.False(t, inRemove[w], "%q is in both lists", w)
	}
	assert.Len(t, append(append([]string{}, remove...), index...), stats.UniqueWords)
}
