package amharic

import (
	"cmp"
	"encoding/json"
	"math"
	"slices"
	"unicode/utf8"
)

// FrequencyEntry is one row of the frequency/rank table.
type FrequencyEntry struct {
	Word          string `json:"word"`
	Frequency     int    `json:"frequency"`
	Rank          int    `json:"rank"`
	RankFrequency int    `json:"rank_freq_product"`
}

// Statistics holds the counts computed over a token sequence.
type Statistics struct {
	Frequencies       map[string]int
	Table             []FrequencyEntry
	TotalWords        int
	UniqueWords       int
	AverageWordLength float64
}

// ComputeStatistics counts tokens and builds the frequency/rank table.
// Rows are sorted by frequency, highest first. Words with the same frequency
// keep the order in which they first occur in tokens, and ranks run 1..N
// without gaps.
func ComputeStatistics(tokens []string) Statistics {
	freq := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	runes := 0

	for _, tok := range tokens {
		if freq[tok] == 0 {
			order = append(order, tok)
		}
		freq[tok]++
		runes += utf8.RuneCountInString(tok)
	}

	table := make([]FrequencyEntry, 0, len(order))
	for _, w := range order {
		table = append(table, FrequencyEntry{Word: w, Frequency: freq[w]})
	}
	slices.SortStableFunc(table, func(a, b FrequencyEntry) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	for i := range table {
		table[i].Rank = i + 1
		table[i].RankFrequency = table[i].Rank * table[i].Frequency
	}

	var avg float64
	if len(tokens) > 0 {
		avg = float64(runes) / float64(len(tokens))
	}

	return Statistics{
		Frequencies:       freq,
		Table:             table,
		TotalWords:        len(tokens),
		UniqueWords:       len(order),
		AverageWordLength: avg,
	}
}

// Correlation is a correlation coefficient that may be undefined.
// It encodes to JSON as a number or null.
type Correlation struct {
	Value float64
	Valid bool
}

// Rounded returns the value rounded to the given number of decimal places,
// or 0 when the correlation is undefined.
func (c Correlation) Rounded(places int) float64 {
	if !c.Valid {
		return 0
	}
	scale := math.Pow(10, float64(places))
	return math.Round(c.Value*scale) / scale
}

func (c Correlation) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

func (c *Correlation) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*c = Correlation{}
		return nil
	}
	*c = Correlation{Value: *v, Valid: true}
	return nil
}

// ZipfCorrelation measures how closely the table follows Zipf's law: the
// Pearson correlation between ln(frequency) and ln(maxFrequency/rank).
// The result is undefined for fewer than two rows, for non-positive
// frequencies or ranks, and when either series is constant.
func ZipfCorrelation(table []FrequencyEntry) Correlation {
	if len(table) < 2 {
		return Correlation{}
	}

	minFreq, maxFreq := table[0].Frequency, table[0].Frequency
	minRank, maxRank := table[0].Rank, table[0].Rank
	for _, e := range table {
		if e.Frequency <= 0 || e.Rank <= 0 {
			return Correlation{}
		}
		minFreq, maxFreq = min(minFreq, e.Frequency), max(maxFreq, e.Frequency)
		minRank, maxRank = min(minRank, e.Rank), max(maxRank, e.Rank)
	}
	// a constant series has no variance; checked on the integers because the
	// float mean of equal logs is not always exact
	if minFreq == maxFreq || minRank == maxRank {
		return Correlation{}
	}

	observed := make([]float64, len(table))
	expected := make([]float64, len(table))
	for i, e := range table {
		observed[i] = math.Log(float64(e.Frequency))
		expected[i] = math.Log(float64(maxFreq) / float64(e.Rank))
	}
	return pearson(observed, expected)
}

// pearson computes the population correlation coefficient of x and y,
// which must have the same length.
func pearson(x, y []float64) Correlation {
	n := float64(len(x))
	if len(x) < 2 || len(x) != len(y) {
		return Correlation{}
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return Correlation{}
	}

	r := cov / math.Sqrt(varX*varY)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Correlation{}
	}
	// rounding can push |r| a hair past 1
	r = max(-1, min(1, r))
	return Correlation{Value: r, Valid: true}
}
