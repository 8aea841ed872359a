// Package amharic implements a rule-based analysis pipeline for
// Amharic-script text.
//
// The pipeline runs in a fixed order:
//
//  1. DetectLanguage: any rune in U+1200–U+137F means Amharic.
//  2. Tokenize: markup residue removal, Normalize, case folding, digit and
//     symbol removal, splitting on Ethiopic punctuation and whitespace.
//  3. ComputeStatistics: word counts and the frequency/rank table over the
//     unfiltered tokens.
//  4. SelectIndexTerms: Luhn's frequency band over the table.
//  5. RemoveStopWords and Stem, both language aware.
//  6. ZipfCorrelation over the table.
//
// Rule tables (normalization rules, stop words, affixes) are package-level
// and read-only, so every function here is safe for concurrent use.
//
// Known limitations:
//
//   - Stemming strips one prefix and one suffix by first match in list order;
//     it is not a morphological analyzer.
//   - Only Amharic has stop words and affixes. Other text is tokenized and
//     counted, but filtering and stemming are identity.
package amharic

import (
	"errors"
	"fmt"
	"math"
)

// Result is the complete analysis of one text. Slices and maps are owned by
// the caller.
type Result struct {
	Language          Language         `json:"detected_language"`
	OriginalTokens    []string         `json:"original_tokens"`
	FilteredTokens    []string         `json:"filtered_tokens"`
	StemmedTokens     []string         `json:"stemmed_tokens"`
	WordsToRemove     []string         `json:"words_to_remove"`
	IndexTerms        []string         `json:"index_terms"`
	WordFrequencies   map[string]int   `json:"word_frequencies"`
	FrequencyTable    []FrequencyEntry `json:"frequency_table"`
	ZipfCorrelation   Correlation      `json:"zipf_correlation"`
	TotalWords        int              `json:"total_words"`
	UniqueWords       int              `json:"unique_words"`
	AverageWordLength float64          `json:"average_word_length"`
}

// Options configures an Analyzer.
type Options struct {
	UpperPercentile float64
	LowerPercentile float64
}

// DefaultOptions returns the 80/20 percentile band.
func DefaultOptions() Options {
	return Options{
		UpperPercentile: DefaultUpperPercentile,
		LowerPercentile: DefaultLowerPercentile,
	}
}

var ErrBadOptions = errors.New("bad analyzer options")

// Analyzer runs the pipeline with a fixed set of options.
type Analyzer struct {
	opts Options
}

// New validates opts and returns an Analyzer. Percentiles must lie in
// 0..100 with the lower one not above the upper one.
func New(opts Options) (*Analyzer, error) {
	if math.IsNaN(opts.UpperPercentile) || math.IsNaN(opts.LowerPercentile) {
		return nil, fmt.Errorf("%w: percentiles must be numbers, got %v/%v",
			ErrBadOptions, opts.UpperPercentile, opts.LowerPercentile)
	}
	if opts.LowerPercentile < 0 || opts.UpperPercentile > 100 {
		return nil, fmt.Errorf("%w: percentiles must be within 0..100, got %v/%v",
			ErrBadOptions, opts.UpperPercentile, opts.LowerPercentile)
	}
	if opts.LowerPercentile > opts.UpperPercentile {
		return nil, fmt.Errorf("%w: lower percentile %v is above upper %v",
			ErrBadOptions, opts.LowerPercentile, opts.UpperPercentile)
	}
	return &Analyzer{opts: opts}, nil
}

var defaultAnalyzer = &Analyzer{opts: DefaultOptions()}

// Analyze runs the pipeline over text with DefaultOptions.
func Analyze(text string) Result {
	return defaultAnalyzer.Analyze(text)
}

// Options returns the options the analyzer was built with.
func (a *Analyzer) Options() Options {
	return a.opts
}

// Analyze runs the pipeline over text. Empty text yields zero counts, empty
// slices and an undefined Zipf correlation.
func (a *Analyzer) Analyze(text string) Result {
	lang := DetectLanguage(text)
	tokens := Tokenize(text)

	stats := ComputeStatistics(tokens)
	remove, index := SelectIndexTerms(stats.Table, a.opts.UpperPercentile, a.opts.LowerPercentile)

	filtered := RemoveStopWords(tokens, lang)
	stemmed := StemAll(filtered, lang)

	return Result{
		Language:          lang,
		OriginalTokens:    tokens,
		FilteredTokens:    filtered,
		StemmedTokens:     stemmed,
		WordsToRemove:     remove,
		IndexTerms:        index,
		WordFrequencies:   stats.Frequencies,
		FrequencyTable:    stats.Table,
		ZipfCorrelation:   ZipfCorrelation(stats.Table),
		TotalWords:        stats.TotalWords,
		UniqueWords:       stats.UniqueWords,
		AverageWordLength: stats.AverageWordLength,
	}
}
