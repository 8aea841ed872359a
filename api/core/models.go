package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"amharic.dev/analyzer/amharic"
)

type DocumentType string

const (
	DocumentText DocumentType = "txt"
	DocumentHTML DocumentType = "html"
	DocumentXML  DocumentType = "xml"
)

// ParseDocumentType accepts a type name or a file extension, with or
// without the leading dot.
func ParseDocumentType(s string) (DocumentType, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "txt", "text":
		return DocumentText, nil
	case "html", "htm":
		return DocumentHTML, nil
	case "xml":
		return DocumentXML, nil
	}
	return "", fmt.Errorf("%w: unsupported document type %q", ErrBadArguments, s)
}

// DocumentTypeOf guesses the type from a file name.
func DocumentTypeOf(filename string) (DocumentType, error) {
	return ParseDocumentType(filepath.Ext(filename))
}

const MaxTitleLength = 200

// Upload is a document as received from a client.
type Upload struct {
	Title    string
	Type     DocumentType
	Filename string
	Content  []byte
}

// Document is a stored document together with its analysis.
type Document struct {
	ID         int64
	Title      string
	Type       DocumentType
	Filename   string
	Content    string
	UploadedAt time.Time
	Analysis   amharic.Result
}

func (d Document) WordCount() int {
	return d.Analysis.TotalWords
}

func (d Document) UniqueWords() int {
	return d.Analysis.UniqueWords
}

func (d Document) Language() amharic.Language {
	if d.Analysis.Language == "" {
		return amharic.LanguageUnknown
	}
	return d.Analysis.Language
}

// ZipfCorrelation rounds to three places; an undefined value stays invalid.
func (d Document) ZipfCorrelation() amharic.Correlation {
	c := d.Analysis.ZipfCorrelation
	if !c.Valid {
		return c
	}
	return amharic.Correlation{Value: c.Rounded(3), Valid: true}
}

func (d Document) Summary() DocumentSummary {
	return DocumentSummary{
		ID:              d.ID,
		Title:           d.Title,
		Type:            d.Type,
		UploadedAt:      d.UploadedAt,
		Language:        d.Language(),
		WordCount:       d.WordCount(),
		UniqueWords:     d.UniqueWords(),
		ZipfCorrelation: d.ZipfCorrelation(),
		IndexTerms:      d.Analysis.IndexTerms,
	}
}

// Visualize returns the token stages of the analysis side by side.
func (d Document) Visualize() Visualization {
	return Visualization{
		ID:             d.ID,
		Title:          d.Title,
		Tokens:         d.Analysis.OriginalTokens,
		FilteredTokens: d.Analysis.FilteredTokens,
		StemmedTokens:  d.Analysis.StemmedTokens,
		IndexTerms:     d.Analysis.IndexTerms,
		FrequencyTable: d.Analysis.FrequencyTable,
	}
}

// DocumentSummary is what listings show: the derived figures without the
// content and token lists.
type DocumentSummary struct {
	ID              int64
	Title           string
	Type            DocumentType
	UploadedAt      time.Time
	Language        amharic.Language
	WordCount       int
	UniqueWords     int
	ZipfCorrelation amharic.Correlation
	IndexTerms      []string
}

type Visualization struct {
	ID             int64
	Title          string
	Tokens         []string
	FilteredTokens []string
	StemmedTokens  []string
	IndexTerms     []string
	FrequencyTable []amharic.FrequencyEntry
}

// BatchResult maps file paths to their analyses. Files that could not be
// read or analyzed are listed in Failed with the reason.
type BatchResult struct {
	Results map[string]amharic.Result
	Failed  map[string]string
}
