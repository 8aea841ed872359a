package core

import (
	"context"

	"amharic.dev/analyzer/amharic"
)

type DB interface {
	Add(ctx context.Context, doc Document) (Document, error)
	Get(ctx context.Context, id int64) (Document, error)
	List(ctx context.Context) ([]DocumentSummary, error)
	Delete(ctx context.Context, id int64) error
}

type Analyzer interface {
	Analyze(ctx context.Context, text string) (amharic.Result, error)
}

type Extractor interface {
	Extract(kind DocumentType, content []byte) (string, error)
}

// Library gives access to files below a fixed root. Paths are relative to
// that root.
type Library interface {
	Walk(dir string, extensions []string) ([]string, error)
	Load(path string) (string, error)
}

type EventPublisher interface {
	NotifyAnalyzed(ctx context.Context, doc DocumentSummary) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Documents interface {
	Upload(ctx context.Context, u Upload) (Document, error)
	Get(ctx context.Context, id int64) (Document, error)
	List(ctx context.Context) ([]DocumentSummary, error)
	Delete(ctx context.Context, id int64) error
}

type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (amharic.Result, error)
}

type BatchAnalyzer interface {
	AnalyzeDirectory(ctx context.Context, dir string, extensions []string) (BatchResult, error)
}
