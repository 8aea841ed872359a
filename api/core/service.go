package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"amharic.dev/analyzer/amharic"
)

type Service struct {
	log         *slog.Logger
	db          DB
	analyzer    Analyzer
	extractor   Extractor
	library     Library
	events      EventPublisher
	concurrency int
}

func NewService(
	log *slog.Logger,
	db DB,
	analyzer Analyzer,
	extractor Extractor,
	library Library,
	events EventPublisher,
	concurrency int,
) (*Service, error) {
	if concurrency < 1 {
		return nil, fmt.Errorf("wrong concurrency specified: %d", concurrency)
	}
	return &Service{
		log:         log,
		db:          db,
		analyzer:    analyzer,
		extractor:   extractor,
		library:     library,
		events:      events,
		concurrency: concurrency,
	}, nil
}

// Upload extracts the text of u, analyzes it and stores the document.
// A failed notification does not fail the upload.
func (s *Service) Upload(ctx context.Context, u Upload) (Document, error) {
	title := strings.TrimSpace(u.Title)
	if title == "" {
		return Document{}, fmt.Errorf("%w: empty title", ErrBadArguments)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return Document{}, fmt.Errorf("%w: title is longer than %d characters", ErrBadArguments, MaxTitleLength)
	}
	kind, err := ParseDocumentType(string(u.Type))
	if err != nil {
		return Document{}, err
	}

	text, err := s.extractor.Extract(kind, u.Content)
	if err != nil {
		return Document{}, err
	}

	res, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		return Document{}, fmt.Errorf("analyze %q: %w", title, err)
	}

	doc, err := s.db.Add(ctx, Document{
		Title:    title,
		Type:     kind,
		Filename: u.Filename,
		Content:  string(u.Content),
		Analysis: res,
	})
	if err != nil {
		return Document{}, fmt.Errorf("store %q: %w", title, err)
	}
	s.log.Info("document analyzed",
		"id", doc.ID,
		"language", doc.Language(),
		"words", doc.WordCount(),
		"unique", doc.UniqueWords(),
	)

	if err := s.events.NotifyAnalyzed(ctx, doc.Summary()); err != nil {
		s.log.Error("cannot notify about analyzed document", "id", doc.ID, "error", err)
	}
	return doc, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	if id < 1 {
		return Document{}, fmt.Errorf("%w: bad id %d", ErrBadArguments, id)
	}
	return s.db.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]DocumentSummary, error) {
	return s.db.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: bad id %d", ErrBadArguments, id)
	}
	if err := s.db.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("document deleted", "id", id)
	return nil
}

// Analyze runs the analysis on raw text without storing anything.
func (s *Service) Analyze(ctx context.Context, text string) (amharic.Result, error) {
	return s.analyzer.Analyze(ctx, text)
}

type fileOutcome struct {
	path   string
	result amharic.Result
	err    error
}

func (s *Service) worker(ctx context.Context, jobs <-chan string, out chan<- fileOutcome) {
	for path := range jobs {
		text, err := s.library.Load(path)
		if err != nil {
			s.log.Error("cannot load file", "path", path, "error", err)
			out <- fileOutcome{path: path, err: err}
			continue
		}
		res, err := s.analyzer.Analyze(ctx, text)
		if err != nil {
			s.log.Error("cannot analyze file", "path", path, "error", err)
			out <- fileOutcome{path: path, err: err}
			continue
		}
		out <- fileOutcome{path: path, result: res}
	}
}

// AnalyzeDirectory analyzes every file below dir whose extension is in
// extensions. Failures of single files are collected, not returned.
func (s *Service) AnalyzeDirectory(ctx context.Context, dir string, extensions []string) (BatchResult, error) {
	paths, err := s.library.Walk(dir, extensions)
	if err != nil {
		return BatchResult{}, err
	}

	batch := BatchResult{
		Results: make(map[string]amharic.Result, len(paths)),
		Failed:  make(map[string]string),
	}
	if len(paths) == 0 {
		return batch, nil
	}

	jobs := make(chan string, s.concurrency*2)
	out := make(chan fileOutcome, s.concurrency)
	var wg sync.WaitGroup

	for range min(s.concurrency, len(paths)) {
		wg.Go(func() {
			s.worker(ctx, jobs, out)
		})
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		defer close(jobs)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case jobs <- p:
			}
		}
	}()

	for o := range out {
		if o.err != nil {
			batch.Failed[o.path] = o.err.Error()
			continue
		}
		batch.Results[o.path] = o.result
	}
	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}

	s.log.Info("directory analyzed", "dir", dir, "files", len(batch.Results), "failed", len(batch.Failed))
	return batch, nil
}
