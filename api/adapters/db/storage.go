package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"amharic.dev/analyzer/amharic"
	"amharic.dev/analyzer/api/core"
)

const (
	maxAttempts = 5
	// serialization_failure and deadlock_detected
	codeSerialization = "40001"
	codeDeadlock      = "40P01"
)

var retryDelay = 150 * time.Millisecond

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	conn, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "error", err)
		return nil, err
	}
	return &DB{
		log:  log,
		conn: conn,
	}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

func isRetryable(err error) bool {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return false
	}
	return pg.Code == codeSerialization || pg.Code == codeDeadlock
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// runs out of attempts.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil || !isRetryable(err) {
			return err
		}
		db.log.Warn("retrying", "op", op, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryDelay):
		}
	}
	return err
}

type documentRow struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Type       string    `db:"document_type"`
	Filename   string    `db:"filename"`
	Content    string    `db:"content"`
	UploadedAt time.Time `db:"uploaded_at"`
	Analysis   []byte    `db:"analysis"`
}

type summaryRow struct {
	ID              int64           `db:"id"`
	Title           string          `db:"title"`
	Type            string          `db:"document_type"`
	UploadedAt      time.Time       `db:"uploaded_at"`
	Language        string          `db:"detected_language"`
	TotalWords      int             `db:"total_words"`
	UniqueWords     int             `db:"unique_words"`
	ZipfCorrelation sql.NullFloat64 `db:"zipf_correlation"`
	IndexTerms      pq.StringArray  `db:"index_terms"`
}

func (r summaryRow) toCore() core.DocumentSummary {
	s := core.DocumentSummary{
		ID:          r.ID,
		Title:       r.Title,
		Type:        core.DocumentType(r.Type),
		UploadedAt:  r.UploadedAt,
		Language:    amharic.Language(r.Language),
		WordCount:   r.TotalWords,
		UniqueWords: r.UniqueWords,
		IndexTerms:  []string(r.IndexTerms),
	}
	if r.ZipfCorrelation.Valid {
		s.ZipfCorrelation = amharic.Correlation{Value: r.ZipfCorrelation.Float64, Valid: true}
	}
	if s.IndexTerms == nil {
		s.IndexTerms = []string{}
	}
	return s
}

const insertDocument = `
	INSERT INTO documents (title, document_type, filename, content, detected_language,
		total_words, unique_words, zipf_correlation, index_terms, analysis)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, uploaded_at`

func (db *DB) Add(ctx context.Context, doc core.Document) (core.Document, error) {
	analysis, err := json.Marshal(doc.Analysis)
	if err != nil {
		return core.Document{}, fmt.Errorf("cannot encode analysis: %w", err)
	}

	s := doc.Summary()
	var zipf sql.NullFloat64
	if s.ZipfCorrelation.Valid {
		zipf = sql.NullFloat64{Float64: s.ZipfCorrelation.Value, Valid: true}
	}
	terms := pq.StringArray(s.IndexTerms)
	if terms == nil {
		terms = pq.StringArray{}
	}

	var inserted struct {
		ID         int64     `db:"id"`
		UploadedAt time.Time `db:"uploaded_at"`
	}
	err = db.withRetry(ctx, "add", func() error {
		return db.conn.GetContext(ctx, &inserted, insertDocument,
			doc.Title, string(doc.Type), doc.Filename, doc.Content, string(s.Language),
			s.WordCount, s.UniqueWords, zipf, terms, analysis,
		)
	})
	if err != nil {
		return core.Document{}, err
	}

	doc.ID = inserted.ID
	doc.UploadedAt = inserted.UploadedAt
	return doc, nil
}

func (db *DB) Get(ctx context.Context, id int64) (core.Document, error) {
	var row documentRow
	err := db.conn.GetContext(ctx, &row, `
		SELECT id, title, document_type, filename, content, uploaded_at, analysis
		FROM documents WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Document{}, fmt.Errorf("%w: document %d", core.ErrNotFound, id)
		}
		return core.Document{}, err
	}

	doc := core.Document{
		ID:         row.ID,
		Title:      row.Title,
		Type:       core.DocumentType(row.Type),
		Filename:   row.Filename,
		Content:    row.Content,
		UploadedAt: row.UploadedAt,
	}
	if err := json.Unmarshal(row.Analysis, &doc.Analysis); err != nil {
		return core.Document{}, fmt.Errorf("cannot decode analysis of document %d: %w", id, err)
	}
	return doc, nil
}

func (db *DB) List(ctx context.Context) ([]core.DocumentSummary, error) {
	var rows []summaryRow
	err := db.conn.SelectContext(ctx, &rows, `
		SELECT id, title, document_type, uploaded_at, detected_language,
			total_words, unique_words, zipf_correlation, index_terms
		FROM documents ORDER BY uploaded_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}

	docs := make([]core.DocumentSummary, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.toCore())
	}
	return docs, nil
}

func (db *DB) Delete(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: document %d", core.ErrNotFound, id)
	}
	return nil
}
