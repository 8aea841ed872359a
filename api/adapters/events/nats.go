package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"amharic.dev/analyzer/amharic"
	"amharic.dev/analyzer/api/core"
)

const SubjectAnalyzed = "documents.analyzed"

// used for flushes when the context carries no deadline
const flushTimeout = 2 * time.Second

// AnalyzedEvent is published after a document is stored.
type AnalyzedEvent struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title"`
	Type            string              `json:"document_type"`
	Language        amharic.Language    `json:"detected_language"`
	WordCount       int                 `json:"word_count"`
	UniqueWords     int                 `json:"unique_words"`
	ZipfCorrelation amharic.Correlation `json:"zipf_correlation"`
	IndexTerms      []string            `json:"index_terms"`
	UploadedAt      time.Time           `json:"uploaded_at"`
}

func newAnalyzedEvent(doc core.DocumentSummary) AnalyzedEvent {
	terms := doc.IndexTerms
	if terms == nil {
		terms = []string{}
	}
	return AnalyzedEvent{
		ID:              doc.ID,
		Title:           doc.Title,
		Type:            string(doc.Type),
		Language:        doc.Language,
		WordCount:       doc.WordCount,
		UniqueWords:     doc.UniqueWords,
		ZipfCorrelation: doc.ZipfCorrelation,
		IndexTerms:      terms,
		UploadedAt:      doc.UploadedAt,
	}
}

type NatsPublisher struct {
	log *slog.Logger
	nc  *nats.Conn
}

func NewNatsPublisher(address string, log *slog.Logger) (*NatsPublisher, error) {
	nc, err := nats.Connect(address,
		nats.Name("amharic-api"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("disconnected from broker", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("reconnected to broker", "address", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Info("connected to broker", "address", address)

	return &NatsPublisher{
		log: log,
		nc:  nc,
	}, nil
}

func (p *NatsPublisher) NotifyAnalyzed(ctx context.Context, doc core.DocumentSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(newAnalyzedEvent(doc))
	if err != nil {
		return err
	}
	if err := p.nc.Publish(SubjectAnalyzed, data); err != nil {
		return err
	}
	return p.flush(ctx)
}

func (p *NatsPublisher) Ping(ctx context.Context) error {
	if !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	return p.flush(ctx)
}

// FlushWithContext refuses contexts without a deadline.
func (p *NatsPublisher) flush(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel := context.WithTimeout(ctx, flushTimeout)
		defer cancel()
		return p.nc.FlushWithContext(ctx)
	}
	return p.nc.FlushWithContext(ctx)
}

func (p *NatsPublisher) Close() error {
	return p.nc.Drain()
}
