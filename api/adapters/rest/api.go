package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"amharic.dev/analyzer/amharic"
	"amharic.dev/analyzer/api/core"
)

const formFile = "document"

func writeJSON(log *slog.Logger, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("cannot encode reply", "error", err)
	}
}

// writeError maps service errors onto status codes. Internal errors are
// logged and hidden from the client.
func writeError(log *slog.Logger, w http.ResponseWriter, op string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, core.ErrBadArguments):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrMalformedDocument):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, core.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrUnavailable):
		log.Error(op+" failed", "error", err)
		http.Error(w, "analysis service unavailable", http.StatusServiceUnavailable)
	default:
		log.Error(op+" failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

type PingResponse struct {
	Replies map[string]string `json:"replies"`
}

func NewPingHandler(log *slog.Logger, pingers map[string]core.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := PingResponse{
			Replies: make(map[string]string, len(pingers)),
		}
		for name, pinger := range pingers {
			if err := pinger.Ping(r.Context()); err != nil {
				reply.Replies[name] = "unavailable"
				log.Error("one of services is not available", "service", name, "error", err)
				continue
			}
			reply.Replies[name] = "ok"
		}
		writeJSON(log, w, http.StatusOK, reply)
	}
}

type Authenticator interface {
	Login(user, password string) (string, error)
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func NewLoginHandler(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("cannot decode login request", "error", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		token, err := auth.Login(req.Name, req.Password)
		if err != nil {
			log.Error("cannot login", "user", req.Name, "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(token)); err != nil {
			log.Error("cannot write login response", "error", err)
		}
	}
}

type AnalyzeRequest struct {
	Text string `json:"text"`
}

// NewAnalyzeHandler analyzes raw text without storing it.
func NewAnalyzeHandler(log *slog.Logger, analyzer core.TextAnalyzer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(log, w, "analyze", err)
				return
			}
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		res, err := analyzer.Analyze(r.Context(), req.Text)
		if err != nil {
			writeError(log, w, "analyze", err)
			return
		}
		writeJSON(log, w, http.StatusOK, res)
	}
}

type DocumentSummaryResponse struct {
	ID              int64               `json:"id"`
	Title           string              `json:"title"`
	DocumentType    string              `json:"document_type"`
	UploadedAt      time.Time           `json:"uploaded_at"`
	Language        amharic.Language    `json:"detected_language"`
	WordCount       int                 `json:"word_count"`
	UniqueWords     int                 `json:"unique_words"`
	ZipfCorrelation amharic.Correlation `json:"zipf_correlation"`
	IndexTerms      []string            `json:"index_terms"`
}

func newSummaryResponse(s core.DocumentSummary) DocumentSummaryResponse {
	terms := s.IndexTerms
	if terms == nil {
		terms = []string{}
	}
	return DocumentSummaryResponse{
		ID:              s.ID,
		Title:           s.Title,
		DocumentType:    string(s.Type),
		UploadedAt:      s.UploadedAt,
		Language:        s.Language,
		WordCount:       s.WordCount,
		UniqueWords:     s.UniqueWords,
		ZipfCorrelation: s.ZipfCorrelation,
		IndexTerms:      terms,
	}
}

type DocumentResponse struct {
	DocumentSummaryResponse
	Filename string         `json:"filename"`
	Analysis amharic.Result `json:"analysis"`
}

func newDocumentResponse(doc core.Document) DocumentResponse {
	return DocumentResponse{
		DocumentSummaryResponse: newSummaryResponse(doc.Summary()),
		Filename:                doc.Filename,
		Analysis:                doc.Analysis,
	}
}

// NewUploadHandler accepts a multipart form with a document file field and optional
// title and document_type fields. Both default from the file name.
func NewUploadHandler(log *slog.Logger, docs core.Documents, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		}
		if err := r.ParseMultipartForm(max(maxBytes, 1<<20)); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(log, w, "upload", err)
				return
			}
			http.Error(w, "expected multipart form", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Error("cannot remove form files", "error", err)
			}
		}()

		file, header, err := r.FormFile(formFile)
		if err != nil {
			http.Error(w, "missing file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			writeError(log, w, "upload", err)
			return
		}

		title := r.FormValue("title")
		if strings.TrimSpace(title) == "" {
			title = strings.TrimSuffix(path.Base(header.Filename), path.Ext(header.Filename))
		}
		kind := core.DocumentType(r.FormValue("document_type"))
		if kind == "" {
			kind, err = core.DocumentTypeOf(header.Filename)
			if err != nil {
				writeError(log, w, "upload", err)
				return
			}
		}

		doc, err := docs.Upload(r.Context(), core.Upload{
			Title:    title,
			Type:     kind,
			Filename: header.Filename,
			Content:  content,
		})
		if err != nil {
			writeError(log, w, "upload", err)
			return
		}
		w.Header().Set("Location", "/api/documents/"+strconv.FormatInt(doc.ID, 10))
		writeJSON(log, w, http.StatusCreated, newDocumentResponse(doc))
	}
}

type ListResponse struct {
	Documents []DocumentSummaryResponse `json:"documents"`
	Total     int                       `json:"total"`
}

func NewListHandler(log *slog.Logger, docs core.Documents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := docs.List(r.Context())
		if err != nil {
			writeError(log, w, "list", err)
			return
		}
		reply := ListResponse{
			Documents: make([]DocumentSummaryResponse, 0, len(list)),
			Total:     len(list),
		}
		for _, s := range list {
			reply.Documents = append(reply.Documents, newSummaryResponse(s))
		}
		writeJSON(log, w, http.StatusOK, reply)
	}
}

func NewDetailHandler(log *slog.Logger, docs core.Documents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		doc, err := docs.Get(r.Context(), id)
		if err != nil {
			writeError(log, w, "get", err)
			return
		}
		writeJSON(log, w, http.StatusOK, newDocumentResponse(doc))
	}
}

type VisualizationResponse struct {
	ID             int64                    `json:"id"`
	Title          string                   `json:"title"`
	Tokens         []string                 `json:"tokens"`
	FilteredTokens []string                 `json:"filtered_tokens"`
	StemmedTokens  []string                 `json:"stemmed_tokens"`
	IndexTerms     []string                 `json:"index_terms"`
	FrequencyTable []amharic.FrequencyEntry `json:"frequency_table"`
}

func NewVisualizeHandler(log *slog.Logger, docs core.Documents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		doc, err := docs.Get(r.Context(), id)
		if err != nil {
			writeError(log, w, "visualize", err)
			return
		}
		v := doc.Visualize()
		writeJSON(log, w, http.StatusOK, VisualizationResponse{
			ID:             v.ID,
			Title:          v.Title,
			Tokens:         nonNil(v.Tokens),
			FilteredTokens: nonNil(v.FilteredTokens),
			StemmedTokens:  nonNil(v.StemmedTokens),
			IndexTerms:     nonNil(v.IndexTerms),
			FrequencyTable: nonNil(v.FrequencyTable),
		})
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func NewDeleteHandler(log *slog.Logger, docs core.Documents) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := docs.Delete(r.Context(), id); err != nil {
			writeError(log, w, "delete", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type BatchRequest struct {
	Dir        string   `json:"dir"`
	Extensions []string `json:"extensions"`
}

type BatchResponse struct {
	Results map[string]amharic.Result `json:"results"`
	Failed  map[string]string         `json:"failed"`
}

// NewBatchHandler analyzes a directory of the server's document library.
func NewBatchHandler(log *slog.Logger, batch core.BatchAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if req.Dir == "" {
			req.Dir = "."
		}

		res, err := batch.AnalyzeDirectory(r.Context(), req.Dir, req.Extensions)
		if err != nil {
			writeError(log, w, "batch", err)
			return
		}
		writeJSON(log, w, http.StatusOK, BatchResponse{
			Results: res.Results,
			Failed:  res.Failed,
		})
	}
}
