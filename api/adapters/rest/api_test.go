package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amharic.dev/analyzer/amharic"
	"amharic.dev/analyzer/api/core"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.err
}

type mockAuthenticator struct {
	token        string
	err          error
	lastUser     string
	lastPassword string
}

func (m *mockAuthenticator) Login(user, password string) (string, error) {
	m.lastUser = user
	m.lastPassword = password
	return m.token, m.err
}

type mockDocuments struct {
	uploadFn func(ctx context.Context, u core.Upload) (core.Document, error)
	getFn    func(ctx context.Context, id int64) (core.Document, error)
	listFn   func(ctx context.Context) ([]core.DocumentSummary, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockDocuments) Upload(ctx context.Context, u core.Upload) (core.Document, error) {
	if m.uploadFn == nil {
		return core.Document{}, nil
	}
	return m.uploadFn(ctx, u)
}

func (m *mockDocuments) Get(ctx context.Context, id int64) (core.Document, error) {
	if m.getFn == nil {
		return core.Document{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockDocuments) List(ctx context.Context) ([]core.DocumentSummary, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockDocuments) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockTextAnalyzer struct {
	analyzeFn func(ctx context.Context, text string) (amharic.Result, error)
}

func (m *mockTextAnalyzer) Analyze(ctx context.Context, text string) (amharic.Result, error) {
	if m.analyzeFn == nil {
		return amharic.Analyze(text), nil
	}
	return m.analyzeFn(ctx, text)
}

type mockBatch struct {
	analyzeDirectoryFn func(ctx context.Context, dir string, extensions []string) (core.BatchResult, error)
}

func (m *mockBatch) AnalyzeDirectory(ctx context.Context, dir string, extensions []string) (core.BatchResult, error) {
	return m.analyzeDirectoryFn(ctx, dir, extensions)
}

// serve routes req through a mux so that path values are set.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, h)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestNewPingHandler_MixedReplies(t *testing.T) {
	pingers := map[string]core.Pinger{
		"analysis": &mockPinger{err: nil},
		"db":       &mockPinger{err: errors.New("down")},
	}
	h := NewPingHandler(newTestLogger(), pingers)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp PingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Replies["analysis"])
	assert.Equal(t, "unavailable", resp.Replies["db"])
}

func TestNewLoginHandler(t *testing.T) {
	auth := &mockAuthenticator{token: "jwt"}
	h := NewLoginHandler(newTestLogger(), auth)

	body := strings.NewReader(`{"name":"admin","password":"secret"}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/login", body))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "jwt", rr.Body.String())
	assert.Equal(t, "admin", auth.lastUser)
	assert.Equal(t, "secret", auth.lastPassword)
}

func TestNewLoginHandler_Errors(t *testing.T) {
	h := NewLoginHandler(newTestLogger(), &mockAuthenticator{err: errors.New("invalid credentials")})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"name":"x"}`)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewAnalyzeHandler(t *testing.T) {
	h := NewAnalyzeHandler(newTestLogger(), &mockTextAnalyzer{}, 1<<10)

	body := strings.NewReader(`{"text":"ሰላም ሰላም ለአለም"}`)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/analyze", body))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "am", resp["detected_language"])
	assert.Equal(t, float64(3), resp["total_words"])
	assert.Equal(t, []any{"ሰላም", "ሰላም", "ለአለም"}, resp["original_tokens"])
	assert.Contains(t, resp, "zipf_correlation")
}

func TestNewAnalyzeHandler_Errors(t *testing.T) {
	testCases := []struct {
		desc     string
		body     string
		err      error
		expected int
	}{
		{desc: "bad json", body: `{"text":`, expected: http.StatusBadRequest},
		{desc: "too large", body: `{"text":"` + strings.Repeat("ሀ", 1000) + `"}`, expected: http.StatusRequestEntityTooLarge},
		{desc: "rejected", body: `{"text":"x"}`, err: core.ErrBadArguments, expected: http.StatusBadRequest},
		{desc: "unavailable", body: `{"text":"x"}`, err: core.ErrUnavailable, expected: http.StatusServiceUnavailable},
		{desc: "internal", body: `{"text":"x"}`, err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			analyzer := &mockTextAnalyzer{
				analyzeFn: func(ctx context.Context, text string) (amharic.Result, error) {
					return amharic.Result{}, tc.err
				},
			}
			h := NewAnalyzeHandler(newTestLogger(), analyzer, 1<<10)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(tc.body)))
			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}

func multipartBody(t *testing.T, fields map[string]string, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile(formFile, filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestNewUploadHandler(t *testing.T) {
	var got core.Upload
	docs := &mockDocuments{
		uploadFn: func(ctx context.Context, u core.Upload) (core.Document, error) {
			got = u
			return core.Document{
				ID:         7,
				Title:      u.Title,
				Type:       u.Type,
				Filename:   u.Filename,
				UploadedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Analysis:   amharic.Analyze(string(u.Content)),
			}, nil
		},
	}
	h := NewUploadHandler(newTestLogger(), docs, 1<<20)

	body, contentType := multipartBody(t, nil, "news/ዜና.html", "<p>ሰነድ ሰነድ ቃል</p>")
	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/documents/7", rr.Header().Get("Location"))
	assert.Equal(t, "ዜና", got.Title)
	assert.Equal(t, core.DocumentHTML, got.Type)

	var resp DocumentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "html", resp.DocumentType)
	assert.Equal(t, 3, resp.WordCount)
	assert.Equal(t, 2, resp.UniqueWords)
	assert.Equal(t, "ዜና.html", resp.Filename)
}

func TestNewUploadHandler_ExplicitFields(t *testing.T) {
	var got core.Upload
	docs := &mockDocuments{
		uploadFn: func(ctx context.Context, u core.Upload) (core.Document, error) {
			got = u
			return core.Document{ID: 1}, nil
		},
	}
	h := NewUploadHandler(newTestLogger(), docs, 1<<20)

	body, contentType := multipartBody(t, map[string]string{"title": "ርዕስ", "document_type": "xml"}, "data.bin", "<a/>")
	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "ርዕስ", got.Title)
	assert.Equal(t, core.DocumentXML, got.Type)
	assert.Equal(t, []byte("<a/>"), got.Content)
}

func TestNewUploadHandler_Errors(t *testing.T) {
	testCases := []struct {
		desc     string
		filename string
		content  string
		err      error
		expected int
	}{
		{desc: "no file", expected: http.StatusBadRequest},
		{desc: "unknown extension", filename: "a.pdf", content: "x", expected: http.StatusBadRequest},
		{desc: "malformed", filename: "a.xml", content: "<a>", err: core.ErrMalformedDocument, expected: http.StatusUnprocessableEntity},
		{desc: "too large", filename: "a.txt", content: strings.Repeat("ሀ", 2000), expected: http.StatusRequestEntityTooLarge},
		{desc: "storage down", filename: "a.txt", content: "x", err: assert.AnError, expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			docs := &mockDocuments{
				uploadFn: func(ctx context.Context, u core.Upload) (core.Document, error) {
					return core.Document{}, tc.err
				},
			}
			h := NewUploadHandler(newTestLogger(), docs, 4<<10)

			body, contentType := multipartBody(t, nil, tc.filename, tc.content)
			req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}

func TestNewUploadHandler_NotMultipart(t *testing.T) {
	h := NewUploadHandler(newTestLogger(), &mockDocuments{}, 1<<20)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/documents", strings.NewReader("{}")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewListHandler(t *testing.T) {
	docs := &mockDocuments{
		listFn: func(ctx context.Context) ([]core.DocumentSummary, error) {
			return []core.DocumentSummary{
				{ID: 2, Title: "b", Type: core.DocumentText, Language: amharic.LanguageAmharic, WordCount: 5,
					ZipfCorrelation: amharic.Correlation{Value: 0.9, Valid: true}, IndexTerms: []string{"ቃል"}},
				{ID: 1, Title: "a", Type: core.DocumentXML, Language: amharic.LanguageUnknown},
			}, nil
		},
	}
	h := NewListHandler(newTestLogger(), docs)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/documents", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Documents []map[string]any `json:"documents"`
		Total     int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, 0.9, resp.Documents[0]["zipf_correlation"])
	assert.Equal(t, []any{"ቃል"}, resp.Documents[0]["index_terms"])
	assert.Nil(t, resp.Documents[1]["zipf_correlation"])
	assert.Equal(t, []any{}, resp.Documents[1]["index_terms"])
}

func TestNewListHandler_Empty(t *testing.T) {
	h := NewListHandler(newTestLogger(), &mockDocuments{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/documents", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"documents":[],"total":0}`, rr.Body.String())
}

func TestNewDetailHandler(t *testing.T) {
	docs := &mockDocuments{
		getFn: func(ctx context.Context, id int64) (core.Document, error) {
			if id != 4 {
				return core.Document{}, core.ErrNotFound
			}
			return core.Document{ID: 4, Title: "ሰነድ", Analysis: amharic.Analyze("ሰነድ ቃል")}, nil
		},
	}
	h := NewDetailHandler(newTestLogger(), docs)

	rr := serve("GET /api/documents/{id}", h, httptest.NewRequest(http.MethodGet, "/api/documents/4", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp DocumentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ሰነድ", resp.Title)
	assert.Equal(t, []string{"ሰነድ", "ቃል"}, resp.Analysis.OriginalTokens)

	rr = serve("GET /api/documents/{id}", h, httptest.NewRequest(http.MethodGet, "/api/documents/5", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve("GET /api/documents/{id}", h, httptest.NewRequest(http.MethodGet, "/api/documents/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewVisualizeHandler(t *testing.T) {
	docs := &mockDocuments{
		getFn: func(ctx context.Context, id int64) (core.Document, error) {
			return core.Document{ID: id, Title: "t", Analysis: amharic.Analyze("የአማርኛ ሰነድ")}, nil
		},
	}
	h := NewVisualizeHandler(newTestLogger(), docs)

	rr := serve("GET /api/documents/{id}/visualize", h,
		httptest.NewRequest(http.MethodGet, "/api/documents/3/visualize", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp VisualizationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, []string{"የአማርኛ", "ሰነድ"}, resp.Tokens)
	assert.Equal(t, []string{"አማርኛ", "ሰነድ"}, resp.StemmedTokens)
	assert.NotNil(t, resp.IndexTerms)
}

func TestNewDeleteHandler(t *testing.T) {
	docs := &mockDocuments{
		deleteFn: func(ctx context.Context, id int64) error {
			if id == 9 {
				return core.ErrNotFound
			}
			return nil
		},
	}
	h := NewDeleteHandler(newTestLogger(), docs)

	rr := serve("DELETE /api/documents/{id}", h, httptest.NewRequest(http.MethodDelete, "/api/documents/1", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve("DELETE /api/documents/{id}", h, httptest.NewRequest(http.MethodDelete, "/api/documents/9", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve("DELETE /api/documents/{id}", h, httptest.NewRequest(http.MethodDelete, "/api/documents/0", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNewBatchHandler(t *testing.T) {
	batch := &mockBatch{
		analyzeDirectoryFn: func(ctx context.Context, dir string, extensions []string) (core.BatchResult, error) {
			assert.Equal(t, "news", dir)
			assert.Equal(t, []string{".txt"}, extensions)
			return core.BatchResult{
				Results: map[string]amharic.Result{"news/a.txt": amharic.Analyze("ሰላም")},
				Failed:  map[string]string{"news/b.txt": "malformed document"},
			}, nil
		},
	}
	h := NewBatchHandler(newTestLogger(), batch)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/batch",
		strings.NewReader(`{"dir":"news","extensions":[".txt"]}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Results["news/a.txt"].TotalWords)
	assert.Equal(t, "malformed document", resp.Failed["news/b.txt"])
}

func TestNewBatchHandler_Errors(t *testing.T) {
	testCases := []struct {
		desc     string
		err      error
		expected int
	}{
		{desc: "missing dir", err: core.ErrNotFound, expected: http.StatusNotFound},
		{desc: "escape", err: core.ErrBadArguments, expected: http.StatusBadRequest},
		{desc: "internal", err: assert.AnError, expected: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			batch := &mockBatch{
				analyzeDirectoryFn: func(ctx context.Context, dir string, extensions []string) (core.BatchResult, error) {
					assert.Equal(t, ".", dir)
					return core.BatchResult{}, tc.err
				},
			}
			h := NewBatchHandler(newTestLogger(), batch)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(`{}`)))
			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}
