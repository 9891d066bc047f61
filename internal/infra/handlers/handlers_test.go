package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant/internal/domain/analysis"
	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/infra/logger"
	"sales-assistant/internal/infra/repository"
	"sales-assistant/internal/infra/services"
)

// mockLLM implements provider.ILLMProvider for testing
type mockLLM struct {
	CompleteFunc func(ctx context.Context, req dto.CompletionRequest) (string, error)
	calls        int
}

func (m *mockLLM) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	m.calls++
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return "generated", nil
}

type testServer struct {
	llm    *mockLLM
	router *mux.Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logger.Discard()

	llm := &mockLLM{}
	repo := repository.NewJSONFileRepository(filepath.Join(t.TempDir(), "data"), 100, log)
	learning := services.NewEmailLearningService(repo, analysis.NewAnalyzer(analysis.DefaultOptions()), log)
	generation := services.NewGenerationService(log, llm, learning, "James")

	gen := NewGenerationHandlers(log, generation)
	edits := NewEmailEditHandlers(log, learning)

	router := mux.NewRouter()
	router.HandleFunc("/api/generate-agenda", gen.GenerateAgenda).Methods(http.MethodPost)
	router.HandleFunc("/api/generate-follow-up", gen.GenerateFollowUp).Methods(http.MethodPost)
	router.HandleFunc("/api/save-email-edit", edits.SaveEmailEdit).Methods(http.MethodPost)
	router.HandleFunc("/api/get-email-patterns", edits.GetEmailPatterns).Methods(http.MethodGet)

	return &testServer{llm: llm, router: router}
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGenerateAgendaMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing account", `{"transcript":{"id":"t1","callType":"discovery"}}`},
		{"missing transcript", `{"account":{"name":"Acme"}}`},
		{"null account", `{"transcript":{"id":"t1"},"account":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rec := ts.do(http.MethodPost, "/api/generate-agenda", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeBody[dto.ErrorResponse](t, rec).Error)
			assert.Zero(t, ts.llm.calls)
		})
	}
}

func TestGenerateAgendaInvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodPost, "/api/generate-agenda", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, ts.llm.calls)
}

func TestGenerateAgendaSuccess(t *testing.T) {
	ts := newTestServer(t)
	ts.llm.CompleteFunc = func(ctx context.Context, req dto.CompletionRequest) (string, error) {
		return "## Agenda\n- Recap", nil
	}

	rec := ts.do(http.MethodPost, "/api/generate-agenda", `{"transcript":{"id":"t1","callType":"discovery","summary":"s"},"account":{"name":"Acme"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, dto.GenerateResponse{Success: true, Content: "## Agenda\n- Recap"}, decodeBody[dto.GenerateResponse](t, rec))
	assert.Equal(t, 1, ts.llm.calls)
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing key", errs.ErrMissingAPIKey, http.StatusInternalServerError, "Server configuration error: LLM API key is not set"},
		{"upstream", &errs.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: "Rate limited"}, http.StatusTooManyRequests, "Rate limited"},
		{"network", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Failed to generate follow-up email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.llm.CompleteFunc = func(ctx context.Context, req dto.CompletionRequest) (string, error) {
				return "", tt.err
			}

			rec := ts.do(http.MethodPost, "/api/generate-follow-up", `{"transcript":{"id":"t1"}}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody[dto.ErrorResponse](t, rec).Error)
		})
	}
}

func TestGenerateFollowUpAccountOptional(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/generate-follow-up", `{"transcript":{"id":"t1","summary":"Pricing"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ts.llm.calls)

	rec = ts.do(http.MethodPost, "/api/generate-follow-up", `{"account":{"name":"Acme"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, ts.llm.calls)
}

func TestSaveEditThenGetPatterns(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/get-email-patterns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeBody[dto.EmailPatternsResponse](t, rec)
	assert.True(t, empty.Success)
	assert.False(t, empty.HasPatterns)
	assert.Zero(t, empty.TotalEdits)

	body := `{"original":"Subject: Recap\nHi Ana,\nThanks.\nBest,\nJames","edited":"Subject: Next steps\nHi Ana,\nThanks.\nBest,\nJames","transcriptId":"t1","accountId":"a1","accountName":"Acme","callType":"demo","timestamp":"2024-05-01T10:00:00Z"}`
	rec = ts.do(http.MethodPost, "/api/save-email-edit", body)
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeBody[dto.SaveEmailEditResponse](t, rec)
	assert.True(t, saved.Success)
	assert.Equal(t, 1, saved.PatternsDetected)
	assert.NotEmpty(t, saved.Message)

	rec = ts.do(http.MethodGet, "/api/get-email-patterns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[dto.EmailPatternsResponse](t, rec)
	assert.True(t, got.HasPatterns)
	assert.Equal(t, 1, got.TotalEdits)
	require.NotNil(t, got.Patterns)
	require.Len(t, got.Patterns.SubjectChanges, 1)
	assert.Equal(t, "Next steps", got.Patterns.SubjectChanges[0].After)
	assert.Contains(t, got.StyleGuide, `"Recap" -> "Next steps"`)

	ts.llm.CompleteFunc = func(ctx context.Context, req dto.CompletionRequest) (string, error) {
		assert.Contains(t, req.User, "LEARNED STYLE PREFERENCES")
		return "ok", nil
	}
	rec = ts.do(http.MethodPost, "/api/generate-follow-up", `{"transcript":{"id":"t2"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveEditValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/save-email-edit", `{"original":"only this"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/save-email-edit", `[]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrongMethod(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/generate-agenda", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, ts.llm.calls)
}
