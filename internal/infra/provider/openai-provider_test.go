package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/infra/logger"
)

func newOpenAI(baseURL, key string) *OpenAIProvider {
	return NewOpenAIProvider(logger.Discard(), nil, OpenAIConfig{
		APIKey:    key,
		BaseURL:   baseURL,
		Model:     "gpt-test",
		MaxTokens: 500,
	})
}

func TestOpenAICompleteReturnsFirstChoice(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-test","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Subject: Thanks"}}]}`))
	}))
	defer srv.Close()

	out, err := newOpenAI(srv.URL, "secret").Complete(context.Background(), dto.CompletionRequest{System: "sys", User: "usr"})
	require.NoError(t, err)
	assert.Equal(t, "Subject: Thanks", out)
	assert.Equal(t, "gpt-test", got["model"])
	assert.Len(t, got["messages"], 2)
}

func TestOpenAICompleteMissingKey(t *testing.T) {
	_, err := newOpenAI("http://127.0.0.1:0", "").Complete(context.Background(), dto.CompletionRequest{})
	assert.ErrorIs(t, err, errs.ErrMissingAPIKey)
}

func TestOpenAICompleteUpstreamError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	_, err := newOpenAI(srv.URL, "wrong").Complete(context.Background(), dto.CompletionRequest{})

	var upstream *errs.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.NotEmpty(t, upstream.Message)
	assert.Equal(t, 1, calls)
}
