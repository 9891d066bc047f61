package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/infra/logger"
)

var _ ILLMProvider = (*AnthropicProvider)(nil)

type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Version   string
	Model     string
	MaxTokens int
}

type AnthropicProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Config     AnthropicConfig
}

func NewAnthropicProvider(logger *logger.Logger, httpClient *http.Client, cfg AnthropicConfig) *AnthropicProvider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &AnthropicProvider{Logger: logger, HttpClient: httpClient, Config: cfg}
}

// Complete sends one Messages API request with the fixed model and token
// budget and returns the first text content block.
//
// Returns:
//   - errs.ErrMissingAPIKey when no credential is configured; no request is made.
//   - *errs.UpstreamError when the provider answers with a non-2xx status.
//   - a wrapped error for transport or decoding failures.
func (th *AnthropicProvider) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	if strings.TrimSpace(th.Config.APIKey) == "" {
		th.Logger.Error("ANTHROPIC_API_KEY is not set")
		return "", errs.ErrMissingAPIKey
	}

	payload, err := json.Marshal(dto.AnthropicMessagesRequest{
		Model:     th.Config.Model,
		MaxTokens: th.Config.MaxTokens,
		System:    req.System,
		Messages:  []dto.AnthropicMessage{{Role: "user", Content: req.User}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := strings.TrimRight(th.Config.BaseURL, "/") + "/v1/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("x-api-key", th.Config.APIKey)
	httpReq.Header.Set("anthropic-version", th.Config.Version)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	res, err := th.HttpClient.Do(httpReq)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("HTTP request to LLM provider failed: %v", err))
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		th.Logger.Error(fmt.Sprintf("LLM provider returned status %d", res.StatusCode), map[string]interface{}{
			"response_body": string(body),
		})
		return "", &errs.UpstreamError{StatusCode: res.StatusCode, Message: upstreamMessage(body, res.Status)}
	}

	var messages dto.AnthropicMessagesResponse
	if err := json.Unmarshal(body, &messages); err != nil {
		return "", fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	for _, block := range messages.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", errors.New("LLM response contained no text content")
}

func upstreamMessage(body []byte, status string) string {
	var apiErr dto.AnthropicErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return status
}
