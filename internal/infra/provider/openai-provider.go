package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/infra/logger"
)

var _ ILLMProvider = (*OpenAIProvider)(nil)

type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// OpenAIProvider talks to any OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	Config     OpenAIConfig
}

func NewOpenAIProvider(logger *logger.Logger, httpClient *http.Client, cfg OpenAIConfig) *OpenAIProvider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &OpenAIProvider{Logger: logger, HttpClient: httpClient, Config: cfg}
}

func (th *OpenAIProvider) Complete(ctx context.Context, req dto.CompletionRequest) (string, error) {
	apiKey := strings.TrimSpace(th.Config.APIKey)
	if apiKey == "" {
		th.Logger.Error("OPENAI_API_KEY is not set")
		return "", errs.ErrMissingAPIKey
	}

	client := openaigo.NewClient(
		option.WithBaseURL(strings.TrimRight(th.Config.BaseURL, "/")),
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(th.HttpClient),
		option.WithMaxRetries(0),
	)

	params := openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(th.Config.Model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(req.System),
			openaigo.UserMessage(req.User),
		},
	}
	if th.Config.MaxTokens > 0 {
		params.MaxCompletionTokens = param.NewOpt(int64(th.Config.MaxTokens))
	}

	completion, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openaigo.Error
		if errors.As(err, &apiErr) {
			th.Logger.Error(fmt.Sprintf("LLM provider returned status %d", apiErr.StatusCode))
			msg := apiErr.Message
			if msg == "" {
				msg = http.StatusText(apiErr.StatusCode)
			}
			return "", &errs.UpstreamError{StatusCode: apiErr.StatusCode, Message: msg}
		}
		th.Logger.Error(fmt.Sprintf("HTTP request to LLM provider failed: %v", err))
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.New("LLM response contained no text content")
	}
	return completion.Choices[0].Message.Content, nil
}
