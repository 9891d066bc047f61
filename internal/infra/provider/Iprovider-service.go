package provider

import (
	"context"

	"sales-assistant/internal/domain/dto"
)

type ILLMProvider interface {
	// Complete sends one prompt pair and returns the first text block of the reply.
	Complete(ctx context.Context, req dto.CompletionRequest) (string, error)
}
