package Iservices

import (
	"context"

	"sales-assistant/internal/domain/dto"
)

type IEmailLearningService interface {
	SaveEdit(ctx context.Context, input dto.SaveEmailEditRequest) (dto.SaveEmailEditResponse, error)
	GetPatterns(ctx context.Context) (dto.EmailPatternsResponse, error)
	// StyleGuide renders the learned preferences, or "" when there is no history.
	StyleGuide(ctx context.Context) string
}
