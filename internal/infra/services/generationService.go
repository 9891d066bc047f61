package services

import (
	"context"
	"fmt"

	"sales-assistant/internal/domain/entities"
	"sales-assistant/internal/domain/errs"
	Iservices "sales-assistant/internal/domain/interfaces/services"
	"sales-assistant/internal/domain/prompts"
	"sales-assistant/internal/infra/logger"
	"sales-assistant/internal/infra/provider"
)

var _ Iservices.IGenerationService = (*GenerationService)(nil)

type GenerationService struct {
	Logger          *logger.Logger
	LLMProvider     provider.ILLMProvider
	LearningService Iservices.IEmailLearningService
	SignerName      string
}

func NewGenerationService(logger *logger.Logger, llmProvider provider.ILLMProvider, learningService Iservices.IEmailLearningService, signerName string) *GenerationService {
	return &GenerationService{
		Logger:          logger,
		LLMProvider:     llmProvider,
		LearningService: learningService,
		SignerName:      signerName,
	}
}

// GenerateAgenda builds the agenda prompt and returns the model output verbatim.
func (gs *GenerationService) GenerateAgenda(ctx context.Context, transcript *entities.Transcript, account *entities.Account) (string, error) {
	if transcript == nil || account == nil {
		return "", errs.InvalidInput("transcript and account are required")
	}

	prompt := prompts.BuildAgendaPrompt(transcript, account)
	gs.Logger.Info(fmt.Sprintf("Generating agenda for account %q", account.Name), map[string]interface{}{
		"transcript_id":  transcript.ID,
		"next_call_type": prompts.NextCallType(transcript.CallType),
	})

	return gs.LLMProvider.Complete(ctx, prompt)
}

// GenerateFollowUp builds the follow-up prompt, including the learned style
// guide when there is one, and returns the model output verbatim.
func (gs *GenerationService) GenerateFollowUp(ctx context.Context, transcript *entities.Transcript, account *entities.Account) (string, error) {
	if transcript == nil {
		return "", errs.InvalidInput("transcript is required")
	}

	styleGuide := ""
	if gs.LearningService != nil {
		styleGuide = gs.LearningService.StyleGuide(ctx)
	}

	prompt := prompts.BuildFollowUpPrompt(transcript, account, styleGuide, gs.SignerName)
	gs.Logger.Info("Generating follow-up email", map[string]interface{}{
		"transcript_id":    transcript.ID,
		"style_guide_used": styleGuide != "",
	})

	return gs.LLMProvider.Complete(ctx, prompt)
}
