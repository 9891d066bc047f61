package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sales-assistant/internal/domain/analysis"
	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/entities"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/domain/interfaces/repository"
	Iservices "sales-assistant/internal/domain/interfaces/services"
	"sales-assistant/internal/infra/logger"
)

var _ Iservices.IEmailLearningService = (*EmailLearningService)(nil)

// EmailLearningService records user edits to generated emails and turns the
// recent ones into a style guide.
type EmailLearningService struct {
	Repository repository.EditRecordRepository
	Analyzer   *analysis.Analyzer
	Logger     *logger.Logger
	now        func() time.Time
}

func NewEmailLearningService(repo repository.EditRecordRepository, analyzer *analysis.Analyzer, logger *logger.Logger) *EmailLearningService {
	return &EmailLearningService{
		Repository: repo,
		Analyzer:   analyzer,
		Logger:     logger,
		now:        time.Now,
	}
}

// SaveEdit analyzes and stores one edit. A failed write is logged and
// otherwise ignored: the caller still gets a success response.
func (ls *EmailLearningService) SaveEdit(ctx context.Context, input dto.SaveEmailEditRequest) (dto.SaveEmailEditResponse, error) {
	if strings.TrimSpace(input.Original) == "" || strings.TrimSpace(input.Edited) == "" {
		return dto.SaveEmailEditResponse{}, errs.InvalidInput("original and edited are required")
	}

	now := ls.now()
	timestamp := input.Timestamp
	if timestamp == "" {
		timestamp = now.UTC().Format(time.RFC3339)
	}

	patterns := ls.Analyzer.AnalyzeEdit(input.Original, input.Edited)
	originalLen := analysis.CharCount(input.Original)
	editedLen := analysis.CharCount(input.Edited)

	record := entities.EditRecord{
		ID:             uuid.NewString(),
		TranscriptID:   input.TranscriptID,
		AccountID:      input.AccountID,
		AccountName:    input.AccountName,
		CallType:       input.CallType,
		Timestamp:      timestamp,
		Original:       input.Original,
		Edited:         input.Edited,
		Patterns:       patterns,
		OriginalLength: originalLen,
		EditedLength:   editedLen,
		LengthDelta:    editedLen - originalLen,
		CreatedAt:      now.UnixNano(),
	}

	if err := ls.Repository.Append(ctx, record); err != nil {
		ls.Logger.Error(fmt.Sprintf("Failed to save email edit: %v", err), map[string]interface{}{
			"edit_id":    record.ID,
			"account_id": record.AccountID,
		})
	} else {
		ls.Logger.Info(fmt.Sprintf("Saved email edit with %d patterns", len(patterns)), map[string]interface{}{
			"edit_id":    record.ID,
			"account_id": record.AccountID,
		})
	}

	return dto.SaveEmailEditResponse{
		Success:          true,
		Message:          "Edit saved successfully",
		PatternsDetected: len(patterns),
	}, nil
}

// GetPatterns aggregates the recent history. Store failures count as no
// history.
func (ls *EmailLearningService) GetPatterns(ctx context.Context) (dto.EmailPatternsResponse, error) {
	total, err := ls.Repository.Count(ctx)
	if err != nil {
		ls.Logger.Warn(fmt.Sprintf("Failed to count email edits: %v", err))
		total = 0
	}

	var records []entities.EditRecord
	if total > 0 {
		records, err = ls.Repository.FindRecent(ctx, ls.Analyzer.Options().PatternWindow)
		if err != nil {
			ls.Logger.Warn(fmt.Sprintf("Failed to load email edits: %v", err))
			records = nil
			total = 0
		}
	}

	patterns := ls.Analyzer.Aggregate(records)
	return dto.EmailPatternsResponse{
		Success:     true,
		HasPatterns: total > 0,
		TotalEdits:  total,
		StyleGuide:  ls.Analyzer.BuildStyleGuide(patterns),
		Patterns:    &patterns,
	}, nil
}

func (ls *EmailLearningService) StyleGuide(ctx context.Context) string {
	res, err := ls.GetPatterns(ctx)
	if err != nil {
		return ""
	}
	return res.StyleGuide
}
