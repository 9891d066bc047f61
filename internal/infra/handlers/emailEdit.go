package handlers

import (
	"net/http"
	"strings"

	"sales-assistant/internal/domain/dto"
	Iservices "sales-assistant/internal/domain/interfaces/services"
	"sales-assistant/internal/infra/logger"
)

type EmailEditHandlers struct {
	Logger          *logger.Logger
	LearningService Iservices.IEmailLearningService
}

func NewEmailEditHandlers(logger *logger.Logger, learningService Iservices.IEmailLearningService) *EmailEditHandlers {
	return &EmailEditHandlers{Logger: logger, LearningService: learningService}
}

// SaveEmailEdit handles POST /api/save-email-edit.
func (th *EmailEditHandlers) SaveEmailEdit(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveEmailEditRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Original) == "" || strings.TrimSpace(req.Edited) == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: original and edited")
		return
	}

	res, err := th.LearningService.SaveEdit(r.Context(), req)
	if err != nil {
		writeServiceError(w, th.Logger, err, "Failed to save edit")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetEmailPatterns handles GET /api/get-email-patterns.
func (th *EmailEditHandlers) GetEmailPatterns(w http.ResponseWriter, r *http.Request) {
	res, err := th.LearningService.GetPatterns(r.Context())
	if err != nil {
		writeServiceError(w, th.Logger, err, "Failed to get patterns")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
