package handlers

import (
	"net/http"

	"sales-assistant/internal/domain/dto"
	Iservices "sales-assistant/internal/domain/interfaces/services"
	"sales-assistant/internal/infra/logger"
)

type GenerationHandlers struct {
	Logger            *logger.Logger
	GenerationService Iservices.IGenerationService
}

func NewGenerationHandlers(logger *logger.Logger, generationService Iservices.IGenerationService) *GenerationHandlers {
	return &GenerationHandlers{Logger: logger, GenerationService: generationService}
}

// GenerateAgenda handles POST /api/generate-agenda.
//
// HTTP Status Codes:
// - 200 OK: {success, content} with the model output.
// - 400 Bad Request: invalid JSON, or transcript/account missing. No upstream call is made.
// - 500 Internal Server Error: missing API key or unexpected failure.
// - any upstream status: passed through with the provider's message.
func (th *GenerationHandlers) GenerateAgenda(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateAgendaRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Transcript == nil || req.Account == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: transcript and account")
		return
	}

	content, err := th.GenerationService.GenerateAgenda(r.Context(), req.Transcript, req.Account)
	if err != nil {
		writeServiceError(w, th.Logger, err, "Failed to generate agenda")
		return
	}

	writeJSON(w, http.StatusOK, dto.GenerateResponse{Success: true, Content: content})
}

// GenerateFollowUp handles POST /api/generate-follow-up. The account is
// optional; status codes follow GenerateAgenda.
func (th *GenerationHandlers) GenerateFollowUp(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateFollowUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Transcript == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: transcript")
		return
	}

	content, err := th.GenerationService.GenerateFollowUp(r.Context(), req.Transcript, req.Account)
	if err != nil {
		writeServiceError(w, th.Logger, err, "Failed to generate follow-up email")
		return
	}

	writeJSON(w, http.StatusOK, dto.GenerateResponse{Success: true, Content: content})
}
