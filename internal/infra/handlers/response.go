package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/errs"
	"sales-assistant/internal/infra/logger"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// writeServiceError maps a service error onto the HTTP error taxonomy.
// Unexpected errors are logged and answered with fallback only.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, fallback string) {
	var upstream *errs.UpstreamError
	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrMissingAPIKey):
		writeError(w, http.StatusInternalServerError, "Server configuration error: LLM API key is not set")
	case errors.As(err, &upstream):
		status := upstream.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeError(w, status, upstream.Message)
	default:
		log.Error(fmt.Sprintf("%s: %v", fallback, err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
